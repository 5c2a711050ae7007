package thermo

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Species carries the thermochemical and pure-species transport data for one
// mixture component. MolarMass is in kg/kmol as is conventional in CFD input
// files; conversion to kg/mol happens inside the backend.
type Species struct {
	Name      string         `yaml:"Name"`
	MolarMass float64        `yaml:"MolarMass"` // kg/kmol
	CpConst   float64        `yaml:"CpConst"`   // J/(kg.K), used when NASA is absent
	NASA      *TwoRangeNASA7 `yaml:"NASA,omitempty"`
	// Sutherland law constants for the pure species
	MuRef float64 `yaml:"MuRef"`
	TRef  float64 `yaml:"TRef"`
	SMu   float64 `yaml:"SMu"`
}

// Cp returns the specific heat at constant pressure in J/(kg.K)
func (s Species) Cp(T float64) (cp float64) {
	if s.NASA == nil {
		cp = s.CpConst
		return
	}
	R := UniversalGasConstant / (s.MolarMass / 1000.)
	cp = R * s.NASA.CpR(T)
	return
}

// Enthalpy returns the absolute enthalpy in J/kg, including the heat of
// formation when NASA rows are present
func (s Species) Enthalpy(T float64) (h float64) {
	R := UniversalGasConstant / (s.MolarMass / 1000.)
	if s.NASA == nil {
		h = s.CpConst * T
		return
	}
	h = R * T * s.NASA.HRT(T)
	return
}

type Database map[string]Species

// ParseDatabase reads a YAML species database of the form
//
//	Species:
//	  - Name: N2
//	    MolarMass: 28.0134
//	    ...
func ParseDatabase(data []byte) (db Database, err error) {
	var file struct {
		Species []Species `yaml:"Species"`
	}
	if err = yaml.Unmarshal(data, &file); err != nil {
		return
	}
	db = make(Database, len(file.Species))
	for _, sp := range file.Species {
		if sp.MolarMass <= 0 {
			err = fmt.Errorf("species %s has non-positive molar mass %v", sp.Name, sp.MolarMass)
			return
		}
		db[sp.Name] = sp
	}
	return
}

// Select resolves the named species against the database, preserving order
func (db Database) Select(names []string) (species []Species, err error) {
	species = make([]Species, len(names))
	for i, name := range names {
		var ok bool
		if species[i], ok = db[name]; !ok {
			err = fmt.Errorf("species %s not present in database", name)
			return
		}
	}
	return
}

/*
Built-in species table for common non-reacting mixtures. NASA rows are the
GRI-Mech 3.0 fits, valid 300K - 3500K with the split at 1000K. Sutherland
constants are the usual textbook values.
*/
var standardSpecies = []Species{
	{
		Name: "N2", MolarMass: 28.0134,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{3.298677e+00, 1.4082404e-03, -3.963222e-06, 5.641515e-09, -2.444854e-12, -1.0208999e+03, 3.950372e+00},
			High: NASA7{2.92664e+00, 1.4879768e-03, -5.68476e-07, 1.0097038e-10, -6.753351e-15, -9.227977e+02, 5.980528e+00},
			TMid: 1000,
		},
		MuRef: 1.663e-5, TRef: 273.15, SMu: 107,
	},
	{
		Name: "O2", MolarMass: 31.9988,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{3.78245636e+00, -2.99673416e-03, 9.84730201e-06, -9.68129509e-09, 3.24372837e-12, -1.06394356e+03, 3.65767573e+00},
			High: NASA7{3.28253784e+00, 1.48308754e-03, -7.57966669e-07, 2.09470555e-10, -2.16717794e-14, -1.08845772e+03, 5.45323129e+00},
			TMid: 1000,
		},
		MuRef: 1.919e-5, TRef: 273.15, SMu: 139,
	},
	{
		Name: "H2", MolarMass: 2.01588,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{2.34433112e+00, 7.98052075e-03, -1.9478151e-05, 2.01572094e-08, -7.37611761e-12, -9.17935173e+02, 6.83010238e-01},
			High: NASA7{3.3372792e+00, -4.94024731e-05, 4.99456778e-07, -1.79566394e-10, 2.00255376e-14, -9.50158922e+02, -3.20502331e+00},
			TMid: 1000,
		},
		MuRef: 8.411e-6, TRef: 273.15, SMu: 97,
	},
	{
		Name: "H2O", MolarMass: 18.01528,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{4.19864056e+00, -2.0364341e-03, 6.52040211e-06, -5.48797062e-09, 1.77197817e-12, -3.02937267e+04, -8.49032208e-01},
			High: NASA7{3.03399249e+00, 2.17691804e-03, -1.64072518e-07, -9.7041987e-11, 1.68200992e-14, -3.00042971e+04, 4.9667701e+00},
			TMid: 1000,
		},
		MuRef: 1.12e-5, TRef: 350, SMu: 1064,
	},
	{
		Name: "AR", MolarMass: 39.948,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{2.5, 0, 0, 0, 0, -7.45375e+02, 4.366e+00},
			High: NASA7{2.5, 0, 0, 0, 0, -7.45375e+02, 4.366e+00},
			TMid: 1000,
		},
		MuRef: 2.125e-5, TRef: 273.15, SMu: 144,
	},
	{
		Name: "CH4", MolarMass: 16.04276,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{5.14987613e+00, -1.36709788e-02, 4.91800599e-05, -4.84743026e-08, 1.66693956e-11, -1.02466476e+04, -4.64130376e+00},
			High: NASA7{7.4851495e-02, 1.33909467e-02, -5.73285809e-06, 1.22292535e-09, -1.0181523e-13, -9.46834459e+03, 1.8437318e+01},
			TMid: 1000,
		},
		MuRef: 1.024e-5, TRef: 273.15, SMu: 169,
	},
	{
		Name: "CO2", MolarMass: 44.0095,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{2.35677352e+00, 8.98459677e-03, -7.12356269e-06, 2.45919022e-09, -1.43699548e-13, -4.83719697e+04, 9.90105222e+00},
			High: NASA7{3.85746029e+00, 4.41437026e-03, -2.21481404e-06, 5.23490188e-10, -4.72084164e-14, -4.8759166e+04, 2.27163806e+00},
			TMid: 1000,
		},
		MuRef: 1.37e-5, TRef: 273.15, SMu: 222,
	},
	{
		Name: "CO", MolarMass: 28.0101,
		NASA: &TwoRangeNASA7{
			Low:  NASA7{3.57953347e+00, -6.1035368e-04, 1.01681433e-06, 9.07005884e-10, -9.04424499e-13, -1.4344086e+04, 3.50840928e+00},
			High: NASA7{2.71518561e+00, 2.06252743e-03, -9.98825771e-07, 2.30053008e-10, -2.03647716e-14, -1.41518724e+04, 7.81868772e+00},
			TMid: 1000,
		},
		MuRef: 1.657e-5, TRef: 273.15, SMu: 136,
	},
}

// StandardDatabase returns the built-in table
func StandardDatabase() (db Database) {
	db = make(Database, len(standardSpecies))
	for _, sp := range standardSpecies {
		db[sp.Name] = sp
	}
	return
}
