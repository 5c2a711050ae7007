package thermo

// UniversalGasConstant in J/(mol.K)
const UniversalGasConstant = 8.314462618

// Backend is the thermochemistry engine behind a multicomponent fluid model.
// Production deployments can bind an external chemistry package here; the
// built-in IdealGas backend covers non-reacting ideal mixtures.
//
// SetState fixes temperature [K], pressure [Pa] and species mass fractions;
// the property getters refer to the last state set.
type Backend interface {
	SetState(T, P float64, Y []float64) error
	NumSpecies() int
	MeanMolarMass() (W float64)        // kg/mol
	GasConstant() (R float64)          // J/(kg.K)
	Density() (Rho float64)            // kg/m^3
	Cp() (Cp float64)                  // J/(kg.K)
	Cv() (Cv float64)                  // J/(kg.K)
	Enthalpy() (H float64)             // J/kg
	SpeciesCp(i int) (Cp float64)      // J/(kg.K)
	SpeciesEnthalpy(i int) (H float64) // J/kg
}
