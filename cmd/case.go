package cmd

import (
	"fmt"
	"os"

	"github.com/RogueRocketeer/gofluid/InputParameters"
	"github.com/RogueRocketeer/gofluid/fluid"
	"github.com/RogueRocketeer/gofluid/thermo"
)

func processInput(caseFile string) (cp *InputParameters.CaseParameters) {
	var (
		err      error
		willExit bool
	)
	if len(caseFile) == 0 {
		err = fmt.Errorf("must supply a case file (-I, --inputCaseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "H2 into air"
Species: [H2, O2, N2]
MixingRule: Wilke
OperatingPressure: 101325.
Temperature: 300.
LeftMassFractions: [0.2, 0.1]
RightMassFractions: [0.0, 0.233]
K: 100
FinalTime: 0.01
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(caseFile); err != nil {
		panic(err)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		panic(err)
	}
	cp.Defaults()
	if err = cp.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

// buildModel resolves the species set and assembles the fluid model from the
// case file labels
func buildModel(cp *InputParameters.CaseParameters) (fm *fluid.Multicomponent, err error) {
	db := thermo.StandardDatabase()
	if len(cp.SpeciesDatabase) != 0 {
		var data []byte
		if data, err = os.ReadFile(cp.SpeciesDatabase); err != nil {
			return
		}
		var userDB thermo.Database
		if userDB, err = thermo.ParseDatabase(data); err != nil {
			return
		}
		for name, sp := range userDB {
			db[name] = sp
		}
	}
	var species []thermo.Species
	if species, err = db.Select(cp.Species); err != nil {
		return
	}
	consts := fluid.TransportConstants{
		Prandtl:     cp.Prandtl,
		PrandtlTurb: cp.PrandtlTurb,
		Schmidt:     cp.Schmidt,
		Lewis:       cp.Lewis,
	}
	fm, err = fluid.NewFromLabels(species, cp.OperatingPressure, cp.MixingRule,
		cp.ViscosityModel, cp.ConductivityModel, cp.DiffusivityModel, consts)
	return
}
