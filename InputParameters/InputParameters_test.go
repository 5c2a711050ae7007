package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var caseYAML = []byte(`
Title: "H2 into air"
Species: [H2, O2, N2]
MixingRule: Davidson
OperatingPressure: 101325.
Temperature: 300.
LeftMassFractions: [0.2, 0.1]
RightMassFractions: [0.0, 0.233]
K: 50
FinalTime: 0.01
`)

func TestParseAndValidate(t *testing.T) {
	cp := &CaseParameters{}
	assert.NoError(t, cp.Parse(caseYAML))
	assert.Equal(t, []string{"H2", "O2", "N2"}, cp.Species)
	assert.Equal(t, "Davidson", cp.MixingRule)
	cp.Defaults()
	assert.NoError(t, cp.Validate())
	// Defaults fill the transport labels and boundary temperatures
	assert.Equal(t, "Sutherland", cp.ViscosityModel)
	assert.Equal(t, 300., cp.LeftTemperature)
	assert.Equal(t, 0.72, cp.Prandtl)
}

func TestValidationFailures(t *testing.T) {
	base := func() (cp *CaseParameters) {
		cp = &CaseParameters{}
		assert.NoError(t, cp.Parse(caseYAML))
		cp.Defaults()
		return
	}
	{ // Wrong scalar count
		cp := base()
		cp.LeftMassFractions = []float64{0.5}
		assert.Error(t, cp.Validate())
	}
	{ // Negative closure species
		cp := base()
		cp.LeftMassFractions = []float64{0.8, 0.5}
		assert.Error(t, cp.Validate())
	}
	{ // Out of range fraction
		cp := base()
		cp.RightMassFractions = []float64{-0.1, 0.2}
		assert.Error(t, cp.Validate())
	}
	{ // Missing pressure
		cp := base()
		cp.OperatingPressure = 0
		assert.Error(t, cp.Validate())
	}
	{ // Single species mixture
		cp := base()
		cp.Species = []string{"N2"}
		assert.Error(t, cp.Validate())
	}
}
