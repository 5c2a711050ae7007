package thermo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNASA7(t *testing.T) {
	db := StandardDatabase()
	{ // Argon is a monatomic gas, Cp/R = 2.5 at any temperature
		ar := db["AR"]
		R := UniversalGasConstant / (ar.MolarMass / 1000.)
		assert.True(t, near(2.5*R, ar.Cp(300), 1.e-9))
		assert.True(t, near(2.5*R, ar.Cp(2000), 1.e-9))
	}
	{ // N2 at 300K is close to the tabulated 1040 J/(kg.K)
		n2 := db["N2"]
		assert.True(t, nearRel(1040, n2.Cp(300), 0.01))
	}
	{ // The two ranges agree at the split temperature
		o2 := db["O2"]
		below := o2.NASA.Low.CpR(1000)
		above := o2.NASA.High.CpR(1000)
		assert.True(t, nearRel(below, above, 1.e-3))
	}
}

func TestIdealGasState(t *testing.T) {
	db := StandardDatabase()
	species, err := db.Select([]string{"N2", "O2"})
	assert.NoError(t, err)
	b := NewIdealGas(species)

	// Standard air-like composition
	Y := []float64{0.767, 0.233}
	assert.NoError(t, b.SetState(300, 101325, Y))

	{ // Mean molar mass near air's 28.96 g/mol
		assert.True(t, nearRel(28.85e-3, b.MeanMolarMass(), 0.01))
		assert.True(t, nearRel(288.2, b.GasConstant(), 0.01))
	}
	{ // Ideal gas density at sea level conditions
		assert.True(t, nearRel(1.17, b.Density(), 0.01))
	}
	{ // Cp - Cv = R
		assert.True(t, near(b.GasConstant(), b.Cp()-b.Cv(), 1.e-9))
	}
	{ // Mole fractions renormalize to 1
		X := b.MoleFractions()
		var sum float64
		for _, x := range X {
			sum += x
		}
		assert.True(t, near(1, sum, 1.e-12))
	}
}

func TestIdealGasErrors(t *testing.T) {
	db := StandardDatabase()
	species, _ := db.Select([]string{"N2", "O2"})
	b := NewIdealGas(species)
	assert.Error(t, b.SetState(300, 101325, []float64{1}))
	assert.Error(t, b.SetState(-10, 101325, []float64{0.5, 0.5}))
	_, err := db.Select([]string{"UNOBTANIUM"})
	assert.Error(t, err)
}

func TestParseDatabase(t *testing.T) {
	data := []byte(`
Species:
  - Name: HE
    MolarMass: 4.0026
    CpConst: 5193.
`)
	db, err := ParseDatabase(data)
	assert.NoError(t, err)
	he := db["HE"]
	assert.Equal(t, 5193., he.Cp(1000))

	_, err = ParseDatabase([]byte("Species:\n  - Name: BAD\n    MolarMass: 0\n"))
	assert.Error(t, err)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearRel(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Abs(a)
}
