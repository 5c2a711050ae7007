package fluid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RogueRocketeer/gofluid/thermo"
	"github.com/RogueRocketeer/gofluid/transport"
)

func airModel(t *testing.T, rule MixingRuleType) (fm *Multicomponent) {
	var err error
	db := thermo.StandardDatabase()
	species, err := db.Select([]string{"N2", "O2"})
	assert.NoError(t, err)
	fm, err = NewFromSpecies(species, 101325, rule, 0.72)
	assert.NoError(t, err)
	return
}

func TestMassToMoleFractions(t *testing.T) {
	fm := airModel(t, MIX_Wilke)
	{ // Last species closes the sum; mole fractions renormalize to 1
		fm.MassToMoleFractions([]float64{0.767})
		Y := fm.MassFractions()
		assert.True(t, near(0.233, Y[1], 1.e-14))
		X := fm.MoleFractions()
		assert.True(t, near(1, X[0]+X[1], 1.e-14))
		// The lighter species is enriched in mole fraction
		assert.True(t, X[0] > Y[0])
	}
	{ // Pure last species
		fm.MassToMoleFractions([]float64{0})
		X := fm.MoleFractions()
		assert.True(t, near(0, X[0], 1.e-14))
		assert.True(t, near(1, X[1], 1.e-14))
	}
	{ // Wrong scalar count is a programming error
		assert.Panics(t, func() { fm.MassToMoleFractions([]float64{0.5, 0.5}) })
	}
}

func TestGasConstant(t *testing.T) {
	fm := airModel(t, MIX_Wilke)
	fm.MassToMoleFractions([]float64{0.767})
	R := fm.ComputeGasConstant()
	// Air-like mixture
	assert.True(t, nearRel(288.2, R, 0.01))
}

func TestSetStateT(t *testing.T) {
	fm := airModel(t, MIX_Wilke)
	assert.NoError(t, fm.SetStateT(300, []float64{0.767}))
	{ // Thermal equation of state at the operating pressure
		assert.True(t, near(fm.Pressure/(300*fm.GasConstant), fm.Density, 1.e-12))
		assert.True(t, nearRel(1.17, fm.Density, 0.01))
	}
	{ // Cv = Cp - R, gamma near 1.4 for diatomic air
		assert.True(t, near(fm.GasConstant, fm.Cp-fm.Cv, 1.e-9))
		assert.True(t, nearRel(1.4, fm.Gamma(), 0.01))
	}
	{ // Air viscosity and conductivity at 300K
		assert.True(t, nearRel(1.85e-5, fm.Mu, 0.03))
		assert.True(t, nearRel(0.026, fm.Kt, 0.05))
	}
	{ // Unity Lewis diffusivities equal Kt/(Rho*Cp)
		for _, D := range fm.MassDiffusivities() {
			assert.True(t, near(fm.Kt/(fm.Density*fm.Cp), D, 1.e-12))
		}
	}
}

func TestMixingRuleLimits(t *testing.T) {
	{ // Both rules reduce to the pure-species law at the composition limits
		for _, rule := range []MixingRuleType{MIX_Wilke, MIX_Davidson} {
			fm := airModel(t, rule)
			assert.NoError(t, fm.SetStateT(300, []float64{1}))
			pure := fm.SpeciesViscosities()
			assert.True(t, nearRel(pure[0], fm.Mu, 1.e-10))
		}
	}
	{ // Identical species make the rules exact for any composition
		constVisc := func(n int) (v []transport.ViscosityModel) {
			v = make([]transport.ViscosityModel, n)
			for i := range v {
				v[i] = &transport.ConstantViscosity{MuConst: 3.e-5}
			}
			return
		}
		constCond := func(n int) (c []transport.ConductivityModel) {
			c = make([]transport.ConductivityModel, n)
			for i := range c {
				c[i] = &transport.ConstantConductivity{KtConst: 0.03}
			}
			return
		}
		constDiff := func(n int) (d []transport.DiffusivityModel) {
			d = make([]transport.DiffusivityModel, n)
			for i := range d {
				d[i] = &transport.ConstantDiffusivity{DConst: 1.e-5}
			}
			return
		}
		db := thermo.StandardDatabase()
		species, _ := db.Select([]string{"N2", "CO"}) // nearly equal molar masses
		backend := thermo.NewIdealGas(species)
		for _, rule := range []MixingRuleType{MIX_Wilke, MIX_Davidson} {
			fm, err := NewMulticomponent(backend, []float64{28., 28.}, 101325, rule,
				constVisc(2), constCond(2), constDiff(2))
			assert.NoError(t, err)
			assert.NoError(t, fm.SetStateT(400, []float64{0.3}))
			assert.True(t, nearRel(3.e-5, fm.Mu, 1.e-12))
			assert.True(t, nearRel(0.03, fm.Kt, 1.e-12))
		}
	}
	{ // Wilke and Davidson agree within a few percent for air
		wilke := airModel(t, MIX_Wilke)
		davidson := airModel(t, MIX_Davidson)
		assert.NoError(t, wilke.SetStateT(300, []float64{0.767}))
		assert.NoError(t, davidson.SetStateT(300, []float64{0.767}))
		assert.True(t, nearRel(wilke.Mu, davidson.Mu, 0.05))
	}
}

func TestConstructorGuards(t *testing.T) {
	db := thermo.StandardDatabase()
	species, _ := db.Select([]string{"N2", "O2"})
	backend := thermo.NewIdealGas(species)
	{ // Species count guards
		_, err := NewMulticomponent(backend, []float64{28.}, 101325, MIX_Wilke, nil, nil, nil)
		assert.Error(t, err)
		_, err = NewMulticomponent(backend, make([]float64, MaxSpecies+1), 101325, MIX_Wilke, nil, nil, nil)
		assert.Error(t, err)
	}
	{ // Transport slice length mismatch
		_, err := NewMulticomponent(backend, []float64{28.0134, 31.9988}, 101325, MIX_Wilke,
			make([]transport.ViscosityModel, 1), make([]transport.ConductivityModel, 2),
			make([]transport.DiffusivityModel, 2))
		assert.Error(t, err)
	}
	{ // Non-positive pressure
		_, err := NewFromSpecies(species, 0, MIX_Wilke, 0.72)
		assert.Error(t, err)
	}
	{ // Unknown mixing rule label
		assert.Panics(t, func() { NewMixingRuleType("arithmetic") })
		assert.Equal(t, MIX_Davidson, NewMixingRuleType("Davidson"))
	}
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearRel(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Abs(a)
}
