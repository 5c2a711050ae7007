package Mixing1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RogueRocketeer/gofluid/fluid"
	"github.com/RogueRocketeer/gofluid/thermo"
)

func testCase(t *testing.T) (c *Mixing) {
	db := thermo.StandardDatabase()
	species, err := db.Select([]string{"H2", "N2"})
	assert.NoError(t, err)
	fm, err := fluid.NewFromSpecies(species, 101325, fluid.MIX_Wilke, 0.72)
	assert.NoError(t, err)
	in := BCState{Scalars: []float64{0.1}, T: 320}
	out := BCState{Scalars: []float64{0.0}, T: 300}
	c = NewMixing(0.4, 1, 0.01, 21, 0, fm, in, out)
	return
}

func TestInitialization(t *testing.T) {
	c := testCase(t)
	{ // Field split at the midpoint
		Y := c.MassFractions(0)
		assert.True(t, near(0.1, Y[0], 1.e-14))
		assert.True(t, near(0.0, Y[c.K-1], 1.e-14))
		T := c.Temperatures()
		assert.True(t, near(320, T[0], 1.e-14))
		assert.True(t, near(300, T[c.K-1], 1.e-14))
	}
	{ // Properties evaluated everywhere, denser on the cold pure-N2 side
		assert.True(t, c.Rho[c.K-1] > c.Rho[0])
		for i := 0; i < c.K; i++ {
			assert.True(t, c.Mu[i] > 0 && c.Kt[i] > 0 && c.Alpha[i] > 0)
		}
	}
	{ // Temperature is uniform next to each end, so no conductive flux yet
		assert.True(t, c.HeatFlux(0) == 0)
		assert.True(t, c.HeatFlux(c.K-1) == 0)
	}
	{ // Boundary state guards
		assert.Panics(t, func() {
			NewMixing(0.4, 1, 0.01, 21, 0, c.FM, BCState{Scalars: []float64{0.1, 0.2}, T: 300}, c.Out)
		})
		assert.Panics(t, func() { NewMixing(0.4, 1, 0.01, 2, 0, c.FM, c.In, c.Out) })
	}
}

func TestSolve(t *testing.T) {
	c := testCase(t)
	// Long enough for the fronts to spread from the midpoint to the ends
	c.FinalTime = 0.1
	c.Solve(false)
	assert.True(t, c.Steps > 0)
	{ // Dirichlet ends never move
		Y := c.MassFractions(0)
		assert.True(t, near(0.1, Y[0], 1.e-14))
		assert.True(t, near(0.0, Y[c.K-1], 1.e-14))
	}
	{ // Diffusion smooths the interface: interior values strictly between the ends
		Y := c.MassFractions(0)
		mid := Y[c.K/2]
		assert.True(t, mid > 0 && mid < 0.1)
		// Monotone profile
		for i := 1; i < c.K; i++ {
			assert.True(t, Y[i] <= Y[i-1]+1.e-12)
		}
	}
	{ // Closure species stays physical
		for _, y := range c.ClosureMassFractions() {
			assert.True(t, y >= 0.89 && y <= 1.0+1.e-12)
		}
	}
	{ // The fronts have reached the ends: heat enters at the hot left
		// boundary and leaves through the cold right one, both in +x
		T := c.Temperatures()
		assert.True(t, T[1] < 320)
		assert.True(t, T[c.K-2] > 300)
		assert.True(t, c.HeatFlux(0) > 0)
		assert.True(t, c.HeatFlux(c.K-1) > 0)
		assert.Panics(t, func() { c.HeatFlux(5) })
	}
	{ // Accessor guards
		assert.Panics(t, func() { c.MassFractions(3) })
	}
}

func TestTimeStepBound(t *testing.T) {
	c := testCase(t)
	c.FinalTime = 1.e9 // keep the end-of-run clip out of the way
	dt := c.timeStep()
	// dt respects the diffusive limit for the largest coefficient
	var numax float64
	for i := 0; i < c.K; i++ {
		numax = math.Max(numax, c.Alpha[i])
		for _, D := range c.Diffusivity[i] {
			numax = math.Max(numax, D)
		}
	}
	assert.True(t, near(c.CFL*c.h*c.h/(2*numax), dt, 1.e-15))
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
