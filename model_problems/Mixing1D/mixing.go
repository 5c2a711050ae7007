package Mixing1D

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/stat"

	"github.com/RogueRocketeer/gofluid/fluid"
	"github.com/RogueRocketeer/gofluid/utils"
)

/*
Mixing solves 1D multicomponent interdiffusion at constant operating
pressure: the transported species mass fractions diffuse with the mixture
mass diffusivities and temperature conducts with the mixture conductivity,
all properties re-evaluated from the fluid model each step.

	dY_i/dt = D_i * d2Y_i/dx2
	dT/dt   = Kt/(Rho*Cp) * d2T/dx2

Dirichlet states pin both ends. This is a model problem on a uniform
grid; there is no mesh machinery behind it.
*/
type Mixing struct {
	// Input parameters
	CFL, FinalTime, XMax float64
	K                    int // number of grid nodes
	MaxIterations        int
	FM                   *fluid.Multicomponent
	In, Out              BCState // left and right boundary states

	// Grid and solution; Q columns are the NScalars transported mass
	// fractions followed by temperature
	X        utils.Matrix
	Q        utils.Matrix
	NScalars int
	L        *sparse.CSR // second-difference stencil, zero rows at the ends
	h        float64

	// Per-node properties from the last EvaluateProperties pass
	Rho, Cp, Mu, Kt, Alpha []float64
	Diffusivity            [][]float64 // [node][species]

	Time  float64
	Steps int
}

type BCState struct {
	Scalars []float64
	T       float64
}

func NewMixing(CFL, FinalTime, XMax float64, K, MaxIterations int,
	fm *fluid.Multicomponent, in, out BCState) (c *Mixing) {
	var (
		nScalars = fm.NSpecies - 1
	)
	if len(in.Scalars) != nScalars || len(out.Scalars) != nScalars {
		panic(fmt.Errorf("boundary states carry %d transported scalars, have in[%d] out[%d]",
			nScalars, len(in.Scalars), len(out.Scalars)))
	}
	if K < 3 {
		panic(fmt.Errorf("need at least 3 grid nodes, have %d", K))
	}
	c = &Mixing{
		CFL:           CFL,
		FinalTime:     FinalTime,
		XMax:          XMax,
		K:             K,
		MaxIterations: MaxIterations,
		FM:            fm,
		In:            in,
		Out:           out,
		NScalars:      nScalars,
		h:             XMax / float64(K-1),
		Rho:           make([]float64, K),
		Cp:            make([]float64, K),
		Mu:            make([]float64, K),
		Kt:            make([]float64, K),
		Alpha:         make([]float64, K),
		Diffusivity:   make([][]float64, K),
	}
	c.X = utils.NewMatrix(K, 1)
	for i := 0; i < K; i++ {
		c.X.Set(i, 0, float64(i)*c.h)
	}
	c.L = secondDifference(K)
	c.InitializeStep()
	return
}

// secondDifference assembles the interior [1 -2 1] stencil; the boundary rows
// stay zero so Dirichlet nodes never move
func secondDifference(K int) *sparse.CSR {
	d := utils.NewDOK(K, K)
	for i := 1; i < K-1; i++ {
		d.Set(i, i-1, 1)
		d.Set(i, i, -2)
		d.Set(i, i+1, 1)
	}
	return d.ToCSR()
}

// InitializeStep fills the field with the boundary states split at the
// midpoint, the 1D analog of a shock tube initialization
func (c *Mixing) InitializeStep() {
	var (
		K = c.K
	)
	c.Q = utils.NewMatrix(K, c.NScalars+1)
	for i := 0; i < K; i++ {
		state := c.In
		if c.X.At(i, 0) >= 0.5*c.XMax {
			state = c.Out
		}
		for n := 0; n < c.NScalars; n++ {
			c.Q.Set(i, n, state.Scalars[n])
		}
		c.Q.Set(i, c.NScalars, state.T)
	}
	c.EvaluateProperties(c.Q)
}

// EvaluateProperties runs the fluid model at every node of the given field
func (c *Mixing) EvaluateProperties(Q utils.Matrix) {
	var (
		scalars = make([]float64, c.NScalars)
	)
	for i := 0; i < c.K; i++ {
		for n := 0; n < c.NScalars; n++ {
			scalars[n] = Q.At(i, n)
		}
		T := Q.At(i, c.NScalars)
		if err := c.FM.SetStateT(T, scalars); err != nil {
			panic(err)
		}
		c.Rho[i] = c.FM.Density
		c.Cp[i] = c.FM.Cp
		c.Mu[i] = c.FM.Mu
		c.Kt[i] = c.FM.Kt
		c.Alpha[i] = c.FM.Kt / (c.FM.Density * c.FM.Cp)
		c.Diffusivity[i] = c.FM.MassDiffusivities()
	}
}

// RHS forms the diffusive right hand side for every field using the
// properties of the last evaluation pass
func (c *Mixing) RHS(Q utils.Matrix) (rhs utils.Matrix) {
	var (
		K      = c.K
		ooh2   = 1. / (c.h * c.h)
		nField = c.NScalars + 1
	)
	rhs = utils.NewMatrix(K, nField)
	for n := 0; n < nField; n++ {
		lap := Q.MulVecCol(c.L, n)
		col := make([]float64, K)
		for i := 1; i < K-1; i++ {
			var coeff float64
			if n < c.NScalars {
				coeff = c.Diffusivity[i][n]
			} else {
				coeff = c.Alpha[i]
			}
			col[i] = coeff * lap[i] * ooh2
		}
		rhs.SetCol(n, col)
	}
	return
}

// timeStep limits dt by the diffusive stability bound dt <= CFL*h^2/(2*nu)
func (c *Mixing) timeStep() (dt float64) {
	var numax float64
	for i := 0; i < c.K; i++ {
		numax = math.Max(numax, c.Alpha[i])
		for _, D := range c.Diffusivity[i] {
			numax = math.Max(numax, D)
		}
	}
	dt = c.CFL * c.h * c.h / (2 * numax)
	if c.Time+dt > c.FinalTime {
		dt = c.FinalTime - c.Time
	}
	return
}

func (c *Mixing) Solve(verbose bool) {
	var (
		logFrequency = 50
	)
	if verbose {
		fmt.Printf("Multicomponent Mixing in 1 Dimension\n")
		fmt.Printf("Mixing Rule: %s\n", c.FM.MixingRule.Print())
		fmt.Printf("CFL = %8.4f, Num Nodes K = %d, Final Time = %8.4f\n\n", c.CFL, c.K, c.FinalTime)
	}
	for c.Time < c.FinalTime {
		if c.MaxIterations > 0 && c.Steps >= c.MaxIterations {
			break
		}
		dt := c.timeStep()
		c.step(dt)
		c.Time += dt
		c.Steps++
		if verbose && c.Steps%logFrequency == 0 {
			fmt.Printf("time = %8.5f, dt = %8.3e, mean closure Y = %8.6f\n",
				c.Time, dt, stat.Mean(c.ClosureMassFractions(), nil))
		}
	}
	c.EvaluateProperties(c.Q)
}

/*
Third order SSP Runge-Kutta time advancement

	q1 = q + dt*RHS(q)
	q2 = 3/4 q + 1/4 (q1 + dt*RHS(q1))
	q  = 1/3 q + 2/3 (q2 + dt*RHS(q2))
*/
func (c *Mixing) step(dt float64) {
	q := c.Q
	rhs := c.RHS(q)
	q1 := q.Copy().Add(rhs.Scale(dt))

	c.EvaluateProperties(q1)
	rhs = c.RHS(q1)
	q2 := q.Copy().Scale(3. / 4.).Add(q1.Copy().Add(rhs.Scale(dt)).Scale(1. / 4.))

	c.EvaluateProperties(q2)
	rhs = c.RHS(q2)
	c.Q = q.Copy().Scale(1. / 3.).Add(q2.Copy().Add(rhs.Scale(dt)).Scale(2. / 3.))

	c.EvaluateProperties(c.Q)
}

// ClosureMassFractions returns the per-node mass fraction of the closing
// species, 1 - sum of transported scalars
func (c *Mixing) ClosureMassFractions() (Y []float64) {
	Y = make([]float64, c.K)
	for i := 0; i < c.K; i++ {
		var sum float64
		for n := 0; n < c.NScalars; n++ {
			sum += c.Q.At(i, n)
		}
		Y[i] = 1 - sum
	}
	return
}

// Temperatures returns a copy of the temperature field
func (c *Mixing) Temperatures() (T []float64) {
	T = c.Q.Col(c.NScalars)
	return
}

// MassFractions returns a copy of transported scalar n at every node
func (c *Mixing) MassFractions(n int) (Y []float64) {
	if n < 0 || n >= c.NScalars {
		panic(fmt.Errorf("scalar index %d out of range [0,%d)", n, c.NScalars))
	}
	Y = c.Q.Col(n)
	return
}

// NodeState returns the transported scalars and temperature at node i
func (c *Mixing) NodeState(i int) (scalars []float64, T float64) {
	if i < 0 || i >= c.K {
		panic(fmt.Errorf("node index %d out of range [0,%d)", i, c.K))
	}
	scalars = make([]float64, c.NScalars)
	for n := 0; n < c.NScalars; n++ {
		scalars[n] = c.Q.At(i, n)
	}
	T = c.Q.At(i, c.NScalars)
	return
}

// HeatFlux returns the one-sided conductive flux -Kt*dT/dx at a boundary
// node (0 or K-1), positive in the +x direction
func (c *Mixing) HeatFlux(node int) (q float64) {
	var (
		K = c.K
		T = c.Temperatures()
	)
	switch node {
	case 0:
		q = -c.Kt[0] * (T[1] - T[0]) / c.h
	case K - 1:
		q = -c.Kt[K-1] * (T[K-1] - T[K-2]) / c.h
	default:
		panic(fmt.Errorf("heat flux defined on boundary nodes 0 and %d, have %d", K-1, node))
	}
	return
}
