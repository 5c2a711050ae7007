package thermo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// IdealGas is the built-in Backend: a non-reacting ideal mixture with NASA-7
// (or constant) species specific heats and the thermal equation of state
// Rho = P/(R_mix*T).
type IdealGas struct {
	Species []Species

	// State, set by SetState
	T, P          float64
	Y             []float64
	moleFractions []float64
	meanW         float64 // kg/mol
	cp, h         float64
	speciesCp     []float64
	speciesH      []float64
}

func NewIdealGas(species []Species) (b *IdealGas) {
	n := len(species)
	if n == 0 {
		panic(fmt.Errorf("ideal gas backend requires at least one species"))
	}
	b = &IdealGas{
		Species:       species,
		Y:             make([]float64, n),
		moleFractions: make([]float64, n),
		speciesCp:     make([]float64, n),
		speciesH:      make([]float64, n),
	}
	return
}

func (b *IdealGas) NumSpecies() int { return len(b.Species) }

func (b *IdealGas) SetState(T, P float64, Y []float64) (err error) {
	var (
		n = len(b.Species)
	)
	if len(Y) != n {
		err = fmt.Errorf("have %d mass fractions, backend configured for %d species", len(Y), n)
		return
	}
	if T <= 0 || P <= 0 {
		err = fmt.Errorf("non-physical state T=%v, P=%v", T, P)
		return
	}
	copy(b.Y, Y)
	b.T, b.P = T, P

	// Mean molar mass from 1/W = sum(Y_i/W_i), with W_i converted to kg/mol
	var oneOverW float64
	for i, sp := range b.Species {
		oneOverW += b.Y[i] / (sp.MolarMass / 1000.)
	}
	b.meanW = 1. / oneOverW
	for i, sp := range b.Species {
		b.moleFractions[i] = b.meanW * b.Y[i] / (sp.MolarMass / 1000.)
	}

	for i, sp := range b.Species {
		b.speciesCp[i] = sp.Cp(T)
		b.speciesH[i] = sp.Enthalpy(T)
	}
	b.cp = floats.Dot(b.Y, b.speciesCp)
	b.h = floats.Dot(b.Y, b.speciesH)
	return
}

func (b *IdealGas) MeanMolarMass() (W float64) {
	W = b.meanW
	return
}

func (b *IdealGas) GasConstant() (R float64) {
	R = UniversalGasConstant / b.meanW
	return
}

func (b *IdealGas) Density() (Rho float64) {
	Rho = b.P / (b.GasConstant() * b.T)
	return
}

func (b *IdealGas) Cp() (Cp float64) {
	Cp = b.cp
	return
}

func (b *IdealGas) Cv() (Cv float64) {
	Cv = b.cp - b.GasConstant()
	return
}

func (b *IdealGas) Enthalpy() (H float64) {
	H = b.h
	return
}

func (b *IdealGas) SpeciesCp(i int) (Cp float64) {
	Cp = b.speciesCp[i]
	return
}

func (b *IdealGas) SpeciesEnthalpy(i int) (H float64) {
	H = b.speciesH[i]
	return
}

// MoleFractions returns a copy of the composition in mole fraction form
func (b *IdealGas) MoleFractions() (X []float64) {
	X = make([]float64, len(b.moleFractions))
	copy(X, b.moleFractions)
	return
}
