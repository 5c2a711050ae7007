package fluid

import (
	"fmt"

	"github.com/RogueRocketeer/gofluid/thermo"
	"github.com/RogueRocketeer/gofluid/transport"
)

// MaxSpecies bounds the mixture size; the model allocates per-species scratch
// up front and the closure convention needs at least two components.
const MaxSpecies = 20

/*
Multicomponent is the mixture fluid model. The flow solver transports
NSpecies-1 scalar mass fractions; the last species closes the sum to one.
Thermodynamic state lookups go through the Backend, transport properties
come from the per-species laws combined with the selected mixing rule.
*/
type Multicomponent struct {
	// Configuration
	NSpecies       int
	MolarMasses    []float64 // kg/kmol
	Pressure       float64   // operating thermodynamic pressure, Pa
	GasConstantRef float64   // nondimensionalization reference, 1 for dimensional runs
	MixingRule     MixingRuleType
	Backend        thermo.Backend
	Viscosity      []transport.ViscosityModel
	Conductivity   []transport.ConductivityModel
	Diffusivity    []transport.DiffusivityModel

	// State, evaluated by SetStateT
	Temperature, Density float64
	Cp, Cv, GasConstant  float64
	Mu, Kt               float64
	EddyViscosity        float64
	massFractions        []float64
	moleFractions        []float64
	laminarViscosity     []float64
	laminarConductivity  []float64
	massDiffusivity      []float64
}

func NewMulticomponent(backend thermo.Backend, molarMasses []float64, pressure float64,
	rule MixingRuleType, visc []transport.ViscosityModel, cond []transport.ConductivityModel,
	diff []transport.DiffusivityModel) (fm *Multicomponent, err error) {
	var (
		n = len(molarMasses)
	)
	if n < 2 {
		err = fmt.Errorf("multicomponent model needs at least 2 species, have %d", n)
		return
	}
	if n > MaxSpecies {
		err = fmt.Errorf("too many species: %d exceeds the maximum of %d", n, MaxSpecies)
		return
	}
	if backend.NumSpecies() != n {
		err = fmt.Errorf("backend carries %d species, model configured for %d", backend.NumSpecies(), n)
		return
	}
	if len(visc) != n || len(cond) != n || len(diff) != n {
		err = fmt.Errorf("per-species transport model slices must all have length %d, have visc[%d] cond[%d] diff[%d]",
			n, len(visc), len(cond), len(diff))
		return
	}
	if pressure <= 0 {
		err = fmt.Errorf("operating pressure must be positive, have %v", pressure)
		return
	}
	fm = &Multicomponent{
		NSpecies:            n,
		MolarMasses:         molarMasses,
		Pressure:            pressure,
		GasConstantRef:      1,
		MixingRule:          rule,
		Backend:             backend,
		Viscosity:           visc,
		Conductivity:        cond,
		Diffusivity:         diff,
		massFractions:       make([]float64, n),
		moleFractions:       make([]float64, n),
		laminarViscosity:    make([]float64, n),
		laminarConductivity: make([]float64, n),
		massDiffusivity:     make([]float64, n),
	}
	return
}

/*
MassToMoleFractions fills the internal composition from the transported
scalars: NSpecies-1 mass fractions with the last species closing the sum
to one, then molar-mass-weighted renormalization into mole fractions.
*/
func (fm *Multicomponent) MassToMoleFractions(scalars []float64) {
	var (
		n = fm.NSpecies
	)
	if len(scalars) != n-1 {
		panic(fmt.Errorf("have %d transported scalars, expecting %d", len(scalars), n-1))
	}
	var scalarSum float64
	for i, y := range scalars {
		fm.massFractions[i] = y
		scalarSum += y
	}
	fm.massFractions[n-1] = 1 - scalarSum

	var mixtureMolarMass float64
	for i := 0; i < n; i++ {
		mixtureMolarMass += fm.massFractions[i] / fm.MolarMasses[i]
	}
	for i := 0; i < n; i++ {
		fm.moleFractions[i] = (fm.massFractions[i] / fm.MolarMasses[i]) / mixtureMolarMass
	}
}

// ComputeGasConstant returns R for the current composition, normalized by the
// reference when running nondimensional
func (fm *Multicomponent) ComputeGasConstant() (R float64) {
	var meanMolarMass float64 // kg/mol
	for i := 0; i < fm.NSpecies; i++ {
		meanMolarMass += fm.moleFractions[i] * fm.MolarMasses[i] / 1000.
	}
	fm.GasConstant = thermo.UniversalGasConstant / (fm.GasConstantRef * meanMolarMass)
	R = fm.GasConstant
	return
}

// WilkeViscosity evaluates the per-species laws at the current T, Rho and
// combines them with Wilke's rule
func (fm *Multicomponent) WilkeViscosity() (Mu float64) {
	fm.evalSpeciesViscosities()
	Mu = wilkeMix(fm.moleFractions, fm.MolarMasses, fm.laminarViscosity, fm.laminarViscosity)
	return
}

func (fm *Multicomponent) DavidsonViscosity() (Mu float64) {
	fm.evalSpeciesViscosities()
	Mu = davidsonMix(fm.moleFractions, fm.MolarMasses, fm.laminarViscosity)
	return
}

// WilkeConductivity mixes the species conductivities using viscosity-based
// Wilke weights. Always used for Kt, independent of the viscosity rule.
func (fm *Multicomponent) WilkeConductivity() (Kt float64) {
	for i := 0; i < fm.NSpecies; i++ {
		fm.Conductivity[i].SetConductivity(fm.Temperature, fm.Density,
			fm.laminarViscosity[i], fm.EddyViscosity, fm.Backend.SpeciesCp(i))
		fm.laminarConductivity[i] = fm.Conductivity[i].GetConductivity()
	}
	Kt = wilkeMix(fm.moleFractions, fm.MolarMasses, fm.laminarViscosity, fm.laminarConductivity)
	return
}

func (fm *Multicomponent) evalSpeciesViscosities() {
	for i := 0; i < fm.NSpecies; i++ {
		fm.Viscosity[i].SetViscosity(fm.Temperature, fm.Density)
		fm.laminarViscosity[i] = fm.Viscosity[i].GetViscosity()
	}
}

func (fm *Multicomponent) computeMassDiffusivity() {
	for i := 0; i < fm.NSpecies; i++ {
		fm.Diffusivity[i].SetDiffusivity(fm.Density, fm.Mu, fm.Cp, fm.Kt)
		fm.massDiffusivity[i] = fm.Diffusivity[i].GetDiffusivity()
	}
}

/*
SetStateT fixes the thermodynamic state from temperature and the
transported scalars at constant operating pressure, then evaluates
density, specific heats, viscosity, conductivity and diffusivities.
*/
func (fm *Multicomponent) SetStateT(T float64, scalars []float64) (err error) {
	fm.MassToMoleFractions(scalars)
	fm.ComputeGasConstant()
	fm.Temperature = T
	fm.Density = fm.Pressure / (T * fm.GasConstant)

	if err = fm.Backend.SetState(T, fm.Pressure, fm.massFractions); err != nil {
		return
	}
	fm.Cp = fm.Backend.Cp()
	fm.Cv = fm.Cp - fm.GasConstant

	switch fm.MixingRule {
	case MIX_Wilke:
		fm.Mu = fm.WilkeViscosity()
	case MIX_Davidson:
		fm.Mu = fm.DavidsonViscosity()
	}
	fm.Kt = fm.WilkeConductivity()
	fm.computeMassDiffusivity()
	return
}

// SetEddyViscosity stores the turbulent viscosity used by the RANS
// conductivity laws. Zero for laminar runs.
func (fm *Multicomponent) SetEddyViscosity(muTurb float64) {
	fm.EddyViscosity = muTurb
}

func (fm *Multicomponent) MassFractions() (Y []float64) {
	Y = make([]float64, fm.NSpecies)
	copy(Y, fm.massFractions)
	return
}

func (fm *Multicomponent) MoleFractions() (X []float64) {
	X = make([]float64, fm.NSpecies)
	copy(X, fm.moleFractions)
	return
}

func (fm *Multicomponent) MassDiffusivities() (D []float64) {
	D = make([]float64, fm.NSpecies)
	copy(D, fm.massDiffusivity)
	return
}

func (fm *Multicomponent) SpeciesViscosities() (Mu []float64) {
	Mu = make([]float64, fm.NSpecies)
	copy(Mu, fm.laminarViscosity)
	return
}

// Gamma is the specific heat ratio at the current state
func (fm *Multicomponent) Gamma() (g float64) {
	g = fm.Cp / fm.Cv
	return
}
