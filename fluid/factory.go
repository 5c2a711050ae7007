package fluid

import (
	"fmt"

	"github.com/RogueRocketeer/gofluid/thermo"
	"github.com/RogueRocketeer/gofluid/transport"
)

/*
NewFromSpecies assembles the usual configuration for a named species set:
Sutherland viscosity from the database transport constants, constant
Prandtl conductivity and unity Lewis diffusivity per species, with the
ideal gas backend. Custom per-species laws go through NewMulticomponent
directly.
*/
func NewFromSpecies(species []thermo.Species, pressure float64, rule MixingRuleType,
	prandtl float64) (fm *Multicomponent, err error) {
	consts := TransportConstants{Prandtl: prandtl, PrandtlTurb: 0.9, Schmidt: 0.7, Lewis: 1}
	fm, err = NewFromLabels(species, pressure, rule.Print(), "Sutherland", "Constant_Prandtl", "Unity_Lewis", consts)
	return
}

// TransportConstants carries the scalar closure coefficients the label-built
// transport laws need
type TransportConstants struct {
	Prandtl, PrandtlTurb float64
	Schmidt, Lewis       float64
	MuConst, KtConst     float64
	DConst               float64
}

// NewFromLabels builds the model from case-file label strings, applying the
// same law to every species. Sutherland constants come from the species
// database entries.
func NewFromLabels(species []thermo.Species, pressure float64, ruleLabel,
	viscLabel, condLabel, diffLabel string, consts TransportConstants) (fm *Multicomponent, err error) {
	var (
		n           = len(species)
		molarMasses = make([]float64, n)
		visc        = make([]transport.ViscosityModel, n)
		cond        = make([]transport.ConductivityModel, n)
		diff        = make([]transport.DiffusivityModel, n)
	)
	rule := NewMixingRuleType(ruleLabel)
	viscType := transport.NewViscosityModelType(viscLabel)
	condType := transport.NewConductivityModelType(condLabel)
	diffType := transport.NewDiffusivityModelType(diffLabel)
	for i, sp := range species {
		molarMasses[i] = sp.MolarMass
		switch viscType {
		case transport.VISC_Constant:
			visc[i] = &transport.ConstantViscosity{MuConst: consts.MuConst}
		case transport.VISC_Sutherland:
			visc[i] = transport.NewSutherland(sp.MuRef, sp.TRef, sp.SMu)
		case transport.VISC_Polynomial:
			err = fmt.Errorf("polynomial viscosity needs per-species coefficients, assemble with NewMulticomponent")
			return
		}
		switch condType {
		case transport.COND_Constant:
			cond[i] = &transport.ConstantConductivity{KtConst: consts.KtConst}
		case transport.COND_ConstantPrandtl:
			cond[i] = &transport.ConstantPrandtl{Pr: consts.Prandtl}
		case transport.COND_ConstantRANS:
			cond[i] = &transport.ConstantConductivityRANS{KtConst: consts.KtConst, PrTurb: consts.PrandtlTurb}
		case transport.COND_ConstantPrandtlRANS:
			cond[i] = &transport.ConstantPrandtlRANS{Pr: consts.Prandtl, PrTurb: consts.PrandtlTurb}
		case transport.COND_Polynomial:
			err = fmt.Errorf("polynomial conductivity needs per-species coefficients, assemble with NewMulticomponent")
			return
		}
		switch diffType {
		case transport.DIFF_Constant:
			diff[i] = &transport.ConstantDiffusivity{DConst: consts.DConst}
		case transport.DIFF_ConstantSchmidt:
			diff[i] = &transport.ConstantSchmidt{Sc: consts.Schmidt}
		case transport.DIFF_UnityLewis:
			diff[i] = &transport.UnityLewis{}
		case transport.DIFF_ConstantLewis:
			diff[i] = &transport.ConstantLewis{Le: consts.Lewis}
		}
	}
	fm, err = NewMulticomponent(thermo.NewIdealGas(species), molarMasses, pressure, rule, visc, cond, diff)
	return
}
