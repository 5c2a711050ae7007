package transport

import (
	"fmt"
	"strings"
)

// ConductivityModel evaluates the thermal conductivity of a single species.
// MuTurb is the eddy viscosity at the same state, zero for laminar flow.
type ConductivityModel interface {
	SetConductivity(T, Rho, Mu, MuTurb, Cp float64)
	GetConductivity() (Kt float64)
}

type ConductivityModelType uint

const (
	COND_Constant ConductivityModelType = iota
	COND_ConstantPrandtl
	COND_Polynomial
	COND_ConstantRANS
	COND_ConstantPrandtlRANS
)

var (
	ConductivityModelNames = map[string]ConductivityModelType{
		"constant":              COND_Constant,
		"constant_prandtl":      COND_ConstantPrandtl,
		"polynomial":            COND_Polynomial,
		"constant_rans":         COND_ConstantRANS,
		"constant_prandtl_rans": COND_ConstantPrandtlRANS,
	}
	ConductivityModelPrintNames = []string{
		"Constant Conductivity",
		"Constant Prandtl",
		"Polynomial Conductivity",
		"Constant Conductivity (RANS)",
		"Constant Prandtl (RANS)",
	}
)

func (ct ConductivityModelType) Print() (txt string) {
	txt = ConductivityModelPrintNames[ct]
	return
}

func NewConductivityModelType(label string) (ct ConductivityModelType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if ct, ok = ConductivityModelNames[label]; !ok {
		err = fmt.Errorf("unable to use conductivity model named %s", label)
		panic(err)
	}
	return
}

type ConstantConductivity struct {
	KtConst float64
}

func (cc *ConstantConductivity) SetConductivity(T, Rho, Mu, MuTurb, Cp float64) {}

func (cc *ConstantConductivity) GetConductivity() (Kt float64) {
	Kt = cc.KtConst
	return
}

// ConstantPrandtl derives conductivity from the laminar viscosity,
// Kt = Mu * Cp / Pr
type ConstantPrandtl struct {
	Pr float64
	kt float64
}

func (cp *ConstantPrandtl) SetConductivity(T, Rho, Mu, MuTurb, Cp float64) {
	cp.kt = Mu * Cp / cp.Pr
}

func (cp *ConstantPrandtl) GetConductivity() (Kt float64) {
	Kt = cp.kt
	return
}

type PolynomialConductivity struct {
	Coefficients []float64
	kt           float64
}

func (pc *PolynomialConductivity) SetConductivity(T, Rho, Mu, MuTurb, Cp float64) {
	pc.kt = polyEval(pc.Coefficients, T)
}

func (pc *PolynomialConductivity) GetConductivity() (Kt float64) {
	Kt = pc.kt
	return
}

// ConstantConductivityRANS augments a constant laminar conductivity with the
// turbulent contribution MuTurb*Cp/PrTurb
type ConstantConductivityRANS struct {
	KtConst, PrTurb float64
	kt              float64
}

func (cr *ConstantConductivityRANS) SetConductivity(T, Rho, Mu, MuTurb, Cp float64) {
	cr.kt = cr.KtConst + MuTurb*Cp/cr.PrTurb
}

func (cr *ConstantConductivityRANS) GetConductivity() (Kt float64) {
	Kt = cr.kt
	return
}

type ConstantPrandtlRANS struct {
	Pr, PrTurb float64
	kt         float64
}

func (pr *ConstantPrandtlRANS) SetConductivity(T, Rho, Mu, MuTurb, Cp float64) {
	pr.kt = Cp * (Mu/pr.Pr + MuTurb/pr.PrTurb)
}

func (pr *ConstantPrandtlRANS) GetConductivity() (Kt float64) {
	Kt = pr.kt
	return
}
