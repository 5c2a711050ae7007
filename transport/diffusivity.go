package transport

import (
	"fmt"
	"strings"
)

// DiffusivityModel evaluates the mass diffusivity of a species into the
// mixture from the mixture state.
type DiffusivityModel interface {
	SetDiffusivity(Rho, Mu, Cp, Kt float64)
	GetDiffusivity() (D float64)
}

type DiffusivityModelType uint

const (
	DIFF_Constant DiffusivityModelType = iota
	DIFF_ConstantSchmidt
	DIFF_UnityLewis
	DIFF_ConstantLewis
)

var (
	DiffusivityModelNames = map[string]DiffusivityModelType{
		"constant":         DIFF_Constant,
		"constant_schmidt": DIFF_ConstantSchmidt,
		"unity_lewis":      DIFF_UnityLewis,
		"constant_lewis":   DIFF_ConstantLewis,
	}
	DiffusivityModelPrintNames = []string{
		"Constant Diffusivity",
		"Constant Schmidt",
		"Unity Lewis",
		"Constant Lewis",
	}
)

func (dt DiffusivityModelType) Print() (txt string) {
	txt = DiffusivityModelPrintNames[dt]
	return
}

func NewDiffusivityModelType(label string) (dt DiffusivityModelType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if dt, ok = DiffusivityModelNames[label]; !ok {
		err = fmt.Errorf("unable to use diffusivity model named %s", label)
		panic(err)
	}
	return
}

type ConstantDiffusivity struct {
	DConst float64
}

func (cd *ConstantDiffusivity) SetDiffusivity(Rho, Mu, Cp, Kt float64) {}

func (cd *ConstantDiffusivity) GetDiffusivity() (D float64) {
	D = cd.DConst
	return
}

// ConstantSchmidt derives diffusivity from viscosity, D = Mu/(Rho*Sc)
type ConstantSchmidt struct {
	Sc float64
	d  float64
}

func (cs *ConstantSchmidt) SetDiffusivity(Rho, Mu, Cp, Kt float64) {
	cs.d = Mu / (Rho * cs.Sc)
}

func (cs *ConstantSchmidt) GetDiffusivity() (D float64) {
	D = cs.d
	return
}

// UnityLewis sets the diffusivity so that thermal and mass diffusion
// boundary layers coincide, D = Kt/(Rho*Cp)
type UnityLewis struct {
	d float64
}

func (ul *UnityLewis) SetDiffusivity(Rho, Mu, Cp, Kt float64) {
	ul.d = Kt / (Rho * Cp)
}

func (ul *UnityLewis) GetDiffusivity() (D float64) {
	D = ul.d
	return
}

type ConstantLewis struct {
	Le float64
	d  float64
}

func (cl *ConstantLewis) SetDiffusivity(Rho, Mu, Cp, Kt float64) {
	cl.d = Kt / (Rho * Cp * cl.Le)
}

func (cl *ConstantLewis) GetDiffusivity() (D float64) {
	D = cl.d
	return
}
