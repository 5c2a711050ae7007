package transport

import (
	"fmt"
	"math"
	"strings"
)

// ViscosityModel evaluates the laminar dynamic viscosity of a single species
// at a thermodynamic state. SetViscosity stores the state, GetViscosity
// returns the last evaluated value.
type ViscosityModel interface {
	SetViscosity(T, Rho float64)
	GetViscosity() (Mu float64)
}

type ViscosityModelType uint

const (
	VISC_Constant ViscosityModelType = iota
	VISC_Sutherland
	VISC_Polynomial
)

var (
	ViscosityModelNames = map[string]ViscosityModelType{
		"constant":   VISC_Constant,
		"sutherland": VISC_Sutherland,
		"polynomial": VISC_Polynomial,
	}
	ViscosityModelPrintNames = []string{"Constant Viscosity", "Sutherland", "Polynomial Viscosity"}
)

func (vt ViscosityModelType) Print() (txt string) {
	txt = ViscosityModelPrintNames[vt]
	return
}

func NewViscosityModelType(label string) (vt ViscosityModelType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if vt, ok = ViscosityModelNames[label]; !ok {
		err = fmt.Errorf("unable to use viscosity model named %s", label)
		panic(err)
	}
	return
}

type ConstantViscosity struct {
	MuConst float64
}

func (cv *ConstantViscosity) SetViscosity(T, Rho float64) {}

func (cv *ConstantViscosity) GetViscosity() (Mu float64) {
	Mu = cv.MuConst
	return
}

// Sutherland is the three coefficient Sutherland law,
// Mu = MuRef * (T/TRef)^1.5 * (TRef+S)/(T+S)
type Sutherland struct {
	MuRef, TRef, S float64
	mu             float64
}

func NewSutherland(MuRef, TRef, S float64) *Sutherland {
	return &Sutherland{MuRef: MuRef, TRef: TRef, S: S}
}

func (s *Sutherland) SetViscosity(T, Rho float64) {
	var (
		TnonDim = T / s.TRef
	)
	s.mu = s.MuRef * TnonDim * math.Sqrt(TnonDim) * (s.TRef + s.S) / (T + s.S)
}

func (s *Sutherland) GetViscosity() (Mu float64) {
	Mu = s.mu
	return
}

// PolynomialViscosity evaluates Mu as a polynomial in temperature,
// Mu = c[0] + c[1]*T + c[2]*T^2 + ...
type PolynomialViscosity struct {
	Coefficients []float64
	mu           float64
}

func (pv *PolynomialViscosity) SetViscosity(T, Rho float64) {
	pv.mu = polyEval(pv.Coefficients, T)
}

func (pv *PolynomialViscosity) GetViscosity() (Mu float64) {
	Mu = pv.mu
	return
}

// Horner evaluation, used by the polynomial transport laws
func polyEval(coeffs []float64, T float64) (val float64) {
	for i := len(coeffs) - 1; i >= 0; i-- {
		val = val*T + coeffs[i]
	}
	return
}
