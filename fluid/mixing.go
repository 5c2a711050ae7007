package fluid

import (
	"fmt"
	"math"
	"strings"
)

type MixingRuleType uint

const (
	MIX_Wilke MixingRuleType = iota
	MIX_Davidson
)

var (
	MixingRuleNames = map[string]MixingRuleType{
		"wilke":    MIX_Wilke,
		"davidson": MIX_Davidson,
	}
	MixingRulePrintNames = []string{"Wilke", "Davidson"}
)

func (mt MixingRuleType) Print() (txt string) {
	txt = MixingRulePrintNames[mt]
	return
}

func NewMixingRuleType(label string) (mt MixingRuleType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if mt, ok = MixingRuleNames[label]; !ok {
		err = fmt.Errorf("unable to use mixing rule named %s", label)
		panic(err)
	}
	return
}

/*
Wilke's rule combines pure-species properties phi_i (viscosity or
conductivity) into the mixture value

	phi_mix = sum_i( X_i*phi_i / sum_j( X_j*Phi_ij ) )

with the pairwise weight

	Phi_ij = (1 + sqrt(mu_i/mu_j)*(W_j/W_i)^1/4)^2 / sqrt(8*(1 + W_i/W_j))

and Phi_ii = 1. The weights always use the viscosities, also when mixing
conductivities.
*/
func wilkeMix(X, W, mu, prop []float64) (mix float64) {
	var (
		n = len(X)
	)
	for i := 0; i < n; i++ {
		var denominator float64
		for j := 0; j < n; j++ {
			if j != i {
				phi := math.Pow(1+math.Sqrt(mu[i]/mu[j])*math.Pow(W[j]/W[i], 0.25), 2) /
					math.Sqrt(8*(1+W[i]/W[j]))
				denominator += X[j] * phi
			} else {
				denominator += X[j]
			}
		}
		mix += X[i] * prop[i] / denominator
	}
	return
}

/*
Davidson's rule forms momentum fractions

	z_i = X_i*sqrt(W_i) / sum_j( X_j*sqrt(W_j) )

and accumulates the fluidity

	1/mu_mix = sum_ij( z_i*z_j / sqrt(mu_i*mu_j) * E_ij^A )

with E_ij = 2*sqrt(W_i*W_j)/(W_i+W_j) and A = 0.375.
*/
func davidsonMix(X, W, mu []float64) (mix float64) {
	const A = 0.375
	var (
		n = len(X)
		z = make([]float64, n)
	)
	var denominator float64
	for i := 0; i < n; i++ {
		denominator += X[i] * math.Sqrt(W[i])
	}
	for j := 0; j < n; j++ {
		z[j] = X[j] * math.Sqrt(W[j]) / denominator
	}
	var fluidity float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			E := 2 * math.Sqrt(W[i]) * math.Sqrt(W[j]) / (W[i] + W[j])
			fluidity += z[i] * z[j] / (math.Sqrt(mu[i]) * math.Sqrt(mu[j])) * math.Pow(E, A)
		}
	}
	mix = 1. / fluidity
	return
}
