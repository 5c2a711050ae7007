package thermo

// NASA7 holds one seven coefficient polynomial row. Cp, H and S follow the
// standard forms
//
//	Cp/R = a1 + a2*T + a3*T^2 + a4*T^3 + a5*T^4
//	H/RT = a1 + a2*T/2 + a3*T^2/3 + a4*T^3/4 + a5*T^4/5 + a6/T
type NASA7 [7]float64

func (a NASA7) CpR(T float64) (cpR float64) {
	cpR = a[0] + T*(a[1]+T*(a[2]+T*(a[3]+T*a[4])))
	return
}

func (a NASA7) HRT(T float64) (hRT float64) {
	hRT = a[0] + T*(a[1]/2+T*(a[2]/3+T*(a[3]/4+T*a[4]/5))) + a[5]/T
	return
}

// TwoRangeNASA7 is the usual low/high split at TMid
type TwoRangeNASA7 struct {
	Low  NASA7   `yaml:"Low"`
	High NASA7   `yaml:"High"`
	TMid float64 `yaml:"TMid"`
}

func (tr TwoRangeNASA7) pick(T float64) (a NASA7) {
	if T < tr.TMid {
		a = tr.Low
	} else {
		a = tr.High
	}
	return
}

func (tr TwoRangeNASA7) CpR(T float64) float64 { return tr.pick(T).CpR(T) }
func (tr TwoRangeNASA7) HRT(T float64) float64 { return tr.pick(T).HRT(T) }
