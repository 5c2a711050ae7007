package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title              string    `yaml:"Title"`
	Species            []string  `yaml:"Species"`
	MixingRule         string    `yaml:"MixingRule"`     // Wilke or Davidson
	ViscosityModel     string    `yaml:"ViscosityModel"` // per-species law label
	ConductivityModel  string    `yaml:"ConductivityModel"`
	DiffusivityModel   string    `yaml:"DiffusivityModel"`
	Prandtl            float64   `yaml:"Prandtl"`
	PrandtlTurb        float64   `yaml:"PrandtlTurb"`
	Schmidt            float64   `yaml:"Schmidt"`
	Lewis              float64   `yaml:"Lewis"`
	OperatingPressure  float64   `yaml:"OperatingPressure"` // Pa
	Temperature        float64   `yaml:"Temperature"`       // K, initial field value
	LeftMassFractions  []float64 `yaml:"LeftMassFractions"` // transported scalars (NSpecies-1)
	RightMassFractions []float64 `yaml:"RightMassFractions"`
	LeftTemperature    float64   `yaml:"LeftTemperature"`
	RightTemperature   float64   `yaml:"RightTemperature"`
	K                  int       `yaml:"K"` // number of cells in the 1D model problem
	XMax               float64   `yaml:"XMax"`
	CFL                float64   `yaml:"CFL"`
	FinalTime          float64   `yaml:"FinalTime"`
	MaxIterations      int       `yaml:"MaxIterations"`
	SpeciesDatabase    string    `yaml:"SpeciesDatabase"` // optional YAML file overriding the built-in table
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Validate() (err error) {
	n := len(cp.Species)
	if n < 2 {
		err = fmt.Errorf("need at least 2 species, have %d", n)
		return
	}
	if len(cp.LeftMassFractions) != n-1 || len(cp.RightMassFractions) != n-1 {
		err = fmt.Errorf("mass fraction lists carry the %d transported scalars, have left[%d] right[%d]",
			n-1, len(cp.LeftMassFractions), len(cp.RightMassFractions))
		return
	}
	for _, Y := range [][]float64{cp.LeftMassFractions, cp.RightMassFractions} {
		var sum float64
		for _, y := range Y {
			if y < 0 || y > 1 {
				err = fmt.Errorf("mass fraction %v outside [0,1]", y)
				return
			}
			sum += y
		}
		if sum > 1 {
			err = fmt.Errorf("transported mass fractions sum to %v, leaving a negative closure species", sum)
			return
		}
	}
	if cp.OperatingPressure <= 0 {
		err = fmt.Errorf("operating pressure must be positive, have %v", cp.OperatingPressure)
		return
	}
	if cp.Temperature <= 0 {
		err = fmt.Errorf("temperature must be positive, have %v", cp.Temperature)
		return
	}
	return
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%v\t= Species\n", cp.Species)
	fmt.Printf("[%s]\t\t\t= Mixing Rule\n", cp.MixingRule)
	fmt.Printf("[%s]\t\t= Viscosity Model\n", cp.ViscosityModel)
	fmt.Printf("[%s]\t= Conductivity Model\n", cp.ConductivityModel)
	fmt.Printf("[%s]\t\t= Diffusivity Model\n", cp.DiffusivityModel)
	fmt.Printf("%8.1f\t\t= Operating Pressure\n", cp.OperatingPressure)
	fmt.Printf("%8.2f\t\t= Temperature\n", cp.Temperature)
	fmt.Printf("%8.5f\t\t= CFL\n", cp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", cp.FinalTime)
	fmt.Printf("[%d]\t\t\t\t= K\n", cp.K)
}

// Defaults fills the optional fields a case file commonly omits
func (cp *CaseParameters) Defaults() {
	if cp.MixingRule == "" {
		cp.MixingRule = "Wilke"
	}
	if cp.ViscosityModel == "" {
		cp.ViscosityModel = "Sutherland"
	}
	if cp.ConductivityModel == "" {
		cp.ConductivityModel = "Constant_Prandtl"
	}
	if cp.DiffusivityModel == "" {
		cp.DiffusivityModel = "Unity_Lewis"
	}
	if cp.Prandtl == 0 {
		cp.Prandtl = 0.72
	}
	if cp.PrandtlTurb == 0 {
		cp.PrandtlTurb = 0.9
	}
	if cp.Schmidt == 0 {
		cp.Schmidt = 0.7
	}
	if cp.Lewis == 0 {
		cp.Lewis = 1
	}
	if cp.CFL == 0 {
		cp.CFL = 0.4
	}
	if cp.K == 0 {
		cp.K = 100
	}
	if cp.XMax == 0 {
		cp.XMax = 1
	}
	if cp.LeftTemperature == 0 {
		cp.LeftTemperature = cp.Temperature
	}
	if cp.RightTemperature == 0 {
		cp.RightTemperature = cp.Temperature
	}
}
