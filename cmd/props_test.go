package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RogueRocketeer/gofluid/InputParameters"
)

func testParams(t *testing.T) (cp *InputParameters.CaseParameters) {
	cp = &InputParameters.CaseParameters{}
	err := cp.Parse([]byte(`
Title: "air sweep"
Species: [N2, O2]
MixingRule: Wilke
OperatingPressure: 101325.
Temperature: 300.
LeftMassFractions: [0.767]
RightMassFractions: [0.767]
FinalTime: 0.01
`))
	assert.NoError(t, err)
	cp.Defaults()
	assert.NoError(t, cp.Validate())
	return
}

func TestBuildModel(t *testing.T) {
	cp := testParams(t)
	fm, err := buildModel(cp)
	assert.NoError(t, err)
	assert.Equal(t, 2, fm.NSpecies)
	{ // Unknown species fails cleanly
		cp.Species = []string{"N2", "XX"}
		_, err = buildModel(cp)
		assert.Error(t, err)
	}
}

func TestRunPropsCSV(t *testing.T) {
	cp := testParams(t)
	fm, err := buildModel(cp)
	assert.NoError(t, err)
	output := filepath.Join(t.TempDir(), "props.csv")
	RunProps(fm, cp.LeftMassFractions, 300, 600, 4, output)
	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Heading plus one line per sweep point
	assert.Equal(t, 1+4, len(lines))
	assert.Contains(t, lines[0], "Mu")
}
