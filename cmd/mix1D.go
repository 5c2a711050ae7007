/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RogueRocketeer/gofluid/InputParameters"
	"github.com/RogueRocketeer/gofluid/driver"
	"github.com/RogueRocketeer/gofluid/fluid"
	"github.com/RogueRocketeer/gofluid/model_problems/Mixing1D"
)

// Mix1DCmd represents the mix1D command
var Mix1DCmd = &cobra.Command{
	Use:   "mix1D",
	Short: "One dimensional multicomponent interdiffusion model problem",
	Long: `
Runs species and temperature interdiffusion between two boundary states on
a uniform 1D grid, with properties from the multicomponent fluid model,

gofluid mix1D -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, err := cmd.Flags().GetString("inputCaseFile")
		if err != nil {
			panic(err)
		}
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start().Stop()
		}
		cp := processInput(caseFile)
		cp.Print()
		fm, err := buildModel(cp)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		Run1D(cp, fm)
	},
}

func init() {
	rootCmd.AddCommand(Mix1DCmd)
	Mix1DCmd.Flags().StringP("inputCaseFile", "I", "", "YAML case file naming species, boundary states and grid")
	Mix1DCmd.Flags().BoolP("profile", "p", false, "write a CPU profile for the run")
}

func Run1D(cp *InputParameters.CaseParameters, fm *fluid.Multicomponent) {
	in := Mixing1D.BCState{Scalars: cp.LeftMassFractions, T: cp.LeftTemperature}
	out := Mixing1D.BCState{Scalars: cp.RightMassFractions, T: cp.RightTemperature}
	c := Mixing1D.NewMixing(cp.CFL, cp.FinalTime, cp.XMax, cp.K, cp.MaxIterations, fm, in, out)
	c.Solve(true)

	log := logrus.New()
	d := driver.New(c, log)
	for _, tag := range []string{driver.MarkerLeft, driver.MarkerRight} {
		q, err := d.GetMarkerHeatFluxes(tag)
		if err != nil {
			panic(err)
		}
		log.WithFields(logrus.Fields{
			"marker": tag,
			"q":      fmt.Sprintf("%v", q),
		}).Info("boundary heat flux")
	}
	fmt.Printf("completed %d steps to time %8.5f\n", c.Steps, c.Time)
}
