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

	"github.com/btracey/numcsv"
	"github.com/gonum/matrix/mat64"
	"github.com/spf13/cobra"

	"github.com/RogueRocketeer/gofluid/fluid"
)

// PropsCmd represents the props command
var PropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Mixture property table over a temperature sweep",
	Long: `
Evaluates density, specific heats, viscosity, conductivity and mass
diffusivity of the case mixture over a temperature range using the
configured mixing rule,

gofluid props -I case.yaml --tMin 300 --tMax 1200`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, err := cmd.Flags().GetString("inputCaseFile")
		if err != nil {
			panic(err)
		}
		tMin, _ := cmd.Flags().GetFloat64("tMin")
		tMax, _ := cmd.Flags().GetFloat64("tMax")
		steps, _ := cmd.Flags().GetInt("steps")
		output, _ := cmd.Flags().GetString("output")
		cp := processInput(caseFile)
		cp.Print()
		fm, err := buildModel(cp)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		RunProps(fm, cp.LeftMassFractions, tMin, tMax, steps, output)
	},
}

func init() {
	rootCmd.AddCommand(PropsCmd)
	PropsCmd.Flags().StringP("inputCaseFile", "I", "", "YAML case file naming species, mixing rule and transport models")
	PropsCmd.Flags().Float64("tMin", 300, "sweep start temperature [K]")
	PropsCmd.Flags().Float64("tMax", 1200, "sweep end temperature [K]")
	PropsCmd.Flags().IntP("steps", "s", 10, "number of sweep points")
	PropsCmd.Flags().StringP("output", "o", "", "write the table as CSV to this file")
}

var propsHeadings = []string{"T", "Rho", "Cp", "Cv", "Mu", "Kt", "Dmax"}

func RunProps(fm *fluid.Multicomponent, scalars []float64, tMin, tMax float64, steps int, output string) {
	if steps < 2 {
		steps = 2
	}
	table := mat64.NewDense(steps, len(propsHeadings), nil)
	dT := (tMax - tMin) / float64(steps-1)
	fmt.Printf("%8s %10s %10s %10s %12s %10s %12s\n",
		"T[K]", "Rho", "Cp", "Cv", "Mu", "Kt", "Dmax")
	for i := 0; i < steps; i++ {
		T := tMin + float64(i)*dT
		if err := fm.SetStateT(T, scalars); err != nil {
			panic(err)
		}
		var dmax float64
		for _, D := range fm.MassDiffusivities() {
			if D > dmax {
				dmax = D
			}
		}
		row := []float64{T, fm.Density, fm.Cp, fm.Cv, fm.Mu, fm.Kt, dmax}
		table.SetRow(i, row)
		fmt.Printf("%8.2f %10.5f %10.2f %10.2f %12.5e %10.5f %12.5e\n",
			T, fm.Density, fm.Cp, fm.Cv, fm.Mu, fm.Kt, dmax)
	}
	if len(output) != 0 {
		f, err := os.Create(output)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		w := numcsv.NewWriter(f)
		w.FloatFmt = 'g'
		if err = w.WriteAll(propsHeadings, table); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", output)
	}
}
