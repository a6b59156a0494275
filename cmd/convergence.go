/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/godec/DEC1D"
	"github.com/notargets/godec/InputParameters"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Convergence orders of the interpolation, histopolation and Hodge operators",
	Long: `
Reconstructs an analytic periodic function from its nodal values, cell integrals
or dual cell integrals on a sequence of grids and reports the maximum error and
the observed order of accuracy for each degree,

godec convergence -n 1,3,5 -k 20,40,80 --csv orders.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip      *InputParameters.InputParametersDEC1D
			csvFile string
		)
		if ip, err = processConvergenceInput(cmd); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ip.Print()
		}
		csvFile, _ = cmd.Flags().GetString("csv")
		return RunConvergence(ip, cmd.OutOrStdout(), csvFile)
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().IntSliceP("n", "n", InputParameters.DefaultDegrees, "odd polynomial degrees")
	ConvergenceCmd.Flags().IntSliceP("k", "k", InputParameters.DefaultCellCounts, "cell counts, each refinement of the last")
	ConvergenceCmd.Flags().StringP("inputFile", "I", "", "YAML file for input parameters like:\n\t- Degrees\n\t- CellCounts\n\t- TestFunction")
	ConvergenceCmd.Flags().StringP("function", "f", "sin4pi", "test function: sin4pi, sin2pi or expsin")
	ConvergenceCmd.Flags().Int("samples", 1000, "number of fixed points the maximum error is measured on")
	ConvergenceCmd.Flags().StringSlice("studies", InputParameters.DefaultStudies, "studies to run")
	ConvergenceCmd.Flags().String("csv", "", "also write the results to this CSV file")
	_ = viper.BindPFlag("convergence.input", ConvergenceCmd.Flags().Lookup("inputFile"))
}

// processConvergenceInput reads the optional YAML input, then lets any flag
// set on the command line override it.
func processConvergenceInput(cmd *cobra.Command) (ip *InputParameters.InputParametersDEC1D, err error) {
	ip = &InputParameters.InputParametersDEC1D{}
	if inputFile := viper.GetString("convergence.input"); len(inputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(inputFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w\nExample File:%s", inputFile, err, InputParameters.ExampleFile)
			return
		}
		logger.Debug("read input file", zap.String("file", inputFile))
	}
	flags := cmd.Flags()
	if flags.Changed("n") || len(ip.Degrees) == 0 {
		ip.Degrees, _ = flags.GetIntSlice("n")
	}
	if flags.Changed("k") || len(ip.CellCounts) == 0 {
		ip.CellCounts, _ = flags.GetIntSlice("k")
	}
	if flags.Changed("function") || len(ip.TestFunction) == 0 {
		ip.TestFunction, _ = flags.GetString("function")
	}
	if flags.Changed("samples") || ip.Samples == 0 {
		ip.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("studies") || len(ip.Studies) == 0 {
		ip.Studies, _ = flags.GetStringSlice("studies")
	}
	ip.SetDefaults()
	err = ip.Validate()
	return
}

// RunConvergence runs every requested study for every degree, printing a
// table per study to w and optionally writing all results to csvFile.
func RunConvergence(ip *InputParameters.InputParametersDEC1D, w io.Writer, csvFile string) (err error) {
	var (
		tf      DEC1D.TestFunction
		studies []*DEC1D.ConvergenceStudy
	)
	if tf, err = DEC1D.NewTestFunction(ip.TestFunction); err != nil {
		return
	}
	for _, name := range ip.Studies {
		var st DEC1D.StudyType
		if st, err = DEC1D.NewStudyType(name); err != nil {
			return
		}
		for _, degree := range ip.Degrees {
			var cs *DEC1D.ConvergenceStudy
			cs, err = DEC1D.RunConvergenceStudy(st, tf, ip.XMin, ip.XMax, degree, ip.CellCounts, ip.Samples)
			if err != nil {
				return
			}
			if len(ip.Title) != 0 {
				cs.Title = ip.Title + ": " + cs.Title
			}
			logger.Debug("study complete",
				zap.Stringer("study", st),
				zap.Int("degree", degree),
				zap.Float64s("maxErr", cs.MaxErr))
			cs.Print(w)
			fmt.Fprintln(w)
			studies = append(studies, cs)
		}
	}
	if len(csvFile) != 0 {
		var f *os.File
		if f, err = os.Create(csvFile); err != nil {
			return
		}
		defer f.Close()
		if err = DEC1D.WriteCSV(f, studies...); err != nil {
			return
		}
		logger.Info("wrote convergence results", zap.String("file", csvFile), zap.Int("studies", len(studies)))
	}
	return
}
