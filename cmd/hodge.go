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
	"math"

	"github.com/james-bowman/sparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/godec/DEC1D"
	"github.com/notargets/godec/utils"
)

// HodgeCmd represents the hodge command
var HodgeCmd = &cobra.Command{
	Use:   "hodge",
	Short: "Print the Hodge star stencils and the H1*H0 round trip defect",
	Long: `
Assembles the circulant Hodge matrices between the primal and dual grids for
one degree and cell count, prints their stencils and measures how far H1*H0
is from the identity on sin(2*pi*x),

godec hodge -n 3 -k 16 --matrix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		degree, _ := cmd.Flags().GetInt("n")
		K, _ := cmd.Flags().GetInt("k")
		dx, _ := cmd.Flags().GetFloat64("dx")
		printMatrix, _ := cmd.Flags().GetBool("matrix")
		return RunHodge(cmd.OutOrStdout(), degree, K, dx, printMatrix)
	},
}

func init() {
	rootCmd.AddCommand(HodgeCmd)
	HodgeCmd.Flags().IntP("n", "n", 3, "odd polynomial degree")
	HodgeCmd.Flags().IntP("k", "k", 16, "number of cells")
	HodgeCmd.Flags().Float64("dx", 1, "cell width, 1 gives the dimensionless operators")
	HodgeCmd.Flags().BoolP("matrix", "m", false, "print the full H0 and H1 matrices")
}

func RunHodge(w io.Writer, degree, K int, dx float64, printMatrix bool) (err error) {
	for _, ht := range []DEC1D.HodgeType{DEC1D.H0, DEC1D.H1} {
		var (
			s  DEC1D.Stencil
			H  utils.Matrix
			Hs *sparse.CSR
		)
		if s, err = DEC1D.HodgeStencil(ht, degree, dx); err != nil {
			return
		}
		fmt.Fprintf(w, "%v stencil, degree %d, offsets [%d,%d]\n", ht, degree, s.MinOffset, s.MaxOffset())
		for i, c := range s.C {
			fmt.Fprintf(w, "%4d %22.16f\n", s.MinOffset+i, c)
		}
		if printMatrix {
			if H, err = DEC1D.DefaultHodgeCache.Get(ht, K, degree, dx); err != nil {
				return
			}
			fmt.Fprintf(w, "%v =\n%v\n", ht, H)
		}
		if Hs, err = DEC1D.HodgeSparse(ht, K, degree, dx); err != nil {
			return
		}
		logger.Debug("assembled hodge operator",
			zap.Stringer("type", ht),
			zap.Int("K", K),
			zap.Int("nnz", Hs.NNZ()))
	}
	u := make([]float64, K)
	for i := range u {
		u[i] = math.Sin(2 * math.Pi * float64(i) / float64(K))
	}
	var R []float64
	if R, err = DEC1D.HodgeRoundTrip(u, degree, dx); err != nil {
		return
	}
	fmt.Fprintf(w, "max |H1*H0*u - u| = %12.6e, K = %d\n", DEC1D.MaxErrorVec(R, u), K)
	var identity, inverse float64
	if identity, inverse, err = DEC1D.HodgeInverseDefect(K, degree, dx); err != nil {
		return
	}
	fmt.Fprintf(w, "max |H1*H0 - I| = %12.6e, max |inv(H0) - H1| = %12.6e\n", identity, inverse)
	logger.Debug("hodge cache", zap.Int("entries", DEC1D.DefaultHodgeCache.Len()))
	return
}
