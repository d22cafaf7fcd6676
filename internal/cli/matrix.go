package cli

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/featprune/pkg/corr"
	ferrors "github.com/matzehuels/featprune/pkg/errors"
	"github.com/matzehuels/featprune/pkg/frame"
	"github.com/matzehuels/featprune/pkg/pipeline"
)

// matrixCommand creates the matrix command, which prints the absolute
// correlation matrix.
func (c *CLI) matrixCommand() *cobra.Command {
	var pairs bool

	cmd := &cobra.Command{
		Use:   "matrix <data.csv>",
		Short: "Print the absolute Pearson correlation matrix",
		Long: `Matrix prints |corr| for every pair of features. Constant columns have no
defined correlation and are shown as NaN (null in JSON).

With --pairs only the pairs above the threshold are listed, strongest first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			if err := ferrors.ValidateThreshold(s.Threshold); err != nil {
				return err
			}
			t, err := frame.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			m, err := corr.Compute(t)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if pairs {
				above := pairsAbove(m, s.Threshold)
				if s.Format == formatJSON {
					return writeJSON(out, nonNilPairs(above))
				}
				if len(above) == 0 {
					printWarning(out, "No feature pair exceeds threshold %.2f", s.Threshold)
					return nil
				}
				for _, p := range above {
					fmt.Fprintf(out, "%s  %s %s %s\n",
						StyleNumber.Render(fmt.Sprintf("%.4f", p.Value)), p.A, StyleDim.Render("~"), p.B)
				}
				return nil
			}

			if s.Format == formatJSON {
				return writeJSON(out, newMatrixReport(m))
			}
			fmt.Fprint(out, m.String())
			return nil
		},
	}

	cmd.Flags().Float64("threshold", pipeline.DefaultThreshold, "absolute correlation a pair must exceed to be listed with --pairs")
	cmd.Flags().StringP("format", "f", formatText, "output format: text, json")
	cmd.Flags().BoolVar(&pairs, "pairs", false, "list only pairs above the threshold")

	return cmd
}

// pairsAbove returns the pairs whose correlation is strictly greater than
// threshold, strongest first. NaN pairs are never included.
func pairsAbove(m *corr.Matrix, threshold float64) []corr.Pair {
	var out []corr.Pair
	for _, p := range m.Pairs() {
		if !math.IsNaN(p.Value) && p.Value > threshold {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b corr.Pair) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return out
}

func nonNilPairs(p []corr.Pair) []corr.Pair {
	if p == nil {
		return []corr.Pair{}
	}
	return p
}
