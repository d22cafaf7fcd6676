package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// pruneCommand creates the prune command, which prints the removal list.
func (c *CLI) pruneCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "prune <data.csv>",
		Short: "List features that are redundant with a kept, correlated feature",
		Long: `Prune reads a numeric CSV matrix (header row = feature names) and prints the
features to drop. Features whose absolute correlation exceeds the threshold
are grouped; the best n of each group are kept and the rest are listed.

With --output and text format the file receives one feature name per line.`,
		Example: `  featprune prune data.csv
  featprune prune data.csv --threshold 0.8 --n-select 2
  featprune prune data.csv --by importance --importance scores.json -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			return c.runPrune(cmd, args[0], s, output)
		},
	}

	addSettingsFlags(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

func (c *CLI) runPrune(cmd *cobra.Command, dataPath string, s Settings, output string) error {
	t, imp, err := c.loadInputs(dataPath, s.Importance)
	if err != nil {
		return err
	}

	res, err := c.newRunner().Run(cmd.Context(), t, c.pipelineOptions(s, imp))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.Format == formatJSON {
		if err := writeOutput(output, out, func(w io.Writer) error {
			return writeJSON(w, newPruneReport(res, s.NSelect))
		}); err != nil {
			return err
		}
		if output != "" {
			printFile(cmd.ErrOrStderr(), output)
		}
		return nil
	}

	if output != "" {
		if err := writeOutput(output, out, func(w io.Writer) error {
			for _, f := range res.Remove {
				if _, err := fmt.Fprintln(w, f); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}

	printStats(out, res.Stats.Features, res.Stats.Edges, len(res.Selection.Decisions))
	if len(res.Remove) == 0 {
		printSuccess(out, "No redundant features above threshold %s", StyleNumber.Render(fmt.Sprintf("%.2f", res.Graph.Threshold())))
	} else {
		printInfo(out, "%d of %d features are correlated; keeping %d by %s",
			res.Stats.Correlated, res.Stats.Features, len(res.Kept()), res.Selection.Criterion)
		printKeyValue(out, "keep", renderFeatures(res.Kept(), StyleKept))
		printKeyValue(out, "remove", renderFeatures(res.Remove, StyleRemoved))
	}
	if output != "" {
		printFile(out, output)
	}
	return nil
}
