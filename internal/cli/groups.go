package cli

import (
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/featprune/pkg/pipeline"
)

// groupsCommand creates the groups command, which shows every correlated
// group with its kept and removed members.
func (c *CLI) groupsCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "groups <data.csv>",
		Short: "Show groups of correlated features and the members kept",
		Example: `  featprune groups data.csv --threshold 0.8
  featprune groups data.csv --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			t, imp, err := c.loadInputs(args[0], s.Importance)
			if err != nil {
				return err
			}
			res, err := c.newRunner().Run(cmd.Context(), t, c.pipelineOptions(s, imp))
			if err != nil {
				return err
			}

			if s.Format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), newPruneReport(res, s.NSelect).Groups)
			}
			if interactive && len(res.Selection.Decisions) > 0 {
				_, err := tea.NewProgram(newGroupListModel(res),
					tea.WithContext(cmd.Context()),
					tea.WithAltScreen(),
				).Run()
				return err
			}
			printGroups(cmd.OutOrStdout(), res)
			return nil
		},
	}

	addSettingsFlags(cmd, true)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse groups in an interactive view")

	return cmd
}

// printGroups renders the correlated groups as a table.
func printGroups(w io.Writer, res *pipeline.Result) {
	decisions := res.Selection.Decisions
	if len(decisions) == 0 {
		printWarning(w, "No feature pair exceeds threshold %.2f", res.Graph.Threshold())
		return
	}

	rows := make([][]string, len(decisions))
	for i, d := range decisions {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(d.Group.Size()),
			renderFeatures(d.Kept, StyleKept),
			renderFeatures(d.Removed, StyleRemoved),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Size", "Kept", "Removed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col < 2 {
				return StyleDim.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Correlated groups (by %s, threshold %.2f)",
		res.Selection.Criterion, res.Graph.Threshold())))
	fmt.Fprintln(w, t.Render())
	printStats(w, res.Stats.Features, res.Stats.Edges, len(decisions))
}
