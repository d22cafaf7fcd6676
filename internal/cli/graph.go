package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/featprune/pkg/corrgraph"
	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

const (
	graphTypeDOT = "dot"
	graphTypeSVG = "svg"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output       string // output file; stdout when empty
	graphType    string // "dot" or "svg"; inferred from output extension when empty
	hideIsolated bool   // omit features without edges
}

// graphCommand creates the graph command, which exports the correlation
// graph for inspection with Graphviz.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <data.csv>",
		Short: "Export the correlation graph as Graphviz DOT or SVG",
		Long: `Graph writes the thresholded correlation graph. Each group of correlated
features is drawn as a cluster; kept features are filled green and removed
features are dashed. Edges are labelled with their absolute correlation.`,
		Example: `  featprune graph data.csv -o graph.svg
  featprune graph data.csv --threshold 0.8 | dot -Tpng > graph.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphType, err := resolveGraphType(opts.graphType, opts.output)
			if err != nil {
				return err
			}
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

			dot := corrgraph.ToDOT(res.Graph, corrgraph.DOTOptions{
				Groups:       res.Groups,
				Kept:         res.Kept(),
				Removed:      res.Remove,
				Matrix:       res.Matrix,
				HideIsolated: opts.hideIsolated,
			})

			data := []byte(dot)
			if graphType == graphTypeSVG {
				prog := newProgress(c.Logger)
				err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering SVG...", func() error {
					var err error
					data, err = corrgraph.RenderSVG(cmd.Context(), dot)
					return err
				})
				if err != nil {
					return ferrors.Wrap(ferrors.ErrCodeInternal, err, "render svg")
				}
				prog.debug("rendered svg")
			}

			if err := writeOutput(opts.output, cmd.OutOrStdout(), func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}); err != nil {
				return err
			}
			if opts.output != "" {
				printFile(cmd.ErrOrStderr(), opts.output)
			}
			return nil
		},
	}

	addSettingsFlags(cmd, false)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.graphType, "type", "t", "", "output type: dot, svg (default from --output extension, else dot)")
	cmd.Flags().BoolVar(&opts.hideIsolated, "hide-isolated", false, "omit features that are not correlated with any other")

	return cmd
}

// resolveGraphType returns the explicit type, or infers it from the output
// file extension.
func resolveGraphType(explicit, output string) (string, error) {
	t := strings.ToLower(explicit)
	if t == "" {
		t = graphTypeDOT
		if strings.EqualFold(filepath.Ext(output), ".svg") {
			t = graphTypeSVG
		}
	}
	switch t {
	case graphTypeDOT, graphTypeSVG:
		return t, nil
	}
	return "", ferrors.New(ferrors.ErrCodeInvalidArgument, "invalid graph type: %q (must be one of: dot, svg)", explicit)
}
