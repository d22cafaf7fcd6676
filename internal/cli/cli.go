// Package cli implements the featprune command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/featprune/pkg/buildinfo"
	"github.com/matzehuels/featprune/pkg/frame"
	"github.com/matzehuels/featprune/pkg/observability"
	"github.com/matzehuels/featprune/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "featprune"

	// envPrefix prefixes every environment variable read by the CLI.
	envPrefix = "FEATPRUNE"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the pipeline
// hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "featprune finds redundant, highly correlated features",
		Long:          `featprune groups features whose absolute Pearson correlation exceeds a threshold and recommends which members of each group to drop, keeping the best ones by variance or importance.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/featprune/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	// Register all subcommands; cobra adds "completion" itself.
	root.AddCommand(c.pruneCommand())
	root.AddCommand(c.groupsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadInputs reads the feature matrix and, when a path is given, the
// importance scores.
func (c *CLI) loadInputs(dataPath, importancePath string) (*frame.Table, *frame.Importance, error) {
	prog := newProgress(c.Logger)
	t, err := frame.ReadCSVFile(dataPath)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("read feature matrix", "path", dataPath, "features", t.NumColumns(), "rows", t.NumRows())

	var imp *frame.Importance
	if importancePath != "" {
		imp, err = frame.ReadImportanceFile(importancePath)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("read importance scores", "path", importancePath, "scores", imp.Len())
	}
	prog.debug("loaded inputs")
	return t, imp, nil
}

// pipelineOptions converts settings into pipeline options.
func (c *CLI) pipelineOptions(s Settings, imp *frame.Importance) pipeline.Options {
	return pipeline.Options{
		By:         s.By,
		Threshold:  s.Threshold,
		NSelect:    s.NSelect,
		Importance: imp,
		Logger:     c.Logger,
	}
}
