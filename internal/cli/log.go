// Package cli implements the featprune command-line interface.
//
// The CLI is a thin harness around the pruning pipeline: it reads a numeric
// CSV matrix (and optionally an importance file), runs the pipeline, and
// prints the result.
//
// # Commands
//
// The main commands are:
//   - prune: Print the features recommended for removal
//   - groups: Show correlated groups and which members are kept
//   - graph: Export the correlation graph as DOT or SVG
//   - matrix: Print the absolute correlation matrix
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// prints the intermediate artifacts of the pipeline: the matrix, the groups
// and the kept features.
//
// # Example
//
//	import "github.com/matzehuels/featprune/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level along with the elapsed time since progress was created.
// Example output: "Wrote graph.svg (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

// debug is like done but logs at debug level.
func (p *progress) debug(msg string) {
	p.logger.Debugf("%s (%s)", msg, p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}
