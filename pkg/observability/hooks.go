// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation of the pruning pipeline
// without adding hard dependencies on specific observability backends.
// Consumers register hooks at startup and receive one event per stage:
// correlation, graph construction, grouping and selection.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline emits events:
//
//	observability.Pipeline().OnSolveStart(ctx, runID, features)
//	// ... prune ...
//	observability.Pipeline().OnSolveComplete(ctx, runID, removed, duration, err)
//
// [LogHooks] is a ready-made implementation that writes every event to a
// charmbracelet logger at debug level.
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// PipelineHooks receives events from the pruning pipeline. Every event
// carries the run ID assigned by the pipeline runner.
type PipelineHooks interface {
	OnSolveStart(ctx context.Context, runID string, features int)
	OnCorrelationComplete(ctx context.Context, runID string, features int, duration time.Duration, err error)
	OnGraphComplete(ctx context.Context, runID string, edges, correlated int, duration time.Duration)
	OnGroupsResolved(ctx context.Context, runID string, groups, largest int, duration time.Duration)
	OnSelectionComplete(ctx context.Context, runID string, kept, removed int, duration time.Duration, err error)
	OnSolveComplete(ctx context.Context, runID string, removed int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnSolveStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnCorrelationComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnGraphComplete(context.Context, string, int, int, time.Duration)  {}
func (NoopPipelineHooks) OnGroupsResolved(context.Context, string, int, int, time.Duration) {}
func (NoopPipelineHooks) OnSelectionComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnSolveComplete(context.Context, string, int, time.Duration, error) {}

// LogHooks reports pipeline events to a logger.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnSolveStart(_ context.Context, runID string, features int) {
	h.Logger.Debug("solve started", "run", runID, "features", features)
}

func (h *LogHooks) OnCorrelationComplete(_ context.Context, runID string, features int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("correlation failed", "run", runID, "error", err)
		return
	}
	h.Logger.Debug("correlation complete", "run", runID, "features", features, "duration", d)
}

func (h *LogHooks) OnGraphComplete(_ context.Context, runID string, edges, correlated int, d time.Duration) {
	h.Logger.Debug("graph built", "run", runID, "edges", edges, "correlated", correlated, "duration", d)
}

func (h *LogHooks) OnGroupsResolved(_ context.Context, runID string, groups, largest int, d time.Duration) {
	h.Logger.Debug("groups resolved", "run", runID, "groups", groups, "largest", largest, "duration", d)
}

func (h *LogHooks) OnSelectionComplete(_ context.Context, runID string, kept, removed int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("selection failed", "run", runID, "error", err)
		return
	}
	h.Logger.Debug("selection complete", "run", runID, "kept", kept, "removed", removed, "duration", d)
}

func (h *LogHooks) OnSolveComplete(_ context.Context, runID string, removed int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("solve failed", "run", runID, "error", err, "duration", d)
		return
	}
	h.Logger.Debug("solve complete", "run", runID, "removed", removed, "duration", d)
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
