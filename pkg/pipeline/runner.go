package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/featprune/pkg/corr"
	"github.com/matzehuels/featprune/pkg/corrgraph"
	ferrors "github.com/matzehuels/featprune/pkg/errors"
	"github.com/matzehuels/featprune/pkg/frame"
	"github.com/matzehuels/featprune/pkg/observability"
	"github.com/matzehuels/featprune/pkg/selection"
)

// Runner executes the pruning stages in order.
//
// The Runner is stateless except for the logger - it doesn't store results.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Run executes the complete correlate → graph → group → select pipeline.
//
// Options are validated before any computation. The context is checked
// between stages; each stage itself runs to completion. On error no partial
// result is returned.
func (r *Runner) Run(ctx context.Context, t *frame.Table, opts Options) (res *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if t == nil {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "no feature table")
	}

	hooks := observability.Pipeline()
	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	start := time.Now()

	hooks.OnSolveStart(ctx, runID, t.NumColumns())
	defer func() {
		removed := 0
		if res != nil {
			removed = len(res.Remove)
		}
		hooks.OnSolveComplete(ctx, runID, removed, time.Since(start), err)
	}()

	logger.Debug("pruning correlated features",
		"features", t.NumColumns(),
		"rows", t.NumRows(),
		"by", opts.Criterion(),
		"threshold", opts.Threshold,
		"n_select", opts.NSelect)

	out := &Result{RunID: runID}
	out.Stats.Features = t.NumColumns()
	out.Stats.Rows = t.NumRows()

	// Stage 1: Correlate
	stageStart := time.Now()
	m, err := corr.Compute(t)
	out.Stats.CorrelateTime = time.Since(stageStart)
	hooks.OnCorrelationComplete(ctx, runID, t.NumColumns(), out.Stats.CorrelateTime, err)
	if err != nil {
		return nil, fmt.Errorf("correlate: %w", err)
	}
	out.Matrix = m
	logger.Debug("computed correlation matrix", "duration", out.Stats.CorrelateTime)
	logger.Debug("correlation matrix\n" + m.String())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Graph
	stageStart = time.Now()
	g := corrgraph.Build(m, opts.Threshold)
	out.Graph = g
	out.Stats.GraphTime = time.Since(stageStart)
	out.Stats.Edges = g.EdgeCount()
	out.Stats.Correlated = len(g.Correlated())
	hooks.OnGraphComplete(ctx, runID, g.EdgeCount(), out.Stats.Correlated, out.Stats.GraphTime)
	logger.Debug("built correlation graph",
		"edges", g.EdgeCount(),
		"correlated", out.Stats.Correlated,
		"duration", out.Stats.GraphTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Group
	stageStart = time.Now()
	groups := corrgraph.Components(g)
	out.Groups = groups
	out.Stats.GroupTime = time.Since(stageStart)
	out.Stats.Groups = len(groups)
	largest := 0
	for _, gr := range groups {
		largest = max(largest, gr.Size())
		if !gr.IsSingleton() {
			logger.Debug("correlated group", "members", gr.Members)
		}
	}
	hooks.OnGroupsResolved(ctx, runID, len(groups), largest, out.Stats.GroupTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Select
	stageStart = time.Now()
	sel, err := r.selectFeatures(t, groups, g.Correlated(), opts)
	out.Stats.SelectTime = time.Since(stageStart)
	kept, removed := 0, 0
	if sel != nil {
		kept, removed = len(sel.Kept), len(sel.Remove)
	}
	hooks.OnSelectionComplete(ctx, runID, kept, removed, out.Stats.SelectTime, err)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	out.Selection = sel
	out.Remove = sel.Remove
	out.Stats.TotalTime = time.Since(start)

	logger.Debug("selected features", "kept", sel.Kept)
	logger.Info("pruning complete",
		"correlated", out.Stats.Correlated,
		"groups", len(sel.Decisions),
		"removed", len(out.Remove),
		"duration", out.Stats.TotalTime)

	return out, nil
}

func (r *Runner) selectFeatures(t *frame.Table, groups []corrgraph.Group, correlated []string, opts Options) (*selection.Result, error) {
	ranker, err := selection.NewRanker(opts.Criterion(), t, opts.Importance)
	if err != nil {
		return nil, err
	}
	return selection.Select(groups, correlated, ranker, opts.NSelect)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
