// Package pipeline provides the correlated-feature pruning routine.
//
// This package wires the stages of the pruner together so the CLI and any
// embedding program share one implementation:
//
//  1. Correlate: absolute pairwise Pearson correlation of every column
//  2. Graph: connect features whose correlation exceeds the threshold
//  3. Group: connected components of the correlation graph
//  4. Select: keep the top n features per group by variance or importance
//  5. Remove: every correlated feature that was not kept
//
// # Usage
//
// The one-call form returns only the removal list:
//
//	remove, err := pipeline.Solve(table, pipeline.Options{By: "importance", Importance: imp})
//
// A [Runner] additionally exposes every intermediate artifact:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(ctx, table, pipeline.Options{Threshold: 0.8})
//	for _, d := range result.Selection.Decisions {
//	    fmt.Println(d.Group.Members, d.Kept)
//	}
//
// All intermediate data is local to a call, so a Runner may be shared
// between goroutines.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/featprune/pkg/corr"
	"github.com/matzehuels/featprune/pkg/corrgraph"
	ferrors "github.com/matzehuels/featprune/pkg/errors"
	"github.com/matzehuels/featprune/pkg/frame"
	"github.com/matzehuels/featprune/pkg/selection"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultBy is the default ranking criterion token.
	DefaultBy = selection.TokenVariance

	// DefaultThreshold is the absolute correlation a pair must exceed to be
	// connected.
	DefaultThreshold = 0.9

	// DefaultNSelect is the number of features kept per correlated group.
	DefaultNSelect = selection.DefaultNSelect
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pruning run. Zero values select the defaults.
type Options struct {
	// By names the ranking criterion: "variance" or "importance",
	// case-insensitive.
	By string `json:"by,omitempty" toml:"by"`
	// Threshold must lie strictly between 0 and 1.
	Threshold float64 `json:"threshold,omitempty" toml:"threshold"`
	// NSelect is the number of features kept per group; at least 1.
	NSelect int `json:"n_select,omitempty" toml:"n_select"`

	// Runtime options (not serialized)
	Importance *frame.Importance `json:"-" toml:"-"`
	Logger     *log.Logger       `json:"-" toml:"-"`

	criterion selection.Criterion
}

// ValidateAndSetDefaults applies defaults and validates every option before
// any computation runs. The By token is parsed into a [selection.Criterion]
// here, so an unknown token fails with INVALID_ARGUMENT at the boundary.
// Ranking by importance without scores fails with CONFIGURATION.
//
// Every call re-checks all fields, so an Options value that was validated
// and then edited is validated again. Repeated calls on an unchanged value
// are no-ops.
func (o *Options) ValidateAndSetDefaults() error {
	if o.By == "" {
		o.By = DefaultBy
	}
	c, err := selection.ParseCriterion(o.By)
	if err != nil {
		return err
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if err := ferrors.ValidateThreshold(o.Threshold); err != nil {
		return err
	}
	if o.NSelect == 0 {
		o.NSelect = DefaultNSelect
	}
	if err := ferrors.ValidateNSelect(o.NSelect); err != nil {
		return err
	}
	if c == selection.ByImportance && o.Importance == nil {
		return ferrors.New(ferrors.ErrCodeConfiguration,
			"importance scores must be provided when by=%q", selection.TokenImportance)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.criterion = c
	return nil
}

// Criterion returns the parsed ranking criterion. It is only meaningful
// after ValidateAndSetDefaults succeeded.
func (o *Options) Criterion() selection.Criterion {
	return o.criterion
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pruning run.
type Result struct {
	// RunID identifies the run in logs and hook events.
	RunID string

	// Matrix is the absolute correlation matrix.
	Matrix *corr.Matrix

	// Graph is the thresholded correlation graph.
	Graph *corrgraph.Graph

	// Groups partitions every feature, singletons included.
	Groups []corrgraph.Group

	// Selection holds the per-group decisions.
	Selection *selection.Result

	// Remove is the sorted removal list.
	Remove []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Features      int
	Rows          int
	Edges         int
	Groups        int
	Correlated    int
	CorrelateTime time.Duration
	GraphTime     time.Duration
	GroupTime     time.Duration
	SelectTime    time.Duration
	TotalTime     time.Duration
}

// Kept returns the sorted features retained as group representatives.
func (r *Result) Kept() []string {
	if r.Selection == nil {
		return nil
	}
	return r.Selection.Kept
}

// Solve computes the removal list for t: the correlated features that are
// not among the top NSelect members of their group. The list is sorted.
//
// Solve is the one-call form of [Runner.Run].
func Solve(t *frame.Table, opts Options) ([]string, error) {
	res, err := NewRunner(nil).Run(context.Background(), t, opts)
	if err != nil {
		return nil, err
	}
	return res.Remove, nil
}
