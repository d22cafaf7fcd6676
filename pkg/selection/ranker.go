package selection

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
	"github.com/matzehuels/featprune/pkg/frame"
)

// Ranker scores features; higher scores rank first.
type Ranker interface {
	// Criterion identifies the ranking rule.
	Criterion() Criterion
	// Score returns the ranking score of a feature.
	Score(feature string) (float64, error)
}

// NewRanker returns the ranker for c.
//
// For ByImportance, importance must be non-nil; otherwise a CONFIGURATION
// error is returned. For ByVariance, importance is ignored.
func NewRanker(c Criterion, t *frame.Table, importance *frame.Importance) (Ranker, error) {
	switch c {
	case ByVariance:
		if t == nil {
			return nil, ferrors.New(ferrors.ErrCodeConfiguration, "ranking by %s requires a feature table", c)
		}
		return &VarianceRanker{Table: t}, nil
	case ByImportance:
		if importance == nil {
			return nil, ferrors.New(ferrors.ErrCodeConfiguration, "importance scores must be provided when ranking by %s", c)
		}
		return &ImportanceRanker{Importance: importance}, nil
	default:
		return nil, ferrors.New(ferrors.ErrCodeInvalidArgument, "invalid ranking criterion %d", int(c))
	}
}

// VarianceRanker scores a feature by the sample variance (n-1 denominator)
// of its column.
type VarianceRanker struct {
	Table *frame.Table
}

// Criterion returns ByVariance.
func (r *VarianceRanker) Criterion() Criterion { return ByVariance }

// Score returns the sample variance of the feature's column.
func (r *VarianceRanker) Score(feature string) (float64, error) {
	col, ok := r.Table.Column(feature)
	if !ok {
		return 0, ferrors.New(ferrors.ErrCodeInvalidInput, "unknown feature %q", feature)
	}
	return stat.Variance(col, nil), nil
}

// ImportanceRanker scores a feature by its importance entry.
type ImportanceRanker struct {
	Importance *frame.Importance
}

// Criterion returns ByImportance.
func (r *ImportanceRanker) Criterion() Criterion { return ByImportance }

// Score returns the importance of the feature, or a MISSING_IMPORTANCE
// error when it has no entry.
func (r *ImportanceRanker) Score(feature string) (float64, error) {
	s, ok := r.Importance.Score(feature)
	if !ok {
		return 0, ferrors.Wrap(ferrors.ErrCodeMissingImportance,
			&ferrors.MissingImportanceError{Features: []string{feature}}, "rank by importance")
	}
	return s, nil
}

// Ranked is a feature with its score.
type Ranked struct {
	Feature string
	Score   float64
}

// Rank orders features by score, highest first. Ties are broken by feature
// name, ascending, so the order is reproducible. NaN scores rank last.
//
// For an ImportanceRanker every missing entry is collected and reported in
// a single MISSING_IMPORTANCE error.
func Rank(features []string, r Ranker) ([]Ranked, error) {
	if ir, ok := r.(*ImportanceRanker); ok {
		if missing := ir.Importance.Missing(features); len(missing) > 0 {
			slices.Sort(missing)
			return nil, ferrors.Wrap(ferrors.ErrCodeMissingImportance,
				&ferrors.MissingImportanceError{Features: missing}, "rank by importance")
		}
	}

	out := make([]Ranked, len(features))
	for i, f := range features {
		s, err := r.Score(f)
		if err != nil {
			return nil, err
		}
		out[i] = Ranked{Feature: f, Score: s}
	}
	slices.SortStableFunc(out, compareRanked)
	return out, nil
}

func compareRanked(a, b Ranked) int {
	an, bn := math.IsNaN(a.Score), math.IsNaN(b.Score)
	switch {
	case an && !bn:
		return 1
	case bn && !an:
		return -1
	case !an && a.Score != b.Score:
		return cmp.Compare(b.Score, a.Score)
	}
	return cmp.Compare(a.Feature, b.Feature)
}
