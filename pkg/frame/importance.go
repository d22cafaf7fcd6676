package frame

import (
	"maps"
	"slices"
)

// Importance is an ordered mapping from feature name to an externally
// supplied importance score, such as the feature importances of a fitted
// model. Higher scores are better.
//
// This name → score form is the canonical contract for importance input.
// Tabular sources (a feature column and a score column) are adapted to it
// by the readers in this package.
type Importance struct {
	names  []string
	scores map[string]float64
}

// NewImportance creates an empty importance mapping.
func NewImportance() *Importance {
	return &Importance{scores: make(map[string]float64)}
}

// ImportanceFromMap builds an importance mapping from m. Names are ordered
// alphabetically since Go maps carry no order.
func ImportanceFromMap(m map[string]float64) *Importance {
	imp := NewImportance()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		imp.Set(name, m[name])
	}
	return imp
}

// Set assigns the score of a feature. Setting an existing name overwrites
// its score and keeps its original position.
func (imp *Importance) Set(name string, score float64) {
	if _, ok := imp.scores[name]; !ok {
		imp.names = append(imp.names, name)
	}
	imp.scores[name] = score
}

// Score returns the score of a feature and whether it is present.
func (imp *Importance) Score(name string) (float64, bool) {
	s, ok := imp.scores[name]
	return s, ok
}

// Names returns the feature names in insertion order.
func (imp *Importance) Names() []string { return slices.Clone(imp.names) }

// Len returns the number of scored features.
func (imp *Importance) Len() int { return len(imp.names) }

// Missing returns the names from features that have no score, in the order
// given.
func (imp *Importance) Missing(features []string) []string {
	var out []string
	for _, f := range features {
		if _, ok := imp.scores[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}
