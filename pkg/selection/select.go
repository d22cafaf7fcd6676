package selection

import (
	"slices"

	"github.com/matzehuels/featprune/pkg/corrgraph"
	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

// DefaultNSelect is the number of representatives kept per group when no
// value is given.
const DefaultNSelect = 1

// Decision records what happened to one correlated group.
type Decision struct {
	Group   corrgraph.Group
	Ranking []Ranked // nil when the group was small enough to keep whole
	Kept    []string
	Removed []string
}

// Result is the outcome of [Select].
type Result struct {
	// Criterion is the ranking rule that produced the result.
	Criterion Criterion
	// Remove lists the correlated features that were not kept, sorted.
	Remove []string
	// Kept lists the correlated features retained as group representatives, sorted.
	Kept []string
	// Decisions holds one entry per group with at least two members, in
	// group order.
	Decisions []Decision
}

// Select keeps the top nSelect members of every correlated group and
// returns the remaining correlated features as the removal list.
//
// Groups of size at most nSelect are kept whole. Singleton groups carry no
// correlation and are skipped. A removed feature is always a member of
// correlated; features outside it are never reported.
//
// With an ImportanceRanker, every member of every multi-member group must
// have a score. This is checked before any group is processed so a failure
// never leaves a partial result.
func Select(groups []corrgraph.Group, correlated []string, r Ranker, nSelect int) (*Result, error) {
	if err := ferrors.ValidateNSelect(nSelect); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ferrors.New(ferrors.ErrCodeConfiguration, "no ranker configured")
	}
	if err := checkImportance(groups, r); err != nil {
		return nil, err
	}

	res := &Result{Criterion: r.Criterion()}
	for _, gr := range groups {
		if gr.IsSingleton() {
			continue
		}
		d := Decision{Group: gr}
		if gr.Size() <= nSelect {
			d.Kept = slices.Clone(gr.Members)
		} else {
			ranked, err := Rank(gr.Members, r)
			if err != nil {
				return nil, err
			}
			d.Ranking = ranked
			for i, rk := range ranked {
				if i < nSelect {
					d.Kept = append(d.Kept, rk.Feature)
				} else {
					d.Removed = append(d.Removed, rk.Feature)
				}
			}
			slices.Sort(d.Kept)
			slices.Sort(d.Removed)
		}
		res.Kept = append(res.Kept, d.Kept...)
		res.Decisions = append(res.Decisions, d)
	}
	slices.Sort(res.Kept)
	res.Remove = difference(correlated, res.Kept)
	return res, nil
}

func checkImportance(groups []corrgraph.Group, r Ranker) error {
	ir, ok := r.(*ImportanceRanker)
	if !ok {
		return nil
	}
	var members []string
	for _, gr := range groups {
		if !gr.IsSingleton() {
			members = append(members, gr.Members...)
		}
	}
	missing := ir.Importance.Missing(members)
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return ferrors.Wrap(ferrors.ErrCodeMissingImportance,
		&ferrors.MissingImportanceError{Features: missing}, "rank by importance")
}

// difference returns the sorted elements of a that are not in sorted b.
func difference(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, x := range a {
		if _, found := slices.BinarySearch(b, x); !found {
			out = append(out, x)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
