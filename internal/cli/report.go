package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/matzehuels/featprune/pkg/corr"
	"github.com/matzehuels/featprune/pkg/pipeline"
)

// pruneReport is the JSON form of a pruning run.
type pruneReport struct {
	RunID     string        `json:"run_id"`
	By        string        `json:"by"`
	Threshold float64       `json:"threshold"`
	NSelect   int           `json:"n_select"`
	Remove    []string      `json:"remove"`
	Kept      []string      `json:"kept"`
	Groups    []groupReport `json:"groups"`
}

type groupReport struct {
	Members []string `json:"members"`
	Kept    []string `json:"kept"`
	Removed []string `json:"removed"`
	// Scores is only present for groups that had to be ranked; NaN scores
	// are omitted.
	Scores map[string]float64 `json:"scores,omitempty"`
}

func newPruneReport(res *pipeline.Result, nSelect int) pruneReport {
	r := pruneReport{
		RunID:     res.RunID,
		By:        res.Selection.Criterion.String(),
		Threshold: res.Graph.Threshold(),
		NSelect:   nSelect,
		Remove:    nonNil(res.Remove),
		Kept:      nonNil(res.Kept()),
		Groups:    []groupReport{},
	}
	for _, d := range res.Selection.Decisions {
		g := groupReport{
			Members: d.Group.Members,
			Kept:    nonNil(d.Kept),
			Removed: nonNil(d.Removed),
		}
		for _, rk := range d.Ranking {
			if math.IsNaN(rk.Score) {
				continue
			}
			if g.Scores == nil {
				g.Scores = make(map[string]float64, len(d.Ranking))
			}
			g.Scores[rk.Feature] = rk.Score
		}
		r.Groups = append(r.Groups, g)
	}
	return r
}

// matrixReport is the JSON form of a correlation matrix. NaN entries are
// encoded as null.
type matrixReport struct {
	Features []string     `json:"features"`
	Values   [][]*float64 `json:"values"`
}

func newMatrixReport(m *corr.Matrix) matrixReport {
	n := m.Len()
	r := matrixReport{Features: m.Names(), Values: make([][]*float64, n)}
	for i := range n {
		row := make([]*float64, n)
		for j := range n {
			if v := m.At(i, j); !math.IsNaN(v) {
				row[j] = &v
			}
		}
		r.Values[i] = row
	}
	return r
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeOutput writes through fn to path, or to fallback when path is empty.
func writeOutput(path string, fallback io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
