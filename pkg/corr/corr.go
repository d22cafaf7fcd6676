package corr

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
	"github.com/matzehuels/featprune/pkg/frame"
)

// MinRows is the smallest number of observations for which a Pearson
// correlation is defined.
const MinRows = 2

// Matrix is a symmetric matrix of absolute pairwise correlations indexed by
// feature name. Off-diagonal entries are in [0, 1] or NaN when the
// correlation is undefined (a constant column). The diagonal is always 1.
//
// A Matrix is immutable after construction and safe for concurrent reads.
type Matrix struct {
	names []string
	index map[string]int
	sym   *mat.SymDense
}

// Pair is one unordered entry of the upper triangle of a [Matrix].
type Pair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Value float64 `json:"value"`
}

// Compute returns the absolute Pearson correlation matrix of all columns
// of t, in column order.
//
// It returns an INVALID_INPUT error if t has no columns or fewer than
// [MinRows] rows. Constant columns are not an error: their correlation with
// every other column is NaN.
func Compute(t *frame.Table) (*Matrix, error) {
	names := t.Columns()
	if len(names) == 0 {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "feature matrix has no columns")
	}
	if t.NumRows() < MinRows {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "feature matrix has %d rows (need at least %d)", t.NumRows(), MinRows)
	}

	n := len(names)
	cols := make([][]float64, n)
	for i, name := range names {
		cols[i], _ = t.Column(name)
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, absCorr(stat.Correlation(cols[i], cols[j], nil)))
		}
	}
	return newMatrix(names, sym), nil
}

// NewMatrix builds a matrix from precomputed correlations given as a
// row-major n×n slice. Only the upper triangle is read; values are stored as
// absolute values and the diagonal is forced to 1.
//
// It returns an INVALID_INPUT error if names are empty or duplicated, or if
// len(data) != n*n.
func NewMatrix(names []string, data []float64) (*Matrix, error) {
	n := len(names)
	if n == 0 {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "correlation matrix has no features")
	}
	if len(data) != n*n {
		return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "correlation data has %d values, want %d", len(data), n*n)
	}
	seen := make(map[string]bool, n)
	for _, name := range names {
		if name == "" || seen[name] {
			return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "invalid or duplicate feature name %q", name)
		}
		seen[name] = true
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, absCorr(data[i*n+j]))
		}
	}
	return newMatrix(slices.Clone(names), sym), nil
}

func newMatrix(names []string, sym *mat.SymDense) *Matrix {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return &Matrix{names: names, index: index, sym: sym}
}

// absCorr folds a signed correlation into [0, 1]. Rounding can push a
// perfect correlation slightly past 1; NaN is preserved.
func absCorr(r float64) float64 {
	if math.IsNaN(r) {
		return r
	}
	return math.Min(math.Abs(r), 1)
}

// Names returns the feature names in matrix order.
func (m *Matrix) Names() []string { return slices.Clone(m.names) }

// Len returns the number of features.
func (m *Matrix) Len() int { return len(m.names) }

// At returns the absolute correlation between the i-th and j-th features.
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Between returns the absolute correlation between two named features and
// whether both exist.
func (m *Matrix) Between(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.sym.At(i, j), true
}

// Pairs returns every unordered pair (i < j) in matrix order.
func (m *Matrix) Pairs() []Pair {
	n := len(m.names)
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{A: m.names[i], B: m.names[j], Value: m.sym.At(i, j)})
		}
	}
	return out
}

// String formats the matrix as an aligned text table for diagnostics.
func (m *Matrix) String() string {
	width := 8
	for _, name := range m.names {
		width = max(width, len(name)+1)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", width, "")
	for _, name := range m.names {
		fmt.Fprintf(&b, "%*s", width, name)
	}
	b.WriteByte('\n')
	for i, name := range m.names {
		fmt.Fprintf(&b, "%-*s", width, name)
		for j := range m.names {
			fmt.Fprintf(&b, "%*.4f", width, m.sym.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
