// Package corr computes the absolute pairwise Pearson correlation matrix of
// a feature table.
//
// [Compute] evaluates every column pair with gonum's stat.Correlation and
// stores the result in a symmetric gonum matrix. Values are folded to their
// absolute value, so a perfect negative correlation counts the same as a
// perfect positive one.
//
// # Undefined Correlations
//
// A constant column has zero variance and therefore no defined correlation
// with anything. Its entries are NaN. NaN compares false against every
// threshold, so such columns never join a correlated group downstream.
//
//	t := frame.NewTable()
//	_ = t.AddColumn("A", []float64{1, 2, 3, 4})
//	_ = t.AddColumn("D", []float64{1, 1, 1, 1})
//	m, _ := corr.Compute(t)
//	v, _ := m.Between("A", "D") // NaN
package corr
