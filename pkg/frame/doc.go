// Package frame provides the typed inputs of the pruning routine: a
// column-oriented numeric feature matrix and an importance mapping.
//
// # Feature Matrix
//
// [Table] stores one float64 slice per named column. Column names are unique
// and double as node identifiers in the correlation graph, so [Table.AddColumn]
// rejects duplicates and columns whose length differs from the rest:
//
//	t := frame.NewTable()
//	_ = t.AddColumn("A", []float64{1, 2, 3, 4})
//	_ = t.AddColumn("C", []float64{4, 5, 6, 7})
//
// # Importance
//
// [Importance] maps feature names to scores. It is the canonical form of
// importance input; a two-column table (feature, score) is adapted to it by
// [ReadImportance] with the csv format.
//
// # Readers
//
// [ReadCSV] and [ReadImportance] decode the boundary formats used by the
// command-line harness. Cleaning and imputation are out of scope: empty or
// non-numeric cells are reported as INVALID_INPUT errors.
package frame
