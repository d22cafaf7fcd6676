// Package selection picks representatives from groups of correlated
// features.
//
// Each group with more members than the configured count is ranked by a
// [Criterion]: sample variance of the feature's column, or an external
// importance score. The top n members are kept; every other correlated
// feature is reported for removal.
//
// Ranking is deterministic. Scores sort descending, ties sort by feature
// name ascending, and NaN scores sort last.
//
//	r, err := selection.NewRanker(selection.ByImportance, table, importance)
//	res, err := selection.Select(groups, graph.Correlated(), r, 1)
//	fmt.Println(res.Remove)
//
// Importance scores are a plain name to score mapping ([frame.Importance]).
// Tabular score files are converted into that form by the frame readers.
package selection
