// Package corrgraph builds the thresholded correlation graph of a feature
// set and partitions it into groups of mutually or transitively correlated
// features.
//
// # Graph Construction
//
// [Build] turns a [corr.Matrix] into an undirected simple graph. Every
// feature becomes a node, connected or not. Two features are joined when
// their absolute correlation is strictly greater than the threshold:
//
//	|corr(a, b)| >  threshold  → edge
//	|corr(a, b)| == threshold  → no edge
//	corr(a, b)   is NaN        → no edge
//
// [Graph.Correlated] lists the features with at least one edge. Features
// outside that set can never be recommended for removal.
//
// # Groups
//
// [Components] computes connected components with a union-find forest.
// Groups partition the node set exactly; isolated features appear as
// singleton groups. Output is canonical (sorted members, groups ordered by
// first member).
//
// # Rendering
//
// [ToDOT] emits Graphviz DOT with one cluster per multi-member group, and
// [RenderSVG] renders it with go-graphviz. These are diagnostic helpers used
// by the command-line harness.
//
//	dot := corrgraph.ToDOT(g, corrgraph.DOTOptions{Groups: groups, Kept: kept})
//	svg, err := corrgraph.RenderSVG(ctx, dot)
package corrgraph
