package corrgraph

import (
	"cmp"
	"slices"

	"github.com/matzehuels/featprune/pkg/corr"
)

// Edge is an unordered pair of features whose absolute correlation exceeds
// the graph threshold. A is always the lexically smaller name.
type Edge struct {
	A, B string
}

func newEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Graph is an undirected simple graph over features. Every feature of the
// source matrix is a node, including features with no edges. Edge weights
// are not retained.
//
// The zero value is not usable - use Build or New to create a Graph.
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes     []string
	adj       map[string][]string
	threshold float64
	edges     int
}

// New creates a graph with the given nodes and no edges. Duplicate names
// are ignored.
func New(nodes []string) *Graph {
	g := &Graph{adj: make(map[string][]string, len(nodes))}
	for _, n := range nodes {
		if _, ok := g.adj[n]; ok {
			continue
		}
		g.nodes = append(g.nodes, n)
		g.adj[n] = nil
	}
	return g
}

// Build creates the correlation graph of m: one node per feature and an
// edge between every pair whose absolute correlation is strictly greater
// than threshold. Pairs equal to the threshold are not connected and NaN
// correlations never are.
//
// The edge set depends only on the matrix values and threshold, not on
// column order.
func Build(m *corr.Matrix, threshold float64) *Graph {
	g := New(m.Names())
	g.threshold = threshold
	for _, p := range m.Pairs() {
		if p.Value > threshold {
			g.AddEdge(p.A, p.B)
		}
	}
	return g
}

// AddEdge connects two existing, distinct nodes. Self-loops, unknown nodes
// and repeated edges are ignored, keeping the graph simple. It reports
// whether an edge was added.
func (g *Graph) AddEdge(a, b string) bool {
	if a == b || g.HasEdge(a, b) {
		return false
	}
	if _, ok := g.adj[a]; !ok {
		return false
	}
	if _, ok := g.adj[b]; !ok {
		return false
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.edges++
	return true
}

// Threshold returns the threshold the graph was built with, or 0 for graphs
// created with New.
func (g *Graph) Threshold() float64 { return g.threshold }

// Nodes returns all feature names in matrix order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// HasNode reports whether name is a node of the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b string) bool {
	return slices.Contains(g.adj[a], b)
}

// Neighbors returns the features directly connected to name, sorted.
func (g *Graph) Neighbors(name string) []string {
	return slices.Sorted(slices.Values(g.adj[name]))
}

// Degree returns the number of edges incident to name.
func (g *Graph) Degree(name string) int { return len(g.adj[name]) }

// Edges returns every edge once, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, a := range g.nodes {
		for _, b := range g.adj[a] {
			if a < b {
				out = append(out, newEdge(a, b))
			}
		}
	}
	slices.SortFunc(out, func(x, y Edge) int {
		return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B))
	})
	return out
}

// IsCorrelated reports whether name takes part in at least one edge.
func (g *Graph) IsCorrelated(name string) bool { return len(g.adj[name]) > 0 }

// Correlated returns the features that take part in at least one edge,
// sorted. Only these features can ever be reported as removable.
func (g *Graph) Correlated() []string {
	var out []string
	for _, n := range g.nodes {
		if len(g.adj[n]) > 0 {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}
