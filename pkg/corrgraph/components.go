package corrgraph

import (
	"cmp"
	"slices"
)

// Group is a connected component of the correlation graph: a maximal set of
// features linked directly or transitively by edges. Isolated features form
// singleton groups.
type Group struct {
	// Members are the feature names in the group, sorted.
	Members []string
}

// Size returns the number of features in the group.
func (gr Group) Size() int { return len(gr.Members) }

// IsSingleton reports whether the group holds a single feature.
func (gr Group) IsSingleton() bool { return len(gr.Members) == 1 }

// Contains reports whether name is a member of the group.
func (gr Group) Contains(name string) bool {
	_, found := slices.BinarySearch(gr.Members, name)
	return found
}

// Components partitions the graph into connected components.
//
// Every node appears in exactly one group. The result is canonical: members
// are sorted by name and groups are ordered by their first member, so equal
// graphs yield identical partitions regardless of construction order.
func Components(g *Graph) []Group {
	uf := newUnionFind(g.nodes)
	for _, a := range g.nodes {
		for _, b := range g.adj[a] {
			uf.union(a, b)
		}
	}

	byRoot := make(map[string][]string)
	for _, n := range g.nodes {
		r := uf.find(n)
		byRoot[r] = append(byRoot[r], n)
	}

	groups := make([]Group, 0, len(byRoot))
	for _, members := range byRoot {
		slices.Sort(members)
		groups = append(groups, Group{Members: members})
	}
	slices.SortFunc(groups, func(x, y Group) int {
		return cmp.Compare(x.Members[0], y.Members[0])
	})
	return groups
}

// unionFind is a disjoint-set forest with path compression and union by
// size.
type unionFind struct {
	parent map[string]string
	size   map[string]int
}

func newUnionFind(nodes []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(nodes)),
		size:   make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		uf.parent[n] = n
		uf.size[n] = 1
	}
	return uf
}

func (uf *unionFind) find(x string) string {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}
	return root
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}
