package prim

import (
	"fmt"

	"github.com/katalvlaran/pipeplan/core"
)

// disjointSet is a union-find over vertex IDs with path compression and
// union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the representative of u. Iterative to avoid deep recursion.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false means they were already joined.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}

// Verify checks that edges form a forest of g: every edge exists in g with
// the claimed weight, and no edge closes a cycle.
//
// Errors:
//   - ErrInvalidGraph if g is nil.
//   - ErrUnknownEdge for a missing edge or a weight mismatch.
//   - ErrCycle for the first edge joining two already-connected vertices.
//
// Complexity: O(V + E·α(V)).
func Verify(g *core.Graph, edges []core.Edge) error {
	if g == nil {
		return ErrInvalidGraph
	}
	ds := newDisjointSet(g.Vertices())
	for i, e := range edges {
		w, ok := g.Weight(e.From, e.To)
		if !ok {
			return fmt.Errorf("prim: edge %d (%s): %w", i, e, ErrUnknownEdge)
		}
		if w != e.Weight {
			return fmt.Errorf("prim: edge %d (%s): graph weight %d: %w", i, e, w, ErrUnknownEdge)
		}
		if !ds.union(e.From, e.To) {
			return fmt.Errorf("prim: edge %d (%s): %w", i, e, ErrCycle)
		}
	}

	return nil
}

// Cost returns Σ weight over edges.
func Cost(edges []core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// Spans reports whether edges reach every vertex of g, i.e. whether an
// acyclic edge list has exactly |V|−1 edges. The single-vertex graph is
// spanned by the empty list.
func Spans(g *core.Graph, edges []core.Edge) bool {
	if g == nil || g.VertexCount() == 0 {
		return false
	}

	return len(edges)+1 == g.VertexCount()
}

// Components partitions g's vertices into connected components. Components
// are ordered by their earliest vertex and list members in insertion order.
// Complexity: O(V + E·α(V)).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	vs := g.Vertices()
	ds := newDisjointSet(vs)
	for _, e := range g.Edges() {
		ds.union(e.From, e.To)
	}

	slot := make(map[string]int)
	var out [][]string
	for _, v := range vs {
		r := ds.find(v)
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}

	return out
}
