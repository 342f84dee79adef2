// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over an immutable Graph.
// Determinism:
//   - Vertices() follows insertion order; Neighbors() sorts by neighbor ID;
//     Edges() follows insertion index of the endpoints.

package core

import (
	"fmt"
	"sort"
)

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether u and v are connected. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Weight returns the weight of edge u—v and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, bool) {
	w, ok := g.adj[u][v]
	return w, ok
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Neighbors returns the edges leaving id, with From == id, sorted by To.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not in g.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
	}

	out := make([]Edge, 0, len(nbrs))
	for v, w := range nbrs {
		out = append(out, Edge{From: id, To: v, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Degree returns the number of neighbors of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// Edges returns every undirected edge exactly once. For each edge, From is
// the endpoint inserted first; the slice is ordered by (index(From),
// index(To)).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		iu := g.index[u]
		for v, w := range g.adj[u] {
			if g.index[v] > iu {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := g.index[out[i].From], g.index[out[j].From]
		if fi != fj {
			return fi < fj
		}
		return g.index[out[i].To] < g.index[out[j].To]
	})

	return out
}

// Adjacency returns a deep copy of the mapping vertex → neighbor → weight.
// Isolated vertices map to an empty, non-nil inner map.
// Complexity: O(V+E).
func (g *Graph) Adjacency() map[string]map[string]int64 {
	return g.clone().adj
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(V+E).
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, u := range g.order {
		iu := g.index[u]
		for v, w := range g.adj[u] {
			if g.index[v] > iu {
				total += w
			}
		}
	}

	return total
}
