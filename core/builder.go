// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Mutable Builder that enforces Graph invariants at insertion time,
//       plus FromAdjacency for callers that already hold a mapping.
// Determinism:
//   - Vertex insertion order is preserved and exposed by Graph.Vertices().
// Concurrency:
//   - A Builder is single-owner; Build() hands out an immutable snapshot.

package core

import (
	"fmt"
	"sort"
)

// Builder incrementally assembles a Graph. The zero value is not usable;
// call NewBuilder.
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty Builder.
// Complexity: O(1).
func NewBuilder() *Builder {
	return &Builder{g: newGraph(0)}
}

// AddVertex inserts id if it is not already present. Re-adding is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := b.g.index[id]; ok {
		return nil
	}
	b.g.index[id] = len(b.g.order)
	b.g.order = append(b.g.order, id)
	b.g.adj[id] = make(map[string]int64)

	return nil
}

// AddEdge connects from and to with weight w in both directions, creating
// missing endpoints. If the pair is already connected, the weight is
// overwritten on both sides (the latest draw wins).
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to.
//   - ErrBadWeight if w <= 0.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, w int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%q: %w", from, ErrLoopNotAllowed)
	}
	if w <= 0 {
		return fmt.Errorf("%s-%s w=%d: %w", from, to, w, ErrBadWeight)
	}
	if err := b.AddVertex(from); err != nil {
		return err
	}
	if err := b.AddVertex(to); err != nil {
		return err
	}

	if _, exists := b.g.adj[from][to]; !exists {
		b.g.edgeCount++
	}
	b.g.adj[from][to] = w
	b.g.adj[to][from] = w

	return nil
}

// HasEdge reports whether from and to are already connected.
// Complexity: O(1).
func (b *Builder) HasEdge(from, to string) bool {
	_, ok := b.g.adj[from][to]
	return ok
}

// VertexCount returns the number of vertices inserted so far.
func (b *Builder) VertexCount() int { return len(b.g.order) }

// Build returns an immutable snapshot of the current state. The Builder
// remains usable; further mutations do not affect returned graphs.
// Complexity: O(V+E).
func (b *Builder) Build() *Graph {
	return b.g.clone()
}

// FromAdjacency validates adj and converts it into a Graph.
//
// Map iteration order is random, so vertices are inserted in ascending ID
// order to keep the result deterministic. Every neighbor must also appear
// as a key, and adj[u][v] must equal adj[v][u].
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight as in AddEdge.
//   - ErrVertexNotFound if a neighbor is missing as a key.
//   - ErrWeightMismatch if the mapping is not symmetric.
//
// Complexity: O(V log V + E).
func FromAdjacency(adj map[string]map[string]int64) (*Graph, error) {
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b := NewBuilder()
	for _, id := range ids {
		if err := b.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, u := range ids {
		nbrs := make([]string, 0, len(adj[u]))
		for v := range adj[u] {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		for _, v := range nbrs {
			w := adj[u][v]
			back, ok := adj[v]
			if !ok {
				return nil, fmt.Errorf("FromAdjacency: neighbor %q of %q: %w", v, u, ErrVertexNotFound)
			}
			if wb, ok := back[u]; !ok || wb != w {
				return nil, fmt.Errorf("FromAdjacency: %s->%s=%d, %s->%s=%d: %w", u, v, w, v, u, wb, ErrWeightMismatch)
			}
			if err := b.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("FromAdjacency: %w", err)
			}
		}
	}

	return b.Build(), nil
}
