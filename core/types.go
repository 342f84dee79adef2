// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Edge value type and the Graph storage layout.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrWeightMismatch indicates an adjacency mapping that is not symmetric.
	ErrWeightMismatch = errors.New("core: asymmetric edge weight")
)

// Edge is an undirected, weighted connection between two vertices.
// Edge is a plain value: copying it never aliases graph storage.
type Edge struct {
	// From is the endpoint the edge was reached from.
	From string

	// To is the opposite endpoint.
	To string

	// Weight is the strictly positive cost of the connection.
	Weight int64
}

// String renders the edge as "From --(Weight)--> To".
func (e Edge) String() string {
	return fmt.Sprintf("%s --(%d)--> %s", e.From, e.Weight, e.To)
}

// Graph is an immutable, symmetric, weighted adjacency mapping.
//
// order keeps vertex insertion order for deterministic iteration; index is
// its inverse. adj[u][v] == adj[v][u] holds for every stored pair.
// A Graph is only ever produced by Builder.Build or FromAdjacency, so all
// methods are lock-free reads.
type Graph struct {
	order     []string
	index     map[string]int
	adj       map[string]map[string]int64
	edgeCount int
}

// newGraph allocates empty storage with room for n vertices.
func newGraph(n int) *Graph {
	return &Graph{
		order: make([]string, 0, n),
		index: make(map[string]int, n),
		adj:   make(map[string]map[string]int64, n),
	}
}

// clone deep-copies storage; Builder.Build relies on it to detach snapshots.
// Complexity: O(V+E).
func (g *Graph) clone() *Graph {
	out := newGraph(len(g.order))
	out.order = append(out.order, g.order...)
	for id, i := range g.index {
		out.index[id] = i
	}
	for u, nbrs := range g.adj {
		m := make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			m[v] = w
		}
		out.adj[u] = m
	}
	out.edgeCount = g.edgeCount

	return out
}
