// Package core provides the immutable weighted undirected Graph used across
// pipeplan, together with the Builder that assembles it.
//
// The Graph G = (V,E) models houses (vertices) and candidate pipe connections
// (edges). Its invariants are checked at insertion time and never relaxed:
//
//   - Symmetric: weight(A→B) == weight(B→A) for every stored pair.
//   - Simple: no self-loops, at most one edge per unordered pair.
//   - Positive: every weight is a strictly positive integer.
//
// Lifecycle:
//
//	b := core.NewBuilder()        // mutable, single-owner
//	b.AddEdge("Casa 1", "Casa 2", 7)
//	g := b.Build()                // immutable snapshot, safe to share
//
// Build copies the adjacency, so later Builder mutations never leak into a
// Graph that was already handed to another stage.
//
// Determinism:
//
//	Vertices()   — insertion order ("Casa 1", "Casa 2", …)
//	Neighbors(v) — neighbor IDs ascending
//	Edges()      — each undirected edge once, ordered by insertion index of
//	               (From, To) with From inserted before To
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop
//	ErrBadWeight       – weight ≤ 0
//	ErrWeightMismatch  – asymmetric adjacency passed to FromAdjacency
package core
