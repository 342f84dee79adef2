// Package prim computes the Minimum Spanning Tree (MST) of a pipe network with
// the lazy variant of Prim's algorithm, and exposes every step of the
// computation to an injectable Observer.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects every vertex of V with minimal Σ w(e). For a community of
//     houses, T is the cheapest set of pipes that still reaches every house.
//
// Algorithm
//
//   - Prim(g, root, opts...) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root. Candidate edges leaving the tree wait in
//     a min-priority queue ordered by (Weight, From, To). Each pop either
//     discards a stale candidate (its far end already joined the tree) or
//     confirms it, adds the far end, and pushes that vertex's outgoing
//     candidates. Stale entries are never removed eagerly ("lazy deletion").
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Determinism: neighbors are expanded in ID order and ties break
//     lexicographically, so equal inputs always give equal edge lists.
//
// Disconnected graphs
//
//   - By default the result spans only the root's component (size−1 edges).
//     WithRequireSpanning turns that case into ErrDisconnected. Spans and
//     Components let callers inspect coverage afterwards.
//
// Tree checks
//
//   - Verify(g, edges) checks that every edge exists in g with the claimed
//     weight and that the set is acyclic (union-find). Cost sums weights.
//
// Errors
//
//   - ErrInvalidGraph      : nil graph.
//   - ErrEmptyRoot         : empty root; also matches core.ErrVertexNotFound.
//   - core.ErrVertexNotFound: root absent from the graph.
//   - ErrDisconnected      : WithRequireSpanning and some vertex unreachable.
//   - ErrUnknownEdge, ErrCycle: Verify failures.
//
// See also: package trace for ready-made observers.
package prim
