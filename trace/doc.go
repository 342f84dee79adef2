// Package trace provides ready-made prim.Observer implementations.
//
//   - Printer narrates a run for humans: the generated graph, the initial
//     candidate queue, every confirmed edge with the candidates it opens, and
//     the final tree with its total cost.
//   - Logger emits structured zap entries: one debug entry per queue event
//     and an info summary when the run finishes.
//
// Both are passive: they never influence the computation. Combine them with
// prim.Observers.
package trace
