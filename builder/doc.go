// Package builder generates core.Graph instances from functional options:
// the random house-and-pipe neighborhoods that feed the MST stage, plus a
// few deterministic fixtures (path, cycle, complete) used in tests and
// examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): resolve options once, run constructors in order.
//     – Generate(n, opts...):       the one-call generator used by the pipeline.
//   - Constructors (Constructor closures):
//     – RandomNeighborhood(n): every vertex links to 2–4 sampled vertices.
//     – Path(n), Cycle(n), Complete(n): deterministic topologies.
//   - Vertex-ID schemes (IDFn):
//     – HouseIDFn:   "Casa 1", "Casa 2", … (1-based, default).
//     – DecimalIDFn: "0", "1", …
//     – SymbolIDFn:  "A", "B", …, "Z", "AA", … (spreadsheet columns).
//   - Edge-weight distributions (WeightFn):
//     – UniformWeightFn(min,max): integers uniform in [min,max] (default 1..20).
//     – ConstantWeightFn(w):      fixed weight.
//
// Randomness never comes from a global source: every stochastic constructor
// draws from the *rand.Rand resolved by WithSeed or WithRand, so a fixed
// seed reproduces the exact same graph.
//
// Errors are sentinels (ErrTooFewVertices, ErrNeedRandSource,
// ErrOptionViolation, ErrConstructFailed) wrapped with the constructor name;
// branch with errors.Is.
package builder
