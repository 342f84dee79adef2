// SPDX-License-Identifier: MIT
// Package: pipeplan/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodX, n, min, ErrTooFewVertices)
//   • Constructors never panic; option constructors panic on nil functions.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum of
// the requested constructor (e.g. RandomNeighborhood(0)).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set when calling BuildGraph directly).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that an option received a meaningless value
// that is surfaced as an error rather than a panic (e.g. WithLinkRange(4, 2)).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a programmer error in composition, such as a
// nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
