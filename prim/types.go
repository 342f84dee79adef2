// Package prim defines configuration options, sentinel errors and the
// candidate-edge type used by the MST computation.
package prim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeplan/core"
)

// ErrInvalidGraph indicates that the MST computation received a nil graph.
var ErrInvalidGraph = errors.New("prim: MST requires a non-nil graph")

// ErrEmptyRoot indicates that no start vertex was specified. It wraps
// core.ErrVertexNotFound so callers may treat it as a missing vertex.
var ErrEmptyRoot = fmt.Errorf("prim: empty root vertex: %w", core.ErrVertexNotFound)

// ErrDisconnected indicates that some vertex is unreachable from the root
// while WithRequireSpanning is set.
var ErrDisconnected = errors.New("prim: graph is disconnected")

// ErrUnknownEdge indicates that Verify met an edge absent from the graph or
// carrying a different weight.
var ErrUnknownEdge = errors.New("prim: edge not in graph")

// ErrCycle indicates that Verify met an edge closing a cycle.
var ErrCycle = errors.New("prim: edge set contains a cycle")

// Candidate is a frontier edge: From is already in the tree, To may not be.
// Candidates order by (Weight, From, To) ascending.
type Candidate struct {
	Weight int64
	From   string
	To     string
}

// Less reports whether c sorts before o.
func (c Candidate) Less(o Candidate) bool {
	if c.Weight != o.Weight {
		return c.Weight < o.Weight
	}
	if c.From != o.From {
		return c.From < o.From
	}

	return c.To < o.To
}

// Edge converts the candidate into a tree edge.
func (c Candidate) Edge() core.Edge {
	return core.Edge{From: c.From, To: c.To, Weight: c.Weight}
}

// String renders the candidate as "From --(W)--> To".
func (c Candidate) String() string {
	return c.Edge().String()
}

// Options configures one MST computation.
//
// Fields:
//
//	Root            — start vertex.
//	Observer        — receives step notifications; never nil after DefaultOptions.
//	RequireSpanning — fail with ErrDisconnected unless every vertex is reached.
type Options struct {
	Root            string
	Observer        Observer
	RequireSpanning bool
}

// Option configures Options.
type Option func(*Options)

// WithRoot sets the start vertex used by Compute. Prim's root argument
// takes precedence over it.
func WithRoot(root string) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// WithObserver installs o. A nil observer restores NopObserver.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o == nil {
			o = NopObserver{}
		}
		opts.Observer = o
	}
}

// WithRequireSpanning makes an incomplete tree an error (ErrDisconnected).
func WithRequireSpanning() Option {
	return func(o *Options) {
		o.RequireSpanning = true
	}
}

// DefaultOptions returns Options with a no-op observer and lenient coverage.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Observer: NopObserver{}}
}

// Compute runs Prim with pre-assembled Options, for configuration-driven
// callers.
func Compute(g *core.Graph, opts Options) ([]core.Edge, int64, error) {
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}

	return run(g, opts)
}
