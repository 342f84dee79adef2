package prim

import (
	"fmt"

	"github.com/katalvlaran/pipeplan/core"
)

// Prim computes the MST of the component of g containing root by growing
// a tree outwards from root over a lazy min-priority queue of candidates.
//
// Returns the confirmed edges in selection order, each with From inside the
// tree at the moment of selection, and the sum of their weights.
//
// Error Conditions:
//   - ErrInvalidGraph       : g is nil.
//   - ErrEmptyRoot          : root == "".
//   - core.ErrVertexNotFound: root does not exist in g.
//   - ErrDisconnected       : WithRequireSpanning is set and some vertex is
//     unreachable from root.
//
// Steps:
//  1. Validate g and root.
//  2. Mark root visited; push a candidate for every neighbor of root.
//  3. While the queue is non-empty and not every vertex is visited:
//     a. Pop the minimal candidate (w, from, to).
//     b. If to is already visited, discard it (it would close a cycle).
//     c. Otherwise visit to, confirm the edge, accumulate w, and push
//     candidates toward every unvisited neighbor of to.
//  4. Return edges and total.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Root = root

	return run(g, o)
}

func run(g *core.Graph, o Options) ([]core.Edge, int64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	root := o.Root
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim: root %q: %w", root, core.ErrVertexNotFound)
	}

	obs := o.Observer
	n := g.VertexCount()
	visited := make(map[string]struct{}, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	q := &candidateQueue{}

	// 2. Seed the frontier from root.
	visited[root] = struct{}{}
	obs.OnVisit(root)
	if err := expand(g, root, visited, q, obs); err != nil {
		return nil, 0, err
	}
	obs.OnStart(root, q.snapshot())

	// 3. Main loop.
	for q.Len() > 0 && len(visited) < n {
		c := q.pop()
		if _, seen := visited[c.To]; seen {
			obs.OnDiscard(c)
			continue
		}

		visited[c.To] = struct{}{}
		obs.OnVisit(c.To)
		mst = append(mst, c.Edge())
		total += c.Weight
		obs.OnSelect(c)

		if err := expand(g, c.To, visited, q, obs); err != nil {
			return nil, 0, err
		}
	}

	if o.RequireSpanning && len(visited) < n {
		return nil, 0, fmt.Errorf("prim: %d of %d vertices reachable from %q: %w",
			len(visited), n, root, ErrDisconnected)
	}

	// 4. Done.
	obs.OnFinish(mst, total)

	return mst, total, nil
}

// expand pushes a candidate from v toward every unvisited neighbor of v,
// in neighbor-ID order.
func expand(g *core.Graph, v string, visited map[string]struct{}, q *candidateQueue, obs Observer) error {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("prim: expand %q: %w", v, err)
	}
	for _, e := range nbrs {
		if _, seen := visited[e.To]; seen {
			continue
		}
		c := Candidate{Weight: e.Weight, From: v, To: e.To}
		q.push(c)
		obs.OnPush(c)
	}

	return nil
}
