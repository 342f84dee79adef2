package render

import (
	"math"
	"sort"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pipeplan/core"
)

// point is a canvas position in pixels.
type point struct{ X, Y int }

// positions implements layout.LayoutR2 over dense node IDs.
type positions struct {
	coords []r2.Vec
	ready  bool
}

var _ layout.LayoutR2 = (*positions)(nil)

func (p *positions) IsInitialized() bool    { return p.ready }
func (p *positions) Coord2(id int64) r2.Vec { return p.coords[id] }

// SetCoord2 stores pos; once EadesR2 has written a node, it keeps its own
// particles and must not reinitialize them.
func (p *positions) SetCoord2(id int64, pos r2.Vec) {
	p.coords[id] = pos
	p.ready = true
}

// denseGraph is a gonum view of a core.Graph whose nodes are numbered in
// insertion order. Nodes and neighbors always iterate by ascending ID, so
// EadesR2 assigns its seeded start positions in the same order every run.
type denseGraph struct {
	nodes []graph.Node
	adj   [][]graph.Node
}

var _ graph.Graph = denseGraph{}

func newDenseGraph(g *core.Graph) denseGraph {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	dg := denseGraph{
		nodes: make([]graph.Node, len(ids)),
		adj:   make([][]graph.Node, len(ids)),
	}
	for i, v := range ids {
		index[v] = i
		dg.nodes[i] = simple.Node(i)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		dg.adj[u] = append(dg.adj[u], dg.nodes[v])
		dg.adj[v] = append(dg.adj[v], dg.nodes[u])
	}
	for _, ns := range dg.adj {
		sort.Slice(ns, func(i, j int) bool { return ns[i].ID() < ns[j].ID() })
	}

	return dg
}

func (g denseGraph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(g.nodes)) {
		return nil
	}

	return g.nodes[id]
}

func (g denseGraph) Nodes() graph.Nodes { return iterator.NewOrderedNodes(g.nodes) }

func (g denseGraph) From(id int64) graph.Nodes {
	if g.Node(id) == nil {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(g.adj[id])
}

func (g denseGraph) HasEdgeBetween(xid, yid int64) bool { return g.Edge(xid, yid) != nil }

func (g denseGraph) Edge(uid, vid int64) graph.Edge {
	if g.Node(uid) == nil || g.Node(vid) == nil {
		return nil
	}
	ns := g.adj[uid]
	i := sort.Search(len(ns), func(i int) bool { return ns[i].ID() >= vid })
	if i == len(ns) || ns[i].ID() != vid {
		return nil
	}

	return simple.Edge{F: g.nodes[uid], T: g.nodes[vid]}
}

// layoutGraph computes canvas positions for every vertex of g, indexed like
// g.Vertices(). Equal seeds give equal positions. Edge weights do not
// influence the layout.
func layoutGraph(g *core.Graph, c config) []point {
	dg := newDenseGraph(g)
	pos := &positions{coords: make([]r2.Vec, len(dg.nodes))}
	if len(dg.nodes) > 1 {
		eades := layout.EadesR2{
			Updates:   c.iterations,
			Repulsion: 1,
			Rate:      0.05,
			Theta:     0.2,
			Src:       xrand.NewSource(uint64(c.seed)),
		}
		for eades.Update(dg, pos) {
		}
	}

	return fitCanvas(pos.coords, c.width, c.height)
}

// fitCanvas scales coords into the canvas, keeping a margin for labels and
// the title band. A degenerate extent is centered.
func fitCanvas(coords []r2.Vec, width, height int) []point {
	const margin = 60
	top := margin + titleBand

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range coords {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}

	usableW := float64(width - 2*margin)
	usableH := float64(height - top - margin)
	out := make([]point, len(coords))
	for i, v := range coords {
		fx, fy := 0.5, 0.5
		if maxX > minX {
			fx = (v.X - minX) / (maxX - minX)
		}
		if maxY > minY {
			fy = (v.Y - minY) / (maxY - minY)
		}
		out[i] = point{
			X: margin + int(math.Round(fx*usableW)),
			Y: top + int(math.Round(fy*usableH)),
		}
	}

	return out
}
