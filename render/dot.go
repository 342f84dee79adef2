package render

import (
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pipeplan/core"
)

// dotNode is a house; its DOT ID is the vertex label.
type dotNode struct {
	id   int64
	name string
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return n.name }

// dotEdge is a pipe labeled with its cost; tree pipes carry highlight
// attributes.
type dotEdge struct {
	from, to dotNode
	weight   int64
	tree     bool
}

func (e dotEdge) From() graph.Node { return e.from }
func (e dotEdge) To() graph.Node   { return e.to }

// ReversedEdge swaps the endpoints; attributes follow the edge.
func (e dotEdge) ReversedEdge() graph.Edge {
	e.from, e.to = e.to, e.from

	return e
}

func (e dotEdge) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: strconv.FormatInt(e.weight, 10)}}
	if e.tree {
		attrs = append(attrs,
			encoding.Attribute{Key: "color", Value: "red"},
			encoding.Attribute{Key: "penwidth", Value: "3"},
		)
	}

	return attrs
}

// attrList adapts a fixed attribute slice to encoding.Attributer.
type attrList []encoding.Attribute

func (a attrList) Attributes() []encoding.Attribute { return a }

// dotGraph carries graph-wide defaults: the title and the house style.
type dotGraph struct {
	*simple.UndirectedGraph
	title string
}

func (g dotGraph) DOTAttributers() (graphAttrs, nodeAttrs, edgeAttrs encoding.Attributer) {
	graphAttrs = attrList{
		{Key: "label", Value: g.title},
		{Key: "labelloc", Value: "t"},
		{Key: "fontsize", Value: "20"},
	}
	nodeAttrs = attrList{
		{Key: "shape", Value: "circle"},
		{Key: "style", Value: "filled"},
		{Key: "fillcolor", Value: "lightblue"},
		{Key: "fontsize", Value: "8"},
	}
	edgeAttrs = attrList{
		{Key: "color", Value: "gray60"},
	}

	return graphAttrs, nodeAttrs, edgeAttrs
}

// marshalDOT encodes g as an undirected Graphviz graph named "pipeplan".
func marshalDOT(g *core.Graph, tree map[pairKey]struct{}, title string) ([]byte, error) {
	ids := g.Vertices()
	nodes := make(map[string]dotNode, len(ids))
	ug := simple.NewUndirectedGraph()
	for i, v := range ids {
		n := dotNode{id: int64(i), name: v}
		nodes[v] = n
		ug.AddNode(n)
	}
	for _, e := range g.Edges() {
		_, inTree := tree[newPairKey(e.From, e.To)]
		ug.SetEdge(dotEdge{from: nodes[e.From], to: nodes[e.To], weight: e.Weight, tree: inTree})
	}

	return dot.Marshal(dotGraph{UndirectedGraph: ug, title: title}, "pipeplan", "", "  ")
}
