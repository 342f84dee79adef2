package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/pipeplan/core"
)

const (
	titleBand  = 40
	nodeRadius = 22

	styleBackground = "fill:white"
	styleTitle      = "text-anchor:middle;font-family:sans-serif;font-size:20px;fill:#222"
	stylePipe       = "stroke:#9a9a9a;stroke-width:1"
	styleTreePipe   = "stroke:red;stroke-width:3"
	styleCost       = "text-anchor:middle;font-family:sans-serif;font-size:10px;fill:#444"
	styleHouse      = "fill:lightblue;stroke:#4a6f8a;stroke-width:1"
	styleHouseLabel = "text-anchor:middle;font-family:sans-serif;font-size:8px;fill:#111"
)

// writeSVG draws g with the tree edges in tree highlighted. Layers, bottom
// to top: background, title, plain pipes, tree pipes, costs, houses.
func writeSVG(w io.Writer, g *core.Graph, tree map[pairKey]struct{}, title string, c config) {
	ids := g.Vertices()
	at := make(map[string]point, len(ids))
	for i, p := range layoutGraph(g, c) {
		at[ids[i]] = p
	}
	edges := g.Edges()

	canvas := svg.New(w)
	canvas.Start(c.width, c.height)
	canvas.Title(title)
	canvas.Rect(0, 0, c.width, c.height, styleBackground)
	canvas.Text(c.width/2, titleBand, title, styleTitle)

	canvas.Gid("pipes")
	for _, e := range edges {
		if _, ok := tree[newPairKey(e.From, e.To)]; ok {
			continue
		}
		a, b := at[e.From], at[e.To]
		canvas.Line(a.X, a.Y, b.X, b.Y, stylePipe)
	}
	canvas.Gend()

	canvas.Gid("tree")
	for _, e := range edges {
		if _, ok := tree[newPairKey(e.From, e.To)]; !ok {
			continue
		}
		a, b := at[e.From], at[e.To]
		canvas.Line(a.X, a.Y, b.X, b.Y, styleTreePipe)
	}
	canvas.Gend()

	canvas.Gid("costs")
	for _, e := range edges {
		a, b := at[e.From], at[e.To]
		canvas.Text((a.X+b.X)/2, (a.Y+b.Y)/2-3, fmt.Sprint(e.Weight), styleCost)
	}
	canvas.Gend()

	canvas.Gid("houses")
	for _, v := range ids {
		p := at[v]
		canvas.Circle(p.X, p.Y, nodeRadius, styleHouse)
		canvas.Text(p.X, p.Y+3, v, styleHouseLabel)
	}
	canvas.Gend()

	canvas.End()
}
