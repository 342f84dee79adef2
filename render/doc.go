// Package render draws a pipe network with its minimum spanning tree
// highlighted.
//
// Two output formats are supported:
//
//   - FormatSVG: a standalone SVG figure. Houses are labeled circles, every
//     pipe is drawn with its cost, tree pipes are red and thicker, and the
//     title sits on top.
//   - FormatDOT: a Graphviz description of the same picture, for users who
//     prefer to lay it out with dot/neato.
//
// Vertex positions for SVG come from a seeded force-directed layout
// (gonum's Eades algorithm), normalized into the canvas. The default seed is
// 42 so that figures of the same graph look alike between runs.
//
// Inputs are validated before anything is written: a nil graph, a tree edge
// whose endpoints are not adjacent in the graph, or an unknown format fails
// with a sentinel error and leaves the writer untouched.
package render
