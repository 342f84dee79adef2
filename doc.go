// Package pipeplan plans the cheapest pipe network for a residential
// community and draws it.
//
// 🚀 What is pipeplan?
//
//	A small pipeline in three stages:
//		• GraphGenerator – a random neighborhood of houses ("Casa 1" … "Casa N")
//		  with quoted pipe costs between some pairs
//		• PrimMST        – lazy Prim over a candidate heap, narrated step by step
//		• Visualizer     – SVG figure or Graphviz DOT with the tree in red
//
// Under the hood, everything is organized under these packages:
//
//	core/              — immutable symmetric weighted Graph + Builder
//	builder/           — seeded constructors (RandomNeighborhood, Path, Cycle, Complete)
//	prim/              — Prim, Observer hooks, Verify/Spans/Components
//	trace/             — narration Printer and zap Logger observers
//	render/            — force-directed layout, SVG and DOT output
//	internal/pipeline/ — Generate → Prim → Render orchestration
//	cmd/pipeplan/      — the command-line tool
//
// Quick ASCII example:
//
//	    A───1───B
//	     ╲      │
//	      3     2
//	       ╲    │
//	        ────C
//
//	the triangle A—B(1), B—C(2), A—C(3) is planned as A—B, B—C for a cost of 3.
//
//	go install github.com/katalvlaran/pipeplan/cmd/pipeplan@latest
package pipeplan
