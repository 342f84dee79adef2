package core_test

import (
	"fmt"

	"github.com/katalvlaran/pipeplan/core"
)

// ExampleBuilder shows the build-then-freeze lifecycle of a pipe network.
func ExampleBuilder() {
	b := core.NewBuilder()
	_ = b.AddEdge("Casa 1", "Casa 2", 7)
	_ = b.AddEdge("Casa 2", "Casa 3", 3)
	_ = b.AddEdge("Casa 1", "Casa 3", 12)
	g := b.Build()

	fmt.Println(g.VertexCount(), g.EdgeCount(), g.TotalWeight())
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 3 3 22
	// Casa 1 --(7)--> Casa 2
	// Casa 1 --(12)--> Casa 3
	// Casa 2 --(3)--> Casa 3
}
