package core_test

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

// ExampleGraph builds a tiny author–paper graph and lists neighbors.
func ExampleGraph() {
	g := core.NewGraph(core.WithLoops())
	_ = g.AddVertex(core.StrID("alice"), "author")
	_ = g.AddVertex(core.IntID(101), "paper")
	_ = g.AddVertex(core.IntID(102), "paper")

	_, _ = g.AddEdge(core.StrID("alice"), core.IntID(102))
	_, _ = g.AddEdge(core.StrID("alice"), core.IntID(101))
	_, _ = g.AddEdge(core.IntID(101), core.IntID(101))

	nbrs, _ := g.Neighbors(core.StrID("alice"))
	fmt.Println(nbrs)
	self, _ := g.Neighbors(core.IntID(101))
	fmt.Println(self)

	// Output:
	// [101 102]
	// [101 alice]
}
