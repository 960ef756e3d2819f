// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "sort"

// Looped reports whether self-loops are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Labels returns the distinct vertex labels in ascending order.
//
// Complexity: O(V + L log L).
func (g *Graph) Labels() []string {
	counts := g.Stats().LabelCounts
	out := make([]string, 0, len(counts))
	for l := range counts {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// Stats produces a read-only snapshot of policy flags, catalog sizes and
// the label histogram.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags, vertex count and labels.
//   - Stage 2: Under muEdgeAdj.RLock, snapshot edge count and count self-loops.
//
// Behavior highlights:
//   - Never holds both locks simultaneously.
//
// Complexity:
//   - Time O(V+E), Space O(L) for the label histogram.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		LabelCounts: make(map[string]int),
	}
	for _, v := range g.vertices {
		stats.LabelCounts[v.Label]++
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.SelfLoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
