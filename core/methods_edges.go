// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by creation order ("e1" < "e2" < ... < "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Both endpoints must exist before AddEdge (labels are mandatory, so vertices are never auto-created).
//   - Self-loops require WithLoops(); otherwise ErrLoopNotAllowed.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge connects from and to with an undirected edge and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Confirm both endpoints exist (ErrVertexNotFound).
//  3. Under muEdgeAdj, reject a second edge between the same pair.
//  4. Generate eid atomically, store the edge and link both adjacency directions.
//
// Complexity: O(log d) for the ordered neighbor index.
func (g *Graph) AddEdge(from, to NodeID) (string, error) {
	if !from.Valid() || !to.Valid() {
		return "", ErrInvalidNodeID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("%w: %s–%s", ErrMultiEdgeNotAllowed, from, to)
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to}
	g.edges[eid] = e
	link(g, e)

	return eid, nil
}

// RemoveEdge deletes one edge by ID.
//
// Complexity: O(log d). Concurrency: acquires muEdgeAdj write lock only.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, eid)
	}
	delete(g.edges, eid)
	unlink(g, e)

	return nil
}

// HasEdge reports whether an edge joins a and b (order irrelevant).
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edges returns all edges ordered by creation.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns |E|; a self-loop counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns "e<n>" for the next value of the atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)
	return n
}
