// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IncidentEdges) and the read surface used by walkers
//       (HasNode, LabelOf), plus adjacency helpers.
// Determinism:
//   - Neighbors() returns unique IDs in NodeID order; a self-loop lists the vertex itself once.
//   - IncidentEdges() follows the same neighbor order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - link/unlink are called only under the muEdgeAdj write lock.

package core

import "fmt"

// HasNode reports whether id is a vertex of g. It is HasVertex under the
// name used by walk.GraphView.
func (g *Graph) HasNode(id NodeID) bool { return g.HasVertex(id) }

// LabelOf returns the label of id, or an error wrapping ErrVertexNotFound.
func (g *Graph) LabelOf(id NodeID) (string, error) { return g.Label(id) }

// Neighbors returns the IDs adjacent to id in NodeID order.
// If id has a self-loop, id itself is part of the result.
//
// Implementation:
//   - Stage 1: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 2: Validate vertex existence (ErrVertexNotFound).
//   - Stage 3: Copy the ordered neighbor index into a fresh slice.
//
// Returns:
//   - []NodeID: freshly allocated; may be empty for an isolated vertex.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !id.Valid() {
		return nil, ErrInvalidNodeID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	idx := g.order[id]
	out := make([]NodeID, 0, idx.Len())
	idx.Scan(func(nbr NodeID) bool {
		out = append(out, nbr)
		return true
	})

	return out, nil
}

// IncidentEdges returns the edges touching id, in neighbor order.
func (g *Graph) IncidentEdges(id NodeID) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	bucket := g.adjacency[id]
	out := make([]*Edge, 0, len(bucket))
	g.order[id].Scan(func(nbr NodeID) bool {
		out = append(out, g.edges[bucket[nbr]])
		return true
	})

	return out, nil
}

// link records e in both endpoint buckets (once for a self-loop).
// Must be called under muEdgeAdj write lock.
func link(g *Graph, e *Edge) {
	g.adjacency[e.From][e.To] = e.ID
	g.order[e.From].Set(e.To)
	if e.From != e.To {
		g.adjacency[e.To][e.From] = e.ID
		g.order[e.To].Set(e.From)
	}
}

// unlink is the inverse of link. Buckets of already removed vertices are skipped.
// Must be called under muEdgeAdj write lock.
func unlink(g *Graph, e *Edge) {
	if bucket, ok := g.adjacency[e.From]; ok {
		delete(bucket, e.To)
		g.order[e.From].Delete(e.To)
	}
	if e.From == e.To {
		return
	}
	if bucket, ok := g.adjacency[e.To]; ok {
		delete(bucket, e.From)
		g.order[e.To].Delete(e.From)
	}
}
