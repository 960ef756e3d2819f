// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted by NodeID.Less.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).

package core

import (
	"fmt"

	"github.com/tidwall/btree"
)

// AddVertex inserts a vertex with the given label.
//
// Implementation:
//   - Stage 1: Validate id (ErrInvalidNodeID) and label (ErrEmptyLabel).
//   - Stage 2: Under muVert, return nil if the vertex exists with the same label,
//     ErrLabelConflict if it exists with another one, otherwise register it.
//   - Stage 3: Under muEdgeAdj, bootstrap the empty adjacency bucket and order index.
//
// Errors:
//   - ErrInvalidNodeID, ErrEmptyLabel, ErrLabelConflict.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id NodeID, label string) error {
	if !id.Valid() {
		return ErrInvalidNodeID
	}
	if label == "" {
		return fmt.Errorf("%w: vertex %s", ErrEmptyLabel, id)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, exists := g.vertices[id]; exists {
		if v.Label != label {
			return fmt.Errorf("%w: %s is %q, not %q", ErrLabelConflict, id, v.Label, label)
		}
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Label: label}

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[NodeID]string)
	g.order[id] = btree.NewBTreeG[NodeID](nodeIDLess)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex exists (invalid ID ⇒ false).
//
// Complexity: O(1).
func (g *Graph) HasVertex(id NodeID) bool {
	if !id.Valid() {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Label returns the label of vertex id.
//
// Errors:
//   - ErrInvalidNodeID, ErrVertexNotFound.
func (g *Graph) Label(id NodeID) (string, error) {
	if !id.Valid() {
		return "", ErrInvalidNodeID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return v.Label, nil
}

// Vertex returns a copy of the vertex record.
func (g *Graph) Vertex(id NodeID) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return *v, nil
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj write locks (in that order).
//   - Stage 2: Unlink every incident edge from both endpoint buckets and the catalog.
//   - Stage 3: Drop the vertex record and its buckets.
//
// Complexity:
//   - Time O(d log d) where d = deg(id), Space O(1).
func (g *Graph) RemoveVertex(id NodeID) error {
	if !id.Valid() {
		return ErrInvalidNodeID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	for _, eid := range g.adjacency[id] {
		e := g.edges[eid]
		delete(g.edges, eid)
		unlink(g, e)
	}
	delete(g.adjacency, id)
	delete(g.order, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted by NodeID.Less.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []NodeID {
	g.muVert.RLock()
	ids := make([]NodeID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	SortIDs(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of incident edge ends of id; a self-loop counts twice.
func (g *Graph) Degree(id NodeID) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := len(g.adjacency[id])
	if _, loop := g.adjacency[id][id]; loop {
		deg++
	}

	return deg, nil
}
