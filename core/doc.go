// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory labeled graph: every vertex
// carries exactly one type label, edges are undirected, and self-loops are a
// legal, distinct form of adjacency when enabled.
//
// The Graph G = (V,E,λ) supports:
//
//   - Heterogeneous vertex identity via NodeID (StrID or IntID); StrID("1") ≠ IntID(1).
//   - One label per vertex, λ: V → string (AddVertex(id, label)).
//   - Self-loops (WithLoops); a looped vertex is its own neighbor.
//   - Deterministic neighbor enumeration: each vertex keeps an ordered
//     neighbor index (tidwall/btree), so Neighbors() never re-sorts.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id NodeID, label string) error // O(1), idempotent for the same label
//	HasVertex(id NodeID) bool                // O(1)
//	RemoveVertex(id NodeID) error            // O(d log d)
//	Label(id NodeID) (string, error)         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID) (edgeID string, err error) // O(log d)
//	RemoveEdge(edgeID string) error                     // O(log d)
//	HasEdge(a, b NodeID) bool                           // O(1)
//
//	// Walker read surface (walk.GraphView)
//	HasNode(id NodeID) bool
//	LabelOf(id NodeID) (string, error)
//	Neighbors(id NodeID) ([]NodeID, error)
//
// Errors:
//
//	ErrInvalidNodeID       – zero NodeID or empty string ID
//	ErrEmptyLabel          – empty vertex label
//	ErrLabelConflict       – vertex re-added with another label
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
