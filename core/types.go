// SPDX-License-Identifier: MIT

// Package core defines the labeled heterogeneous Graph, its Vertex and Edge types,
// and thread-safe primitives for building and querying it.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from many goroutines
// while a single writer builds them.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeID indicates a zero NodeID or an empty string ID.
	ErrInvalidNodeID = errors.New("core: invalid node ID")

	// ErrEmptyLabel indicates a vertex was given an empty label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrLabelConflict indicates an existing vertex was re-added with a different label.
	ErrLabelConflict = errors.New("core: vertex already exists with a different label")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph carrying exactly one label.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID NodeID

	// Label is the vertex type tag (e.g. "author", "paper").
	Label string
}

// Edge is an undirected connection between two vertices.
// A self-loop has From == To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the endpoint given first to AddEdge.
	From NodeID

	// To is the endpoint given second to AddEdge.
	To NodeID
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, labeled, in-memory graph.
//
// adjacency[u][v] holds the edge ID joining u and v (mirrored for v,u);
// order[u] keeps the neighbors of u in NodeID order so neighbor enumeration
// is deterministic without sorting on every call.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and order

	allowLoops bool

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[NodeID]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	adjacency map[NodeID]map[NodeID]string
	order     map[NodeID]*btree.BTreeG[NodeID]
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[NodeID]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[NodeID]map[NodeID]string),
		order:     make(map[NodeID]*btree.BTreeG[NodeID]),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot returned by Stats.
type GraphStats struct {
	AllowsLoops   bool
	VertexCount   int
	EdgeCount     int
	SelfLoopCount int
	// LabelCounts maps each label to the number of vertices carrying it.
	LabelCounts map[string]int
}

// nodeIDLess adapts NodeID.Less for the btree index.
func nodeIDLess(a, b NodeID) bool { return a.Less(b) }
