// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/metawalk/core"
)

// ErrNilLabelFunc is returned when a nil LabelFunc is supplied.
var ErrNilLabelFunc = errors.New("converters: label function is nil")

// LabelFunc returns the label of a gonum node; "" means unlabeled.
type LabelFunc func(n graph.Node) string

// LabeledNode is a gonum node carrying its core identity and label.
type LabeledNode struct {
	GID   int64
	Orig  core.NodeID
	Label string
}

// ID implements graph.Node.
func (n LabeledNode) ID() int64 { return n.GID }

// NodeLabel is a LabelFunc reading LabeledNode.Label.
func NodeLabel(n graph.Node) string {
	if ln, ok := n.(LabeledNode); ok {
		return ln.Label
	}
	return ""
}

// GonumView exposes a gonum undirected graph as a walk.GraphView.
// Node IDs are core.IntID(gonum ID); string IDs are never present.
type GonumView struct {
	g     graph.Undirected
	label LabelFunc
}

// NewGonumView wraps g. The view reads g on every call; do not mutate g while walking.
func NewGonumView(g graph.Undirected, label LabelFunc) (*GonumView, error) {
	if g == nil {
		return nil, errors.New("converters: graph is nil")
	}
	if label == nil {
		return nil, ErrNilLabelFunc
	}

	return &GonumView{g: g, label: label}, nil
}

// HasNode reports whether id is an integer ID present in the gonum graph.
func (v *GonumView) HasNode(id core.NodeID) bool {
	_, ok := v.node(id)
	return ok
}

// LabelOf returns the label of id.
func (v *GonumView) LabelOf(id core.NodeID) (string, error) {
	n, ok := v.node(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrVertexNotFound, id)
	}
	lbl := v.label(n)
	if lbl == "" {
		return "", fmt.Errorf("%w: vertex %s", core.ErrEmptyLabel, id)
	}

	return lbl, nil
}

// Neighbors returns the neighbors of id in ascending ID order; a self-loop
// lists id itself.
//
// Complexity: O(d log d).
func (v *GonumView) Neighbors(id core.NodeID) ([]core.NodeID, error) {
	n, ok := v.node(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrVertexNotFound, id)
	}

	// NodesOf tolerates iterators reporting an unknown (negative) Len.
	nbrs := graph.NodesOf(v.g.From(n.ID()))
	ids := make([]int64, len(nbrs))
	for i, nb := range nbrs {
		ids[i] = nb.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]core.NodeID, len(ids))
	for i, nid := range ids {
		out[i] = core.IntID(nid)
	}

	return out, nil
}

func (v *GonumView) node(id core.NodeID) (graph.Node, bool) {
	gid, ok := id.Int()
	if !ok {
		return nil, false
	}
	n := v.g.Node(gid)

	return n, n != nil
}

// ToGonum exports g into a gonum multi.UndirectedGraph. Vertices receive
// dense IDs 0..V-1 in core.Graph.Vertices() order and are stored as
// LabeledNode values; self-loops are preserved.
//
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*multi.UndirectedGraph, error) {
	out := multi.NewUndirectedGraph()
	nodes := make(map[core.NodeID]LabeledNode, g.VertexCount())

	for i, id := range g.Vertices() {
		lbl, err := g.Label(id)
		if err != nil {
			return nil, fmt.Errorf("ToGonum: %w", err)
		}
		n := LabeledNode{GID: int64(i), Orig: id, Label: lbl}
		nodes[id] = n
		out.AddNode(n)
	}
	for _, e := range g.Edges() {
		out.SetLine(out.NewLine(nodes[e.From], nodes[e.To]))
	}

	return out, nil
}

// FromGonum imports src into a new core.Graph built with opts. LabeledNode
// values keep their original ID; other nodes become core.IntID(n.ID()).
// Every node must have a non-empty label. Parallel gonum lines collapse to
// one edge; self-loops require core.WithLoops() in opts.
//
// Complexity: O(V + E log d).
func FromGonum(src graph.Undirected, label LabelFunc, opts ...core.GraphOption) (*core.Graph, error) {
	if label == nil {
		return nil, ErrNilLabelFunc
	}
	g := core.NewGraph(opts...)

	all := graph.NodesOf(src.Nodes())
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })

	ids := make(map[int64]core.NodeID, len(all))
	for _, n := range all {
		id := core.IntID(n.ID())
		if ln, ok := n.(LabeledNode); ok {
			id = ln.Orig
		}
		if err := g.AddVertex(id, label(n)); err != nil {
			return nil, fmt.Errorf("FromGonum: AddVertex(%s): %w", id, err)
		}
		ids[n.ID()] = id
	}

	for _, u := range all {
		it := src.From(u.ID())
		for it.Next() {
			vid := it.Node().ID()
			if vid < u.ID() {
				continue
			}
			from, to := ids[u.ID()], ids[vid]
			if g.HasEdge(from, to) {
				continue
			}
			if _, err := g.AddEdge(from, to); err != nil {
				return nil, fmt.Errorf("FromGonum: AddEdge(%s, %s): %w", from, to, err)
			}
		}
	}

	return g, nil
}
