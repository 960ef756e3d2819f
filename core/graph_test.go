package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metawalk/core"
)

// Common labels used across core tests.
const (
	LabelS = "s"
	LabelN = "n"
)

// TestNodeID_EqualityAndOrder checks that the two variants never collide and sort ints first.
func TestNodeID_EqualityAndOrder(t *testing.T) {
	assert.NotEqual(t, core.StrID("1"), core.IntID(1))
	assert.Equal(t, core.IntID(7), core.IntID(7))
	assert.Equal(t, "7", core.IntID(7).String())
	assert.Equal(t, "self loner", core.StrID("self loner").String())

	assert.False(t, core.NodeID{}.Valid())
	assert.False(t, core.StrID("").Valid())
	assert.True(t, core.IntID(0).Valid())

	ids := []core.NodeID{core.StrID("b"), core.IntID(10), core.StrID("a"), core.IntID(2)}
	core.SortIDs(ids)
	assert.Equal(t, []core.NodeID{core.IntID(2), core.IntID(10), core.StrID("a"), core.StrID("b")}, ids)

	n, ok := core.IntID(5).Int()
	assert.True(t, ok)
	assert.EqualValues(t, 5, n)
	_, ok = core.IntID(5).Str()
	assert.False(t, ok)
}

// TestAddVertex_LabelRules covers validation, idempotency and label conflicts.
func TestAddVertex_LabelRules(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(core.NodeID{}, LabelS), core.ErrInvalidNodeID)
	require.ErrorIs(t, g.AddVertex(core.StrID("x"), ""), core.ErrEmptyLabel)

	require.NoError(t, g.AddVertex(core.StrID("x"), LabelS))
	require.NoError(t, g.AddVertex(core.StrID("x"), LabelS), "same label is idempotent")
	require.ErrorIs(t, g.AddVertex(core.StrID("x"), LabelN), core.ErrLabelConflict)

	lbl, err := g.LabelOf(core.StrID("x"))
	require.NoError(t, err)
	assert.Equal(t, LabelS, lbl)

	_, err = g.LabelOf(core.StrID("missing"))
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
	assert.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex(core.StrID("x"))
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{ID: core.StrID("x"), Label: LabelS}, v)
	_, err = g.Vertex(core.StrID("missing"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAddEdge_Policies covers loops, duplicates and missing endpoints.
func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	a, b := core.StrID("a"), core.IntID(1)
	require.NoError(t, g.AddVertex(a, LabelS))
	require.NoError(t, g.AddVertex(b, LabelN))

	_, err := g.AddEdge(a, a)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(a, core.StrID("ghost"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	eid, err := g.AddEdge(a, b)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a), "edges are undirected")

	_, err = g.AddEdge(b, a)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

// TestNeighbors_SelfLoopAndIsolated covers the two degenerate neighborhoods walkers rely on.
func TestNeighbors_SelfLoopAndIsolated(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	loner, selfLoner := core.StrID("loner"), core.StrID("self loner")
	require.NoError(t, g.AddVertex(loner, LabelS))
	require.NoError(t, g.AddVertex(selfLoner, LabelS))
	_, err := g.AddEdge(selfLoner, selfLoner)
	require.NoError(t, err)

	nbrs, err := g.Neighbors(loner)
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	nbrs, err = g.Neighbors(selfLoner)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{selfLoner}, nbrs)

	deg, err := g.Degree(selfLoner)
	require.NoError(t, err)
	assert.Equal(t, 2, deg, "a self-loop contributes two edge ends")

	_, err = g.Neighbors(core.StrID("nobody"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNeighbors_Order verifies neighbors come back in NodeID order regardless of insertion order.
func TestNeighbors_Order(t *testing.T) {
	g := core.NewGraph()
	hub := core.StrID("0")
	require.NoError(t, g.AddVertex(hub, LabelS))
	for _, id := range []core.NodeID{core.StrID("z"), core.IntID(9), core.IntID(2), core.StrID("a")} {
		require.NoError(t, g.AddVertex(id, LabelN))
		_, err := g.AddEdge(hub, id)
		require.NoError(t, err)
	}

	nbrs, err := g.Neighbors(hub)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{core.IntID(2), core.IntID(9), core.StrID("a"), core.StrID("z")}, nbrs)

	edges, err := g.IncidentEdges(hub)
	require.NoError(t, err)
	require.Len(t, edges, 4)
	assert.Equal(t, core.IntID(2), edges[0].To)
}

// TestRemove_VertexAndEdge ensures removal keeps adjacency symmetric.
func TestRemove_VertexAndEdge(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	a, b, c := core.IntID(1), core.IntID(2), core.IntID(3)
	for _, id := range []core.NodeID{a, b, c} {
		require.NoError(t, g.AddVertex(id, LabelN))
	}
	e1, _ := g.AddEdge(a, b)
	_, _ = g.AddEdge(b, c)
	_, _ = g.AddEdge(b, b)

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge(b, a))

	require.NoError(t, g.RemoveVertex(b))
	assert.False(t, g.HasVertex(b))
	assert.Equal(t, 0, g.EdgeCount())

	nbrs, err := g.Neighbors(c)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
	assert.Equal(t, []core.NodeID{a, c}, g.Vertices())
}

// TestStats reports label histogram and self-loop counts.
func TestStats(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_ = g.AddVertex(core.StrID("0"), LabelS)
	_ = g.AddVertex(core.IntID(1), LabelN)
	_ = g.AddVertex(core.IntID(2), LabelN)
	_, _ = g.AddEdge(core.StrID("0"), core.IntID(1))
	_, _ = g.AddEdge(core.IntID(1), core.IntID(1))

	st := g.Stats()
	assert.True(t, st.AllowsLoops)
	assert.Equal(t, 3, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.SelfLoopCount)
	assert.Equal(t, map[string]int{LabelS: 1, LabelN: 2}, st.LabelCounts)
	assert.Equal(t, []string{LabelN, LabelS}, g.Labels())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
}

// TestConcurrentReaders runs many Neighbors/LabelOf readers against one writer.
func TestConcurrentReaders(t *testing.T) {
	const nReaders = 16
	g := core.NewGraph(core.WithLoops())
	hub := core.StrID("hub")
	require.NoError(t, g.AddVertex(hub, LabelS))

	var wg sync.WaitGroup
	errs := make(chan error, nReaders)
	for r := 0; r < nReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if _, err := g.Neighbors(hub); err != nil {
					errs <- err
					return
				}
				if _, err := g.LabelOf(hub); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	for i := int64(0); i < 100; i++ {
		require.NoError(t, g.AddVertex(core.IntID(i), LabelN))
		_, err := g.AddEdge(hub, core.IntID(i))
		require.NoError(t, err)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("reader error: %v", err)
	}

	nbrs, err := g.Neighbors(hub)
	require.NoError(t, err)
	assert.Len(t, nbrs, 100)
}
