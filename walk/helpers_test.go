package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metawalk/core"
	"github.com/katalvlaran/metawalk/metapath"
)

// Labels of the fixture graph: string IDs are "s", integer IDs are "n".
const (
	LabelS = "s"
	LabelN = "n"
)

var (
	Loner     = core.StrID("loner")
	SelfLoner = core.StrID("self loner")
	Zero      = core.StrID("0")
)

// newTestGraph builds the 13-vertex fixture: a small tree rooted at "0" with
// integer children, self-loops on most vertices, an isolated "loner" and a
// "self loner" whose only edge is a self-loop.
func newTestGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())

	id := func(v interface{}) core.NodeID {
		switch x := v.(type) {
		case string:
			return core.StrID(x)
		case int:
			return core.IntID(int64(x))
		}
		t.Fatalf("unsupported id %v", v)
		return core.NodeID{}
	}
	label := func(n core.NodeID) string {
		if n.Kind() == core.KindString {
			return LabelS
		}
		return LabelN
	}
	add := func(v interface{}) core.NodeID {
		n := id(v)
		require.NoError(t, g.AddVertex(n, label(n)))
		return n
	}

	edges := [][2]interface{}{
		{"0", 1}, {"0", 2}, {1, 3}, {1, 4}, {3, 6}, {4, 7}, {4, 8}, {2, 5}, {5, 9}, {5, 10},
		{"0", "0"}, {1, 1}, {3, 3}, {6, 6}, {4, 4}, {7, 7}, {8, 8}, {2, 2}, {5, 5}, {9, 9},
		{"self loner", "self loner"},
	}
	for _, e := range edges {
		a, b := add(e[0]), add(e[1])
		_, err := g.AddEdge(a, b)
		require.NoError(t, err)
	}
	add("loner")

	return g
}

// requireValidWalk asserts that wk starts at root, stays within length,
// follows edges, and matches the metapath label at every step.
func requireValidWalk(t *testing.T, g *core.Graph, wk []core.NodeID, root core.NodeID, m metapath.Metapath, length int) {
	t.Helper()
	require.NotEmpty(t, wk)
	require.LessOrEqual(t, len(wk), length)
	require.Equal(t, root, wk[0])
	for i := 1; i < len(wk); i++ {
		require.Truef(t, g.HasEdge(wk[i-1], wk[i]), "step %d: %s–%s is not an edge", i, wk[i-1], wk[i])
		want, err := m.LabelAt(i)
		require.NoError(t, err)
		got, err := g.LabelOf(wk[i])
		require.NoError(t, err)
		require.Equalf(t, want, got, "step %d label", i)
	}
	if len(wk) == length {
		return
	}
	// a short walk must have stopped for lack of candidates
	want, err := m.LabelAt(len(wk))
	require.NoError(t, err)
	nbrs, err := g.Neighbors(wk[len(wk)-1])
	require.NoError(t, err)
	for _, nbr := range nbrs {
		lbl, _ := g.LabelOf(nbr)
		require.NotEqualf(t, want, lbl, "walk stopped at %s although %s matches %q", wk[len(wk)-1], nbr, want)
	}
}

func seedPtr(s int64) *int64 { return &s }
