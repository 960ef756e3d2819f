package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metawalk/builder"
	"github.com/katalvlaran/metawalk/core"
)

// TestBuilders_Functional checks counts and labels of each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gopts       []core.GraphOption
		bopts       []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "CompleteBipartite(2,3)",
			bopts: []builder.BuilderOption{builder.WithPartitionLabels("author", "paper")},
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, map[string]int{"author": 2, "paper": 3}, g.Stats().LabelCounts)
				nbrs, err := g.Neighbors(core.StrID("0"))
				require.NoError(t, err)
				assert.Equal(t, []core.NodeID{core.StrID("2"), core.StrID("3"), core.StrID("4")}, nbrs)
				assert.False(t, g.HasEdge(core.StrID("0"), core.StrID("1")))
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				l, err := g.Label(core.StrID("0"))
				require.NoError(t, err)
				assert.Equal(t, "L", l)
				deg, err := g.Degree(core.StrID("0"))
				require.NoError(t, err)
				assert.Equal(t, 3, deg)
			},
		},
		{
			name:  "Cycle(6) round-robin",
			bopts: []builder.BuilderOption{builder.WithLabels("s", "n")},
			ctor:  builder.Cycle(6),
			wantV: 6, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					l, _ := g.Label(id)
					nbrs, _ := g.Neighbors(id)
					for _, nb := range nbrs {
						nl, _ := g.Label(nb)
						assert.NotEqual(t, l, nl, "%s and %s share a label", id, nb)
					}
				}
				assert.True(t, g.HasEdge(core.StrID("5"), core.StrID("0")))
			},
		},
		{
			name:  "RandomSparse p=1 with loops",
			gopts: []core.GraphOption{core.WithLoops()},
			ctor:  builder.RandomSparse(4, 1),
			wantV: 4, wantE: 10, // 6 pairs + 4 loops
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Stats().SelfLoopCount)
			},
		},
		{
			name:  "RandomSparse p=0",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
		{
			name:  "IntIDs",
			bopts: []builder.BuilderOption{builder.WithIntIDs()},
			ctor:  builder.Cycle(3),
			wantV: 3, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []core.NodeID{core.IntID(0), core.IntID(1), core.IntID(2)}, g.Vertices())
			},
		},
		{
			name:  "SymbNumb",
			bopts: []builder.BuilderOption{builder.WithSymbNumb("v")},
			ctor:  builder.Star(2),
			wantV: 2, wantE: 1,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(core.StrID("v0"), core.StrID("v1")))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks the sentinel returned for each invalid input.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"bipartite empty side", nil, nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"star too small", nil, nil, builder.Star(1), builder.ErrTooFewVertices},
		{"cycle too small", nil, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"sparse p>1", nil, nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse p<0", nil, nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"sparse without rng", nil, nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, nil, builder.ErrConstructFailed},
		{"self loner without loops", nil, nil, builder.SelfLoner(core.StrID("x"), "s"), core.ErrLoopNotAllowed},
		{"loner empty label", nil, nil, builder.Loner(core.StrID("x"), ""), core.ErrEmptyLabel},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestRandomSparse_Deterministic verifies identical graphs for identical seeds.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) [][2]core.NodeID {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithLabels("a", "b", "c")},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		var out [][2]core.NodeID
		for _, e := range g.Edges() {
			out = append(out, [2]core.NodeID{e.From, e.To})
		}
		return out
	}

	first := build(7)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, build(7))
}

// TestApply_Composite builds a fixture from several constructors on one graph.
func TestApply_Composite(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithLoops())
	err := builder.Apply(g,
		[]builder.BuilderOption{builder.WithPartitionLabels("s", "n")},
		builder.Star(3),
		builder.Loner(core.StrID("loner"), "s"),
		builder.SelfLoner(core.StrID("self loner"), "n"),
	)
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	nbrs, err := g.Neighbors(core.StrID("self loner"))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{core.StrID("self loner")}, nbrs)

	nbrs, err = g.Neighbors(core.StrID("loner"))
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	// Same index, different label.
	err = builder.Apply(g, []builder.BuilderOption{builder.WithLabels("x")}, builder.Cycle(3))
	require.ErrorIs(t, err, core.ErrLabelConflict)

	require.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}
