package walk_test

import (
	"testing"

	"github.com/katalvlaran/metawalk/builder"
	"github.com/katalvlaran/metawalk/metapath"
	"github.com/katalvlaran/metawalk/walk"
)

// BenchmarkRun_Sequential measures the sequential sampler on the fixture graph.
func BenchmarkRun_Sequential(b *testing.B) {
	benchmarkRun(b, 1)
}

// BenchmarkRun_Parallel measures parallel mode with 4 workers.
func BenchmarkRun_Parallel(b *testing.B) {
	benchmarkRun(b, 4)
}

func benchmarkRun(b *testing.B, workers int) {
	g := newTestGraph(b)
	w, err := walk.NewWalker(g, walk.WithWorkers(workers))
	if err != nil {
		b.Fatal(err)
	}
	nodes := g.Vertices()
	mps := []metapath.Metapath{{LabelN, LabelN}, {LabelS, LabelN, LabelS}}
	seed := int64(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Run(nodes, 10, 40, mps, &seed); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Bipartite walks author/paper/author over K_{200,200}.
func BenchmarkRun_Bipartite(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionLabels("author", "paper"), builder.WithIntIDs()},
		builder.CompleteBipartite(200, 200))
	if err != nil {
		b.Fatal(err)
	}
	w, err := walk.NewWalker(g)
	if err != nil {
		b.Fatal(err)
	}
	nodes := g.Vertices()[:50]
	mps := []metapath.Metapath{{"author", "paper", "author"}}
	seed := int64(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.Run(nodes, 5, 80, mps, &seed); err != nil {
			b.Fatal(err)
		}
	}
}
