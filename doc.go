// SPDX-License-Identifier: MIT

// Package metawalk generates metapath-constrained random walks over a labeled,
// undirected, heterogeneous graph: the corpus-generation stage of
// metapath2vec-style embedding pipelines.
//
// What is a metapath walk?
//
//	A metapath P = [p0, p1, ..., p(k-1)] with p0 == p(k-1) is a cyclic schedule
//	of vertex labels. A walk of length L rooted at v visits v, then at every
//	step i ≥ 1 moves to a uniformly chosen neighbor labeled
//	P[1 + ((i-1) mod (k-1))]. When no neighbor carries the required label the
//	walk stops early.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - labeled Graph, NodeID (StrID / IntID) & thread-safe primitives
//	metapath/   - Metapath type, validation and the cyclic label schedule
//	walk/       - Walker (Run / RunContext), parameter validation, parallel mode,
//	              zap logging, prometheus metrics, corpus writer
//	converters/ - gonum graph.Undirected adapters (GonumView, ToGonum, FromGonum)
//	builder/    - labeled fixture constructors (bipartite, star, cycle, G(n,p))
//	config/     - strict YAML run configuration
//	cmd/metawalk - CLI: config in, corpus out
//
// Quick start:
//
//	g := core.NewGraph(core.WithLoops())
//	_ = g.AddVertex(core.StrID("alice"), "author")
//	_ = g.AddVertex(core.IntID(1), "paper")
//	_, _ = g.AddEdge(core.StrID("alice"), core.IntID(1))
//
//	w, _ := walk.NewWalker(g)
//	seed := int64(42)
//	walks, _ := w.Run(g.Vertices(), 10, 80,
//		[]metapath.Metapath{{"author", "paper", "author"}}, &seed)
//	_ = walk.WriteCorpus(os.Stdout, walks)
package metawalk
