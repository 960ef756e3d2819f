// SPDX-License-Identifier: MIT

// Package walk generates metapath-constrained random walks over a labeled graph.
//
// What
//
//   - Given root nodes, a walk count n, a maximum length and a list of
//     metapaths, Run returns len(nodes)·len(metapaths)·n walks in
//     node-major, metapath-major, repetition order.
//   - Each walk starts at its root. At step i ≥ 1 the walker moves to a
//     uniformly chosen neighbor whose label equals the metapath's label for
//     step i (see metapath.Metapath.LabelAt). If no neighbor qualifies, the
//     walk ends where it is: walks are never padded.
//   - A self-loop makes a vertex its own candidate.
//
// Determinism
//
//	The graph is consumed through GraphView, whose Neighbors must be
//	deterministic. With a non-nil seed, Run builds one *rand.Rand for the
//	call and consumes it strictly in output order, so equal inputs produce
//	equal output. With a nil seed, the walker's own stream is used and
//	advances across calls.
//
//	In parallel mode (WithWorkers(k), k > 1) every (root, metapath) pair
//	draws from an independent stream derived from the base seed and the
//	pair's position. Output is identical for every k > 1 with the same seed,
//	but differs from sequential output.
//
// Validation
//
//	All arguments are checked before any lookup or random draw. Failures
//	return *ParamError, which matches errors.Is(err, ErrInvalidParameter).
//	A root missing from the graph fails the run with ErrNodeNotFound before
//	sampling starts. An empty (non-nil) node list yields an empty result.
//
// Complexity
//
//   - Time:   O(len(nodes)·len(metapaths)·n·length·d), d = max degree.
//   - Memory: O(total walk tokens) for the result plus O(d) per worker.
package walk
