// SPDX-License-Identifier: MIT

// Package builder provides "functional-options"-style constructors for small
// labeled graphs: the fixtures that metapath walks are tested and benchmarked
// on, and the generators behind config's `graph.generate` section.
//
// The package offers the following key components:
//
//   - Entry points:
//     – BuildGraph:        new core.Graph + constructors applied in order.
//     – Apply:             constructors applied to an existing graph.
//   - Constructors (Constructor implementations):
//     – CompleteBipartite: K_{n1,n2}, left/right partition labels.
//     – Star:              one center (left label) and n-1 leaves (right label).
//     – Cycle:             C_n, labels assigned round-robin.
//     – RandomSparse:      Erdős–Rényi-like G(n,p), labels round-robin.
//     – Loner / SelfLoner: an isolated vertex, optionally with a self-loop.
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand, WithLabels, WithPartitionLabels.
//     – WithIDScheme, WithIntIDs, WithSymbNumb.
//
// Guarantees:
//
//   - Deterministic vertex IDs, labels and edge emission order for fixed options.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels wrapped with the constructor name.
//
// Vertex indices are shared by all constructors of one call: applying
// Star(3) and Cycle(3) together reuses IDs "0".."2". Use distinct ID schemes
// (separate BuildGraph/Apply calls) to keep fixtures disjoint.
package builder
