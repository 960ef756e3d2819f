// SPDX-License-Identifier: MIT

// Package converters provides adapters between core.Graph and gonum/graph.
//
//   - GonumView lets a walk.Walker sample directly from any gonum
//     graph.Undirected (integer IDs, labels supplied by a LabelFunc).
//   - ToGonum exports a core.Graph into a gonum multi.UndirectedGraph whose
//     nodes are LabeledNode values, so labels and original IDs survive.
//   - FromGonum imports a gonum undirected graph into a core.Graph.
//
// gonum iterates neighbors in map order; GonumView sorts them so seeded
// walks stay reproducible.
package converters
