// SPDX-License-Identifier: MIT
// Package: metawalk/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1), vertex i
//     labeled cfg.labels[i mod len(labels)].
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic IDs and labels for fixed options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// With an even n and two labels every vertex alternates label with both neighbors.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id, cfg.labelAt(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		// i == n-1 closes the ring.
		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, uID, vID, err)
			}
		}

		return nil
	}
}
