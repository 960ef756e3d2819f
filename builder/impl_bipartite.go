// SPDX-License-Identifier: MIT
// Package: metawalk/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left partition: indices 0..n1-1 via cfg.idFn, labeled cfg.leftLabel.
//   - Right partition: indices n1..n1+n2-1 via cfg.idFn, labeled cfg.rightLabel.
//   - Emits every cross pair L_i - R_j once.
//
// Complexity:
//   - Time: O(n1 + n2) vertices + O(n1·n2) edges.
//   - Space: O(n1 + n2) extra for ID slices.
//
// Determinism:
//   - Edge emission order: i asc over L, inner j asc over R.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
// Every left-to-right-to-left metapath has a candidate at each step.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		leftIDs, err := addRange(g, cfg, methodCompleteBipartite, 0, n1, cfg.leftLabel)
		if err != nil {
			return err
		}
		rightIDs, err := addRange(g, cfg, methodCompleteBipartite, n1, n2, cfg.rightLabel)
		if err != nil {
			return err
		}

		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if _, err = g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCompleteBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}

// addRange inserts count vertices with indices from..from+count-1 under one label.
func addRange(g *core.Graph, cfg builderConfig, method string, from, count int, label string) ([]core.NodeID, error) {
	ids := make([]core.NodeID, count)
	for k := 0; k < count; k++ {
		id := cfg.idFn(from + k)
		if err := g.AddVertex(id, label); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
		ids[k] = id
	}

	return ids, nil
}
