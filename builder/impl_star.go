// SPDX-License-Identifier: MIT
// Package: metawalk/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center is index 0 labeled cfg.leftLabel; leaves are 1..n-1 labeled cfg.rightLabel.
//   - Spokes are emitted center - leaf[i] in increasing leaf index.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := cfg.idFn(0)
		if err := g.AddVertex(center, cfg.leftLabel); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, center, err)
		}

		leaves, err := addRange(g, cfg, methodStar, 1, n-1, cfg.rightLabel)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if _, err = g.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodStar, center, leaf, err)
			}
		}

		return nil
	}
}
