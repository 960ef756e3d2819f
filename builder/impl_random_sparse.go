// SPDX-License-Identifier: MIT
// Package: metawalk/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Unordered pairs {i,j} with i<j; the diagonal {i,i} is admissible iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Vertex i labeled cfg.labels[i mod len(labels)].
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j ≥ i with loops, else j > i).
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// p ∈ {0,1} is deterministic and needs no source.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id, cfg.labelAt(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		loops := g.Looped()
		var (
			i, j int
			u, v core.NodeID
		)
		for i = 0; i < n; i++ {
			u = cfg.idFn(i)
			start := i + 1
			if loops {
				start = i
			}
			for j = start; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				v = cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}

// trial performs one Bernoulli(p) draw. Without an RNG p is 0 or 1.
func trial(cfg builderConfig, p float64) bool {
	if cfg.rng == nil {
		return p == probMax
	}

	return cfg.rng.Float64() < p
}
