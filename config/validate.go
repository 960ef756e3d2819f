// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
	"github.com/katalvlaran/metawalk/walk"
)

// Validate reports the first structural problem, wrapping ErrInvalidConfig.
// Walk parameters are checked with walk.ValidateParams, so the returned error
// also matches walk.ErrInvalidParameter for those.
//
// Edge endpoints are resolved against graph.nodes only when no generators are
// configured; otherwise BuildGraph reports unknown endpoints.
func (c Config) Validate() error {
	if len(c.Graph.Nodes) == 0 && len(c.Graph.Generate) == 0 {
		return fmt.Errorf("%w: graph has neither nodes nor generators", ErrInvalidConfig)
	}

	declared := make(map[core.NodeID]struct{}, len(c.Graph.Nodes))
	for i, n := range c.Graph.Nodes {
		if !n.ID.Valid() {
			return fmt.Errorf("%w: graph.nodes[%d]: missing id", ErrInvalidConfig, i)
		}
		if n.Label == "" {
			return fmt.Errorf("%w: graph.nodes[%d] (%s): missing label", ErrInvalidConfig, i, n.ID)
		}
		if _, dup := declared[n.ID.NodeID]; dup {
			return fmt.Errorf("%w: graph.nodes[%d]: duplicate id %s", ErrInvalidConfig, i, n.ID)
		}
		declared[n.ID.NodeID] = struct{}{}
	}

	for i, gc := range c.Graph.Generate {
		if _, _, err := gc.constructor(); err != nil {
			return fmt.Errorf("graph.generate[%d]: %w", i, err)
		}
	}

	for i, e := range c.Graph.Edges {
		if e.From.NodeID == e.To.NodeID && !c.Graph.Loops {
			return fmt.Errorf("%w: graph.edges[%d]: self-loop %s with loops disabled", ErrInvalidConfig, i, e.From)
		}
		if len(c.Graph.Generate) > 0 {
			continue
		}
		for _, end := range []ID{e.From, e.To} {
			if _, ok := declared[end.NodeID]; !ok {
				return fmt.Errorf("%w: graph.edges[%d]: unknown node %s", ErrInvalidConfig, i, end)
			}
		}
	}

	roots := []core.NodeID{}
	if c.Walk.Roots != nil {
		roots = ids(c.Walk.Roots)
	}
	if err := walk.ValidateParams(roots, c.Walk.N, c.Walk.Length, c.Metapaths(), c.Walk.Seed); err != nil {
		return fmt.Errorf("%w: walk: %w", ErrInvalidConfig, err)
	}
	if c.Walk.Workers < 1 {
		return fmt.Errorf("%w: walk.workers must be ≥ 1, got %d", ErrInvalidConfig, c.Walk.Workers)
	}

	return nil
}
