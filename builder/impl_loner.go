// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

const (
	methodLoner     = "Loner"
	methodSelfLoner = "SelfLoner"
)

// Loner adds an isolated vertex. Walks rooted at it have length 1.
func Loner(id core.NodeID, label string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.AddVertex(id, label); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodLoner, id, err)
		}
		return nil
	}
}

// SelfLoner adds a vertex whose only edge is a self-loop.
// The graph must be created with core.WithLoops().
func SelfLoner(id core.NodeID, label string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.AddVertex(id, label); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodSelfLoner, id, err)
		}
		if _, err := g.AddEdge(id, id); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodSelfLoner, id, id, err)
		}
		return nil
	}
}
