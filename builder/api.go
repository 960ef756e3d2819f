// SPDX-License-Identifier: MIT
// Package: metawalk/builder
//
// api.go - public entry points BuildGraph and Apply.
//
// Contract:
//   - Constructors run in the given order against one shared builderConfig.
//   - The first failing constructor aborts the build; its error is wrapped.
//   - A nil constructor is reported as ErrConstructFailed with its index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/metawalk/core"
)

// Constructor mutates g according to cfg. Constructors are produced by the
// exported topology functions (CompleteBipartite, Star, ...).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts and applies every constructor.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithLoops()},
//		[]builder.BuilderOption{builder.WithPartitionLabels("author", "paper")},
//		builder.CompleteBipartite(2, 3),
//	)
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs the constructors against an existing graph.
// Vertices already present with the same label are reused.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
