// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/metawalk/builder"
	"github.com/katalvlaran/metawalk/core"
)

// Generator kinds accepted in graph.generate.
const (
	KindCompleteBipartite = "complete_bipartite"
	KindStar              = "star"
	KindCycle             = "cycle"
	KindRandomSparse      = "random_sparse"
)

// Vertex ID schemes accepted in graph.generate[].id_scheme.
const (
	IDSchemeDecimal = "decimal"
	IDSchemeExcel   = "excel"
	IDSchemePrefix  = "prefix"
	IDSchemeInt     = "int"
)

// GeneratorConfig describes one builder constructor.
//
//   - complete_bipartite: n left + n2 right vertices, labels[0] / labels[1].
//   - star: center labels[0], n-1 leaves labels[1].
//   - cycle, random_sparse: n vertices, labels round-robin.
//
// IDScheme picks vertex IDs: "decimal" ("0","1",..., the default), "excel"
// ("A".."Z","AA",...), "prefix" (IDPrefix + decimal, "a0","a1",...) or "int"
// (integer IDs). Setting IDPrefix or IntIDs without IDScheme selects "prefix"
// or "int". Distinct schemes keep several generators disjoint.
type GeneratorConfig struct {
	Kind     string   `yaml:"kind"`
	N        int      `yaml:"n"`
	N2       int      `yaml:"n2,omitempty"`
	P        float64  `yaml:"p,omitempty"`
	Seed     int64    `yaml:"seed,omitempty"`
	Labels   []string `yaml:"labels,omitempty"`
	IDScheme string   `yaml:"id_scheme,omitempty"`
	IDPrefix string   `yaml:"id_prefix,omitempty"`
	IntIDs   bool     `yaml:"int_ids,omitempty"`
}

// constructor maps the generator to a builder call.
func (gc GeneratorConfig) constructor() (builder.Constructor, []builder.BuilderOption, error) {
	idOpt, err := gc.idOption()
	if err != nil {
		return nil, nil, err
	}
	opts := []builder.BuilderOption{builder.WithSeed(gc.Seed), idOpt}
	for _, l := range gc.Labels {
		if l == "" {
			return nil, nil, fmt.Errorf("%w: generator %q has an empty label", ErrInvalidConfig, gc.Kind)
		}
	}

	switch gc.Kind {
	case KindCompleteBipartite, KindStar:
		if len(gc.Labels) > 0 {
			left, right := gc.Labels[0], gc.Labels[0]
			if len(gc.Labels) > 1 {
				right = gc.Labels[1]
			}
			opts = append(opts, builder.WithPartitionLabels(left, right))
		}
		if gc.Kind == KindStar {
			return builder.Star(gc.N), opts, nil
		}
		return builder.CompleteBipartite(gc.N, gc.N2), opts, nil
	case KindCycle, KindRandomSparse:
		if len(gc.Labels) > 0 {
			opts = append(opts, builder.WithLabels(gc.Labels...))
		}
		if gc.Kind == KindCycle {
			return builder.Cycle(gc.N), opts, nil
		}
		return builder.RandomSparse(gc.N, gc.P), opts, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown generator kind %q", ErrInvalidConfig, gc.Kind)
	}
}

// idOption resolves IDScheme, falling back to the IntIDs / IDPrefix shorthands.
func (gc GeneratorConfig) idOption() (builder.BuilderOption, error) {
	scheme := gc.IDScheme
	if scheme == "" {
		switch {
		case gc.IntIDs:
			scheme = IDSchemeInt
		case gc.IDPrefix != "":
			scheme = IDSchemePrefix
		default:
			scheme = IDSchemeDecimal
		}
	}

	switch scheme {
	case IDSchemeDecimal:
		return builder.WithIDScheme(builder.DefaultIDFn), nil
	case IDSchemeExcel:
		return builder.WithExcelColumnIDs(), nil
	case IDSchemePrefix:
		if gc.IDPrefix == "" {
			return nil, fmt.Errorf("%w: generator %q: id_scheme prefix needs id_prefix", ErrInvalidConfig, gc.Kind)
		}
		return builder.WithSymbNumb(gc.IDPrefix), nil
	case IDSchemeInt:
		return builder.WithIntIDs(), nil
	default:
		return nil, fmt.Errorf("%w: generator %q: unknown id_scheme %q", ErrInvalidConfig, gc.Kind, scheme)
	}
}

// BuildGraph materializes the graph section: declared nodes, then
// generators in order, then edges.
func (c Config) BuildGraph() (*core.Graph, error) {
	var gopts []core.GraphOption
	if c.Graph.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)

	for i, n := range c.Graph.Nodes {
		if err := g.AddVertex(n.ID.NodeID, n.Label); err != nil {
			return nil, fmt.Errorf("graph.nodes[%d]: %w", i, err)
		}
	}
	for i, gc := range c.Graph.Generate {
		ctor, opts, err := gc.constructor()
		if err != nil {
			return nil, fmt.Errorf("graph.generate[%d]: %w", i, err)
		}
		if err = builder.Apply(g, opts, ctor); err != nil {
			return nil, fmt.Errorf("graph.generate[%d]: %w", i, err)
		}
	}
	for i, e := range c.Graph.Edges {
		if _, err := g.AddEdge(e.From.NodeID, e.To.NodeID); err != nil {
			return nil, fmt.Errorf("graph.edges[%d]: %w", i, err)
		}
	}

	return g, nil
}
