// SPDX-License-Identifier: MIT

// Package config loads metapath walk runs from YAML: the graph to walk
// (declared nodes and edges, plus optional builder generators) and the walk
// parameters handed to walk.Walker.Run.
//
// Decoding is strict: unknown keys are rejected. YAML integer scalars become
// core.IntID, every other scalar core.StrID, so `id: 1` and `id: "1"` name
// different vertices.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metawalk/core"
	"github.com/katalvlaran/metawalk/metapath"
)

// ErrInvalidConfig is wrapped by every structural problem reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one walk run.
type Config struct {
	Graph GraphConfig `yaml:"graph"`
	Walk  WalkConfig  `yaml:"walk"`
}

// GraphConfig declares the graph. Generators run after Nodes, Edges run last,
// so edges may join declared and generated vertices.
type GraphConfig struct {
	Loops    bool              `yaml:"loops"`
	Nodes    []NodeConfig      `yaml:"nodes,omitempty"`
	Edges    []Edge            `yaml:"edges,omitempty"`
	Generate []GeneratorConfig `yaml:"generate,omitempty"`
}

// NodeConfig is one labeled vertex.
type NodeConfig struct {
	ID    ID     `yaml:"id"`
	Label string `yaml:"label"`
}

// WalkConfig mirrors the arguments of walk.Walker.Run.
// An omitted Roots list means every vertex, in NodeID order.
type WalkConfig struct {
	Roots     []ID       `yaml:"roots,omitempty"`
	N         int        `yaml:"n"`
	Length    int        `yaml:"length"`
	Metapaths [][]string `yaml:"metapaths"`
	Seed      *int64     `yaml:"seed,omitempty"`
	Workers   int        `yaml:"workers"`
}

const (
	defaultN       = 10
	defaultLength  = 80
	defaultWorkers = 1
)

// DefaultConfig returns the values used for keys a file leaves out.
func DefaultConfig() Config {
	return Config{
		Walk: WalkConfig{
			N:       defaultN,
			Length:  defaultLength,
			Workers: defaultWorkers,
		},
	}
}

// Load reads the YAML file at path over DefaultConfig and validates it.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode strictly decodes one YAML document from r over DefaultConfig.
// It does not validate.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("YAML syntax error in config: %w", err)
	}

	return cfg, nil
}

// Metapaths converts the configured label lists.
func (c Config) Metapaths() []metapath.Metapath {
	out := make([]metapath.Metapath, len(c.Walk.Metapaths))
	for i, m := range c.Walk.Metapaths {
		out[i] = metapath.Metapath(m)
	}

	return out
}

// Roots returns the configured roots, or every vertex of g when none are listed.
func (c Config) Roots(g *core.Graph) []core.NodeID {
	if c.Walk.Roots == nil {
		return g.Vertices()
	}

	return ids(c.Walk.Roots)
}

func ids(in []ID) []core.NodeID {
	out := make([]core.NodeID, len(in))
	for i, id := range in {
		out[i] = id.NodeID
	}

	return out
}
