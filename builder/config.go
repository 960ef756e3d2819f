// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/metawalk/core"
)

// builderConfig is the resolved option set shared by all constructors of one call.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Round-robin labels for Cycle and RandomSparse.
	labels []string

	// Partition labels (CompleteBipartite sides, Star center/leaves).
	leftLabel  string
	rightLabel string
}

const (
	defaultLeftLabel  = "L"
	defaultRightLabel = "R"
)

var defaultLabels = []string{defaultLeftLabel, defaultRightLabel}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       decimalID,
		labels:     defaultLabels,
		leftLabel:  defaultLeftLabel,
		rightLabel: defaultRightLabel,
	}

	// Last-wins.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftLabel == "" {
		cfg.leftLabel = defaultLeftLabel
	}
	if cfg.rightLabel == "" {
		cfg.rightLabel = defaultRightLabel
	}

	return cfg
}

// labelAt returns the round-robin label for vertex index i.
func (c builderConfig) labelAt(i int) string {
	return c.labels[i%len(c.labels)]
}

func decimalID(i int) core.NodeID {
	return core.StrID(DefaultIDFn(i))
}
