// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/metawalk/core"
)

// BuilderOption configures a BuildGraph/Apply call.
// Option constructors panic on invalid arguments; constructors never do.
type BuilderOption func(*builderConfig)

// WithIDScheme maps vertex indices to textual IDs via fn.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = func(i int) core.NodeID { return core.StrID(fn(i)) }
	}
}

// WithIntIDs makes vertex i the integer ID i.
func WithIntIDs() BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) core.NodeID { return core.IntID(int64(i)) }
	}
}

// WithRand attaches a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed; reproducible for a fixed seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabels sets the round-robin label list used by Cycle and RandomSparse.
func WithLabels(labels ...string) BuilderOption {
	if len(labels) == 0 {
		panic("builder: WithLabels()")
	}
	for _, l := range labels {
		if l == "" {
			panic("builder: WithLabels with empty label")
		}
	}
	cp := append([]string(nil), labels...)
	return func(c *builderConfig) {
		c.labels = cp
	}
}

// WithPartitionLabels sets the left/right labels (bipartite sides, star center/leaves).
// Empty values fall back to "L"/"R".
func WithPartitionLabels(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftLabel, c.rightLabel = left, right
	}
}
