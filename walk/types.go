// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/metawalk/core"
)

// Sentinel errors for walk execution.
var (
	// ErrInvalidParameter is matched by every *ParamError.
	ErrInvalidParameter = errors.New("walk: invalid parameter")

	// ErrNodeNotFound is returned when a root node is absent from the graph.
	ErrNodeNotFound = errors.New("walk: root node not found")

	// ErrGraphNil is returned if a nil GraphView is passed to NewWalker.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// GraphView is the read-only capability set a walker needs.
//
// Neighbors must include id itself when id has a self-loop and must return
// neighbors in a deterministic order; seeded reproducibility depends on it.
type GraphView interface {
	HasNode(id core.NodeID) bool
	LabelOf(id core.NodeID) (string, error)
	Neighbors(id core.NodeID) ([]core.NodeID, error)
}

var _ GraphView = (*core.Graph)(nil)

// Walk is an ordered sequence of node IDs starting at its root.
type Walk []core.NodeID

// Tokens renders the walk as string tokens for sequence-model trainers.
func (w Walk) Tokens() []string {
	out := make([]string, len(w))
	for i, id := range w {
		out[i] = id.String()
	}

	return out
}

// ParamError describes a rejected run argument.
type ParamError struct {
	// Param names the offending argument: "nodes", "n", "length", "metapaths" or "seed".
	Param string
	// Reason is a human-readable explanation.
	Reason string
	// Err is an optional underlying cause (e.g. metapath.ErrNotClosed).
	Err error
}

func (e *ParamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("walk: invalid %s: %s: %v", e.Param, e.Reason, e.Err)
	}

	return fmt.Sprintf("walk: invalid %s: %s", e.Param, e.Reason)
}

// Unwrap exposes ErrInvalidParameter and, when set, the underlying cause.
func (e *ParamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidParameter, e.Err}
	}

	return []error{ErrInvalidParameter}
}

// Option configures a Walker via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewWalker.
type Option func(*Options)

// Options holds the walker configuration.
type Options struct {
	// Seed, if non-nil, seeds the walker-owned stream used by runs with a nil seed.
	// Otherwise that stream is seeded from the clock.
	Seed *int64

	// Logger receives one debug entry per run.
	Logger *zap.Logger

	// Registerer, if non-nil, receives the walker's metrics.
	Registerer prometheus.Registerer

	// Workers > 1 enables parallel mode with that many goroutines.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential, unlogged, unmetered options with a
// clock-seeded walker stream.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: 1,
	}
}

// WithSeed seeds the walker-owned stream. Negative seeds are rejected.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed < 0 {
			o.err = fmt.Errorf("%w: seed cannot be negative (%d)", ErrOptionViolation, seed)
			return
		}
		o.Seed = &seed
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics registers walk metrics with reg; nil is ignored.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registerer = reg
		}
	}
}

// WithWorkers sets the degree of parallelism.
//
//	k == 1: sequential (default)
//	k > 1:  parallel with per-(root, metapath) derived streams
//	k < 1:  invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}
