// SPDX-License-Identifier: MIT

package walk

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metawalk/core"
	"github.com/katalvlaran/metawalk/metapath"
)

// Walker generates metapath-constrained walks over one GraphView.
// A Walker is safe for concurrent use; runs with a nil seed serialize on
// the walker-owned stream.
type Walker struct {
	graph   GraphView
	opts    Options
	log     *zap.Logger
	metrics *metrics

	mu  sync.Mutex // guards rng
	rng *rand.Rand // walker-owned stream
}

// NewWalker returns a Walker over g.
// Returns ErrGraphNil, ErrOptionViolation, or a metrics registration error.
func NewWalker(g GraphView, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m, err := newMetrics(o.Registerer)
	if err != nil {
		return nil, fmt.Errorf("walk: register metrics: %w", err)
	}

	w := &Walker{graph: g, opts: o, log: o.Logger, metrics: m}
	if o.Seed != nil {
		w.rng = newRNG(*o.Seed)
	} else {
		w.rng = clockRNG()
	}

	return w, nil
}

// Run is RunContext with context.Background().
func (w *Walker) Run(nodes []core.NodeID, n, length int, metapaths []metapath.Metapath, seed *int64) ([]Walk, error) {
	return w.RunContext(context.Background(), nodes, n, length, metapaths, seed)
}

// RunContext generates n walks of at most length nodes for every root in
// nodes and every metapath, in node-major, metapath-major, repetition order.
//
// Steps:
//  1. ValidateParams; an empty node list then returns an empty result.
//  2. Confirm every root exists (ErrNodeNotFound) before any random draw.
//  3. Precompute each metapath's step schedule.
//  4. Sample sequentially from one stream, or in parallel from derived streams.
//
// ctx is checked between walks; on cancellation ctx.Err() is returned and
// no partial result.
func (w *Walker) RunContext(ctx context.Context, nodes []core.NodeID, n, length int, metapaths []metapath.Metapath, seed *int64) ([]Walk, error) {
	if err := ValidateParams(nodes, n, length, metapaths, seed); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return []Walk{}, nil
	}
	for _, root := range nodes {
		if !w.graph.HasNode(root) {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, root)
		}
	}

	schedules := make([][]string, len(metapaths))
	for j, m := range metapaths {
		schedules[j] = m.Schedule(length)
	}

	start := time.Now()
	runID := uuid.NewString()

	var (
		walks []Walk
		err   error
	)
	if w.opts.Workers > 1 {
		walks, err = w.runParallel(ctx, nodes, n, schedules, seed)
	} else {
		walks, err = w.runSequential(ctx, nodes, n, schedules, seed)
	}
	if err != nil {
		w.log.Debug("metapath run aborted", zap.String("run_id", runID), zap.Error(err))
		return nil, err
	}

	elapsed := time.Since(start)
	w.metrics.observeRun(walks, length, elapsed)
	w.log.Debug("metapath walks generated",
		zap.String("run_id", runID),
		zap.Int("roots", len(nodes)),
		zap.Int("metapaths", len(metapaths)),
		zap.Int("n", n),
		zap.Int("length", length),
		zap.Int("walks", len(walks)),
		zap.Int("workers", w.opts.Workers),
		zap.Bool("seeded", seed != nil),
		zap.Duration("elapsed", elapsed),
	)

	return walks, nil
}

// runSequential consumes a single stream in output order.
func (w *Walker) runSequential(ctx context.Context, nodes []core.NodeID, n int, schedules [][]string, seed *int64) ([]Walk, error) {
	var rng *rand.Rand
	if seed != nil {
		rng = newRNG(*seed)
	} else {
		w.mu.Lock()
		defer w.mu.Unlock()
		rng = w.rng
	}

	s := newSampler(w.graph)
	out := make([]Walk, 0, len(nodes)*len(schedules)*n)
	for _, root := range nodes {
		for _, schedule := range schedules {
			for r := 0; r < n; r++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				wk, err := s.walk(rng, root, schedule)
				if err != nil {
					return nil, err
				}
				out = append(out, wk)
			}
		}
	}

	return out, nil
}

// runParallel gives every (root, metapath) pair its own stream derived from
// a base seed and the pair's index, and writes results into their canonical
// slots. The base seed is *seed, or one draw from the walker-owned stream.
func (w *Walker) runParallel(ctx context.Context, nodes []core.NodeID, n int, schedules [][]string, seed *int64) ([]Walk, error) {
	var base int64
	if seed != nil {
		base = *seed
	} else {
		w.mu.Lock()
		base = w.rng.Int63()
		w.mu.Unlock()
	}

	out := make([]Walk, len(nodes)*len(schedules)*n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.opts.Workers)

	for i, root := range nodes {
		for j, schedule := range schedules {
			pair := i*len(schedules) + j
			root, schedule := root, schedule
			eg.Go(func() error {
				rng := streamRNG(base, uint64(pair))
				s := newSampler(w.graph)
				for r := 0; r < n; r++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					wk, err := s.walk(rng, root, schedule)
					if err != nil {
						return err
					}
					out[pair*n+r] = wk
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
