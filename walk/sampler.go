// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/metawalk/core"
)

// initialWalkCap bounds the up-front allocation of a walk; longer walks grow
// by append, so a walk cut short never holds room for the requested length.
const initialWalkCap = 64

// sampler produces single walks. It owns a reusable candidate buffer and
// therefore must not be shared between goroutines.
type sampler struct {
	graph GraphView
	cands []core.NodeID
}

func newSampler(g GraphView) *sampler {
	return &sampler{graph: g}
}

// walk runs one walk from root. schedule[i] is the label required at step
// i+1 (see metapath.Metapath.Schedule), so the walk has at most
// len(schedule)+1 nodes.
//
// Steps:
//  1. Start the walk with root.
//  2. For each scheduled label, collect the current node's neighbors
//     carrying that label (a self-loop lists the node itself).
//  3. No candidate ⇒ stop; otherwise draw one uniformly and continue from it.
//  4. Return a walk whose capacity equals its length.
func (s *sampler) walk(rng *rand.Rand, root core.NodeID, schedule []string) (Walk, error) {
	out := make(Walk, 1, min(len(schedule)+1, initialWalkCap))
	out[0] = root
	cur := root

	for _, want := range schedule {
		nbrs, err := s.graph.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("walk: neighbors of %s: %w", cur, err)
		}

		s.cands = s.cands[:0]
		for _, nbr := range nbrs {
			lbl, err := s.graph.LabelOf(nbr)
			if err != nil {
				return nil, fmt.Errorf("walk: label of %s: %w", nbr, err)
			}
			if lbl == want {
				s.cands = append(s.cands, nbr)
			}
		}
		if len(s.cands) == 0 {
			break
		}

		cur = s.cands[rng.Intn(len(s.cands))]
		out = append(out, cur)
	}

	// Results are retained for the whole run; drop append's spare capacity.
	if cap(out) > len(out) {
		out = append(make(Walk, 0, len(out)), out...)
	}

	return out, nil
}
