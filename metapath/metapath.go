// SPDX-License-Identifier: MIT

// Package metapath defines metapaths (ordered label patterns) and the cyclic
// step schedule a metapath-constrained walk follows.
//
// For a metapath P = [p0, p1, …, p(k-1)] with k ≥ 2, step i ≥ 1 of a walk
// requires label
//
//	P[1 + ((i-1) mod (k-1))]
//
// so the pattern repeats with period k-1. Step 0 is the root and carries no
// requirement. The schedule is well-formed when p0 == p(k-1), which Validate enforces.
package metapath

import (
	"errors"
	"fmt"
	"strings"
)

// MinLen is the smallest admissible metapath length.
const MinLen = 2

// Sentinel errors returned by Validate.
var (
	// ErrTooShort is returned for a metapath with fewer than MinLen labels.
	ErrTooShort = errors.New("metapath: fewer than 2 labels")

	// ErrEmptyLabel is returned when a metapath contains an empty label.
	ErrEmptyLabel = errors.New("metapath: empty label")

	// ErrNotClosed is returned when the first and last labels differ.
	ErrNotClosed = errors.New("metapath: first and last labels differ")

	// ErrBadStep is returned by LabelAt for steps < 1.
	ErrBadStep = errors.New("metapath: step must be ≥ 1")
)

// Metapath is an ordered sequence of vertex labels, e.g. ["author", "paper", "author"].
type Metapath []string

// Validate checks that m has at least MinLen non-empty labels and starts
// and ends with the same label.
func (m Metapath) Validate() error {
	if len(m) < MinLen {
		return fmt.Errorf("%w: %v has %d", ErrTooShort, m, len(m))
	}
	for i, l := range m {
		if l == "" {
			return fmt.Errorf("%w: position %d of %v", ErrEmptyLabel, i, m)
		}
	}
	if m[0] != m[len(m)-1] {
		return fmt.Errorf("%w: %v starts with %q and ends with %q", ErrNotClosed, m, m[0], m[len(m)-1])
	}

	return nil
}

// Period returns the cycle length k-1 of the step schedule.
func (m Metapath) Period() int { return len(m) - 1 }

// LabelAt returns the label required at walk step (step ≥ 1).
// m must have passed Validate.
//
// Complexity: O(1).
func (m Metapath) LabelAt(step int) (string, error) {
	if step < 1 {
		return "", fmt.Errorf("%w: got %d", ErrBadStep, step)
	}

	return m[1+(step-1)%m.Period()], nil
}

// Schedule returns the labels required at steps 1..length-1 of a walk of
// the given maximum length. A length ≤ 1 yields an empty schedule.
//
// Complexity: O(length).
func (m Metapath) Schedule(length int) []string {
	if length <= 1 {
		return nil
	}
	out := make([]string, length-1)
	period := m.Period()
	for i := range out {
		out[i] = m[1+i%period]
	}

	return out
}

// String renders m as "a→b→a".
func (m Metapath) String() string { return strings.Join(m, "→") }
