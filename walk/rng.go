// SPDX-License-Identifier: MIT
//
// RNG utilities for the walker.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks across platforms.
//   - Encapsulation: no package-level random source; every stream is an explicit *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Parallel workers each own a stream from streamRNG.

package walk

import (
	"math/rand"
	"time"
)

// newRNG returns a deterministic *rand.Rand for seed.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// clockRNG returns a stream seeded from the wall clock, used when a walker
// is built without WithSeed.
func clockRNG() *rand.Rand {
	return newRNG(time.Now().UnixNano())
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream IDs give
// uncorrelated children.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the independent stream number `stream` under base.
func streamRNG(base int64, stream uint64) *rand.Rand {
	return newRNG(deriveSeed(base, stream))
}
