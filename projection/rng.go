// Package projection - RNG utilities shared by all projection construction.
//
// This file centralizes deterministic random generation for the toolbox.
//
// Goals:
//   - Determinism: same seed ⇒ identical projections across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from errors.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to create independent streams (e.g. per-layer seeds in a
//     stacked network) from one base seed.
package projection

import "math/rand"

// FromSeed returns a deterministic *rand.Rand seeded verbatim.
// Seed zero is honored as-is: reproducing a zero-seeded model is part of the
// determinism contract, so there is no hidden fallback seed.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Stacked networks need one independent projection per layer; deriving
//     per-layer seeds from the user's single seed keeps the whole network
//     reproducible while decorrelating the layers.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small changes in inputs produce large, well-distributed
//     output changes.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// fillUniform fills m with independent draws from U[lo, hi).
//
// Complexity: O(rows·cols).
func fillUniform(m []float64, lo, hi float64, rng *rand.Rand) {
	span := hi - lo
	for i := range m {
		m[i] = lo + span*rng.Float64()
	}
}
