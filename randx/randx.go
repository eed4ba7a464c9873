// SPDX-License-Identifier: MIT
// Package: ecomsynth/randx
//
// randx.go - seeded random source and the draw primitives every generator
// shares: uniform reals, bounded integers, log-normal reals.
//
// Determinism policy:
//   - One *rand.Rand handle is created per run via New(seed) and threaded
//     explicitly through every sampling call. No package-level state, no
//     process-wide singleton: identical seed ⇒ identical draw sequence.
//   - Helpers never consume draws on invalid input; callers validate sizes
//     before sampling so draw counts stay stable across code paths.
//
// Errors: none. These are pure generators; a nil rng is programmer error and
// panics at the call site (validation lives in option constructors upstream).

// Package randx provides the seeded pseudo-random source underlying all
// sampling in the generation pipeline.
package randx

import (
	"math"
	"math/rand"
)

// New returns a deterministic source for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a real uniformly from [lo, hi).
// Degenerate intervals (hi == lo) yield lo.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// IntBetween draws an integer uniformly from [lo, hi] inclusive.
func IntBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// LogNormal draws from a log-normal distribution whose underlying normal has
// the given mu and sigma: exp(mu + sigma·Z), Z ~ N(0,1). Always positive,
// right-skewed; used for prices, activity scores and quantities.
func LogNormal(rng *rand.Rand, mu, sigma float64) float64 {
	return math.Exp(mu + sigma*rng.NormFloat64())
}
