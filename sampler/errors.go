// SPDX-License-Identifier: MIT
// Package: ecomsynth/sampler
//
// errors.go - sentinel errors for weighted selection.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping; sentinels themselves
//     carry no parameters.
//   - Pick never panics at runtime; every failure maps to exactly one sentinel.
package sampler

import "errors"

// ErrNoItems indicates an empty candidate set. This is the sampler's only
// InvalidInput condition in normal operation; the generation pipeline always
// samples from fixed non-empty populations.
// Usage: if errors.Is(err, ErrNoItems) { /* pool was never populated */ }.
var ErrNoItems = errors.New("sampler: empty candidate set")

// ErrWeightCount indicates the weight slice does not pair one-to-one with the
// item slice.
var ErrWeightCount = errors.New("sampler: items and weights length mismatch")

// ErrNegativeWeight indicates a weight below zero (or NaN). Weights need not
// sum to one, but each must be a non-negative real.
var ErrNegativeWeight = errors.New("sampler: negative weight")

// ErrNeedRandSource indicates the caller passed a nil *rand.Rand. Selection is
// stochastic by contract and requires a seeded source.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply randx.New(seed) */ }.
var ErrNeedRandSource = errors.New("sampler: rng is required")
