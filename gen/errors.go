// SPDX-License-Identifier: MIT
// Package: ecomsynth/gen
//
// errors.go - sentinel errors for the generation pipeline.
//
// Error policy: package-level sentinels only, branched with errors.Is;
// generators attach context via %w and never panic at runtime. Option
// constructors (WithX) validate and panic on programmer error instead.
package gen

import "errors"

// ErrBadCount indicates a requested population size below one.
var ErrBadCount = errors.New("gen: count must be at least 1")

// ErrEmptyPool indicates order generation was invoked before both the
// customer and product populations exist. Pools are closed-world: they must
// be generated, in full, first.
var ErrEmptyPool = errors.New("gen: empty sampling pool")

// ErrNeedRandSource indicates no RNG was configured. Every generator is
// stochastic; supply WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* add WithSeed(...) */ }.
var ErrNeedRandSource = errors.New("gen: rng is required")
