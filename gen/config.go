// SPDX-License-Identifier: MIT
// Package: ecomsynth/gen
//
// config.go - functional options and the resolved generation configuration.
//
// Design:
//   - genConfig is the single source of truth for all generation knobs.
//   - Options apply in order (later overrides earlier); the resolved config is
//     passed by value to generators and never mutated afterward.
//   - Option constructors validate and panic on meaningless inputs; generators
//     themselves return sentinel errors and never panic.
//   - The anchor date ("today") is injectable so tests can pin it and assert
//     byte-identical output; the default is the wall clock, matching a normal
//     one-shot run.
package gen

import (
	"math/rand"
	"time"

	"github.com/ecomsynth/ecomsynth/names"
	"github.com/ecomsynth/ecomsynth/randx"
	"github.com/ecomsynth/ecomsynth/shop"
)

// genConfig aggregates all knobs used by the generators.
type genConfig struct {
	// rng drives every stochastic choice; nil means "not configured" and
	// surfaces as ErrNeedRandSource from generators.
	rng *rand.Rand
	// names supplies customer identity attributes.
	names names.Provider
	// today anchors the signup window, the trailing order window and the
	// promotional window.
	today shop.Date
}

// Option customizes generation by mutating the config before any entity is
// built.
type Option func(*genConfig)

// WithRand provides an explicit RNG shared across generator calls.
// Panics on nil; prefer WithSeed for single-call reproducibility.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a fresh deterministic RNG for the given seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = randx.New(seed) }
}

// WithToday pins the anchor date. Time-of-day is discarded.
func WithToday(t time.Time) Option {
	return func(c *genConfig) { c.today = shop.DateOf(t) }
}

// WithNames overrides the identity provider. Panics on nil.
func WithNames(p names.Provider) Option {
	if p == nil {
		panic("gen: WithNames(nil)")
	}
	return func(c *genConfig) { c.names = p }
}

// newGenConfig resolves options over deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:   nil, // generators require an explicit seed policy
		names: names.Tables(),
		today: shop.DateOf(time.Now()),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
