// SPDX-License-Identifier: MIT
// Package: ecomsynth/gen
//
// customers.go - customer population generator.
//
// Model:
//   - Signup dates are skewed toward recent months: a log-normal day offset
//     (mu=2.0, sigma=1.0) clamped to [0,700] days, applied to a base date two
//     years before the anchor.
//   - Activity score is heavy-tailed log-normal (mu=0, sigma=1) and drives
//     both the behavioral segment and later order attribution weight.
//   - Segments by threshold: score > 3.0 VIP, > 1.5 Returning, else New.
//
// Determinism: draws occur in a fixed per-customer order (name, email,
// location, signup offset, activity), so equal seeds reproduce the population.
package gen

import (
	"fmt"

	"github.com/ecomsynth/ecomsynth/randx"
	"github.com/ecomsynth/ecomsynth/shop"
)

const (
	methodCustomers = "Customers"

	// Signup window: base date sits this many days before the anchor and
	// offsets are clamped to [0, signupOffsetMax].
	signupWindowDays = 730
	signupOffsetMax  = 700
	signupOffsetMu   = 2.0
	signupOffsetSig  = 1.0

	activityMu  = 0.0
	activitySig = 1.0

	vipThreshold       = 3.0
	returningThreshold = 1.5
)

// Customers generates n customers with sequential zero-padded identifiers.
// Returns ErrBadCount for n < 1 and ErrNeedRandSource when no seed policy was
// configured.
func Customers(n int, opts ...Option) ([]shop.Customer, error) {
	cfg := newGenConfig(opts...)
	return customers(n, cfg)
}

// customers is the config-resolved worker shared with the Dataset pipeline.
func customers(n int, cfg genConfig) ([]shop.Customer, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCustomers, n, ErrBadCount)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodCustomers, ErrNeedRandSource)
	}

	baseDate := cfg.today.AddDays(-signupWindowDays)
	out := make([]shop.Customer, 0, n)
	for i := 1; i <= n; i++ {
		first, last := cfg.names.Person(cfg.rng)
		email := cfg.names.Email(cfg.rng, first, last)
		loc := cfg.names.Location(cfg.rng)

		offset := int(randx.LogNormal(cfg.rng, signupOffsetMu, signupOffsetSig))
		offset = clampInt(offset, 0, signupOffsetMax)

		activity := randx.LogNormal(cfg.rng, activityMu, activitySig)

		out = append(out, shop.Customer{
			ID:            shop.CustomerID(i),
			FirstName:     first,
			LastName:      last,
			Email:         email,
			SignupDate:    baseDate.AddDays(offset),
			City:          loc.City,
			State:         loc.State,
			Country:       loc.Country,
			Segment:       segmentFor(activity),
			ActivityScore: shop.Score(activity),
		})
	}
	return out, nil
}

// segmentFor buckets an activity score into a behavioral segment.
func segmentFor(activity float64) shop.Segment {
	switch {
	case activity > vipThreshold:
		return shop.SegmentVIP
	case activity > returningThreshold:
		return shop.SegmentReturning
	default:
		return shop.SegmentNew
	}
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
