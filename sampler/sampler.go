// SPDX-License-Identifier: MIT
// Package: ecomsynth/sampler
//
// sampler.go - weighted choice over a finite ordered candidate list.
//
// Canonical model:
//   - Draw r uniformly in [0, total); scan weights in sequence order,
//     accumulating a running sum; the FIRST item whose cumulative weight
//     meets or exceeds r is selected.
//
// Contract:
//   - items must be non-empty (else ErrNoItems) and pair one-to-one with
//     weights (else ErrWeightCount).
//   - Every weight must be a non-negative real (else ErrNegativeWeight);
//     weights need not sum to 1 - only relative magnitude matters.
//   - rng must be non-nil (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Tie-breaks (deterministic, part of the contract):
//   - If floating-point rounding carries r past the final cumulative sum,
//     the LAST item is returned. This is a deliberate tie-break preserved
//     for reproducibility, not an error.
//   - If the total weight is zero (all weights degenerate to 0), selection
//     falls back to uniform over the items.
//
// Complexity: O(n) time, O(1) extra space per call.

// Package sampler implements weighted random selection: one item drawn from a
// candidate list with probability proportional to its non-negative weight.
package sampler

import (
	"fmt"
	"math"
	"math/rand"
)

// methodPick tags error context for the Pick entry point.
const methodPick = "Pick"

// Pick selects one item from items with probability proportional to its
// weight. See the file header for the full contract and tie-break rules.
func Pick[T any](rng *rand.Rand, items []T, weights []float64) (T, error) {
	var zero T

	// Validate early; no draws are consumed on any error path.
	if rng == nil {
		return zero, fmt.Errorf("%s: rng is required: %w", methodPick, ErrNeedRandSource)
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("%s: no items: %w", methodPick, ErrNoItems)
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("%s: %d items vs %d weights: %w",
			methodPick, len(items), len(weights), ErrWeightCount)
	}

	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return zero, fmt.Errorf("%s: weight[%d]=%v: %w", methodPick, i, w, ErrNegativeWeight)
		}
		total += w
	}

	// Degenerate total: uniform fallback rather than undefined behavior.
	if total <= 0 {
		return items[rng.Intn(len(items))], nil
	}

	r := rng.Float64() * total
	var upto float64
	for i, w := range weights {
		upto += w
		if upto >= r {
			return items[i], nil
		}
	}

	// r escaped past the last cumulative sum via rounding: last item wins.
	return items[len(items)-1], nil
}
