// SPDX-License-Identifier: MIT
// Package: ecomsynth/gen
//
// dataset.go - the one-shot pipeline: customers, then products, then orders,
// then the aggregate rollup, all off a single shared RNG stream.
package gen

import "github.com/ecomsynth/ecomsynth/shop"

// Counts fixes the population sizes for one run.
type Counts struct {
	Customers int
	Products  int
	Orders    int
}

// Dataset holds one complete generated run. Collections are immutable once
// Generate returns; Rollups is keyed by customer ID and covers exactly the
// customers that placed orders.
type Dataset struct {
	Customers []shop.Customer
	Products  []shop.Product
	Orders    []shop.Order
	Rollups   map[string]shop.CustomerRollup
}

// Generate runs the full pipeline in its fixed order. All three generators
// consume the same configured RNG sequentially, so a run is reproduced by
// (seed, counts, anchor date) alone.
func Generate(counts Counts, opts ...Option) (*Dataset, error) {
	cfg := newGenConfig(opts...)

	cs, err := customers(counts.Customers, cfg)
	if err != nil {
		return nil, err
	}
	ps, err := products(counts.Products, cfg)
	if err != nil {
		return nil, err
	}
	ords, err := orders(counts.Orders, cs, ps, cfg)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Customers: cs,
		Products:  ps,
		Orders:    ords,
		Rollups:   RollupCustomers(ords),
	}, nil
}
