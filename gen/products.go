// SPDX-License-Identifier: MIT
// Package: ecomsynth/gen
//
// products.go - product catalog generator.
//
// Model:
//   - Category uniform over the fixed set; name uniform from the category's
//     pool. Duplicates are allowed: the catalog is a sample, not a registry.
//   - Base price is log-normal within the category's [low, high] range,
//     clamped to [0.9·low, high] and rounded to cents.
//   - Unit cost keeps a uniform margin in [0.25, 0.5] off the base price.
//   - Popularity follows an inverse power law in generation order (exponent
//     1.05) plus uniform noise in [0, 0.2], approximating a Zipf-like skew.
//     It is a sampling input only and never serialized.
package gen

import (
	"fmt"
	"math"

	"github.com/ecomsynth/ecomsynth/randx"
	"github.com/ecomsynth/ecomsynth/shop"
)

const (
	methodProducts = "Products"

	priceSigma      = 0.9
	priceFloorRatio = 0.9

	marginLo = 0.25
	marginHi = 0.5

	popularityExp   = 1.05
	popularityNoise = 0.2
)

// priceRange bounds base prices for one category.
type priceRange struct {
	low, high float64
}

// priceRanges maps each category to its plausible retail band.
var priceRanges = map[shop.Category]priceRange{
	shop.Electronics: {40, 1200},
	shop.Apparel:     {10, 150},
	shop.Home:        {15, 300},
	shop.Beauty:      {8, 80},
	shop.Outdoor:     {20, 500},
	shop.Toys:        {10, 150},
}

// productNames maps each category to its name pool.
var productNames = map[shop.Category][]string{
	shop.Electronics: {
		"Wireless Headphones", "Smartphone", "Bluetooth Speaker", "Gaming Mouse",
		"4K Monitor", "Smartwatch", "Tablet", "Portable SSD",
	},
	shop.Apparel: {
		"Graphic T-Shirt", "Running Shoes", "Hooded Sweatshirt", "Jeans",
		"Athletic Shorts", "Rain Jacket", "Socks Pack", "Yoga Pants",
	},
	shop.Home: {
		"LED Lamp", "Coffee Maker", "Air Fryer", "Vacuum Cleaner",
		"Throw Blanket", "Ceramic Mugs", "Desk Organizer", "Bedding Set",
	},
	shop.Beauty: {
		"Moisturizer", "Vitamin C Serum", "Shampoo", "Conditioner",
		"Facial Cleanser", "Lipstick", "Sunscreen", "Hair Dryer",
	},
	shop.Outdoor: {
		"Camping Tent", "Hiking Backpack", "Insulated Water Bottle", "Portable Grill",
		"Cycling Helmet", "Picnic Set", "Sleeping Bag", "Foldable Chair",
	},
	shop.Toys: {
		"Building Blocks", "RC Car", "Puzzle Set", "Dollhouse",
		"Action Figure", "Board Game", "Craft Kit", "Science Kit",
	},
}

// Products generates n catalog items with sequential identifiers and derived
// SKUs. Returns ErrBadCount for n < 1 and ErrNeedRandSource when no seed
// policy was configured.
func Products(n int, opts ...Option) ([]shop.Product, error) {
	cfg := newGenConfig(opts...)
	return products(n, cfg)
}

// products is the config-resolved worker shared with the Dataset pipeline.
func products(n int, cfg genConfig) ([]shop.Product, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodProducts, n, ErrBadCount)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodProducts, ErrNeedRandSource)
	}

	out := make([]shop.Product, 0, n)
	for i := 1; i <= n; i++ {
		cat := shop.Categories[cfg.rng.Intn(len(shop.Categories))]
		pool := productNames[cat]
		name := pool[cfg.rng.Intn(len(pool))]

		price := basePrice(cfg, priceRanges[cat])
		margin := randx.Uniform(cfg.rng, marginLo, marginHi)
		cost := shop.MoneyFromFloat(price * (1.0 - margin))

		pop := 1.0/math.Pow(float64(i), popularityExp) + randx.Uniform(cfg.rng, 0, popularityNoise)

		out = append(out, shop.Product{
			ID:         shop.ProductID(i),
			Name:       name,
			Category:   cat,
			BasePrice:  shop.MoneyFromFloat(price),
			UnitCost:   cost,
			Popularity: pop,
			SKU:        shop.ProductSKU(cat, i),
		})
	}
	return out, nil
}

// basePrice draws a log-normal price within the range and clamps it to
// [priceFloorRatio·low, high].
func basePrice(cfg genConfig, r priceRange) float64 {
	span := r.high - r.low
	p := r.low + math.Min(span, randx.LogNormal(cfg.rng, math.Log(span/2), priceSigma))
	return math.Max(r.low*priceFloorRatio, math.Min(r.high, p))
}
