// SPDX-License-Identifier: MIT
// Package: ecomsynth/gen
//
// orders.go - order stream generator and customer aggregate rollup.
//
// Per order, in a fixed draw order (determinism depends on it):
//   1. order day: weighted pick over the trailing 365-day window ending at the
//      anchor date, weight = season.DateWeight (month × weekday).
//   2. hour: weighted pick over a fixed 24-bucket table favoring evenings and
//      midday; minute uniform in [0,59].
//   3. customer: weighted by activity score, pre-shifted so every weight > 0.
//   4. product: weighted by popularity × category-month multiplier for the
//      order's month.
//   5. quantity: log-normal around a price-dependent base, clamped to [1,5].
//   6. discount: occasional markdown; end-of-November promo window overrides
//      upward for Electronics/Toys/Apparel.
//   7. unit price: base × (1-discount) × (1+noise), noise uniform in
//      [-0.02, 0.03], rounded to cents.
//   8. channel and payment method by weighted pick.
//   9. sequential identifier.
//
// The rollup is a separate single pass over the completed batch; Customer
// values are never touched.
package gen

import (
	"fmt"
	"math"

	"github.com/ecomsynth/ecomsynth/randx"
	"github.com/ecomsynth/ecomsynth/sampler"
	"github.com/ecomsynth/ecomsynth/season"
	"github.com/ecomsynth/ecomsynth/shop"
)

const (
	methodOrders = "Orders"

	// Trailing sales window, in days, ending at the anchor date.
	orderWindowDays = 365

	// Hour-of-day weight table buckets.
	hourWeightEvening = 0.6 // 18-22
	hourWeightMidday  = 0.4 // 12-14
	hourWeightOffPeak = 0.2

	// Activity weights are shifted by |min|+activityWeightEps when the
	// minimum is non-positive, so no customer is unreachable.
	activityWeightEps = 0.01

	quantityMin   = 1
	quantityMax   = 5
	quantitySigma = 0.5
	// Orders of products above this price default to a single unit.
	singleUnitPrice = 100.0

	markdownChance = 0.15

	priceNoiseLo = -0.02
	priceNoiseHi = 0.03
)

// Markdown and promotional discount tiers; choices within a tier are uniform.
var (
	markdownTiers = []float64{0.05, 0.10, 0.15}
	promoTiers    = []float64{0.20, 0.25, 0.30}
)

// promoCategories are eligible for the end-of-November promotional window.
var promoCategories = map[shop.Category]bool{
	shop.Electronics: true,
	shop.Toys:        true,
	shop.Apparel:     true,
}

// Fixed enum weights for channel and payment selection.
var (
	channels       = []shop.Channel{shop.ChannelWeb, shop.ChannelMobile}
	channelWeights = []float64{0.6, 0.4}

	payments = []shop.PaymentMethod{
		shop.PayCreditCard, shop.PayPayPal, shop.PayApplePay, shop.PayGooglePay,
	}
	paymentWeights = []float64{0.5, 0.2, 0.15, 0.15}
)

// Orders generates n transactions over the given closed populations.
// Returns ErrBadCount for n < 1, ErrEmptyPool when either population is
// empty, and ErrNeedRandSource when no seed policy was configured.
func Orders(n int, customers []shop.Customer, products []shop.Product, opts ...Option) ([]shop.Order, error) {
	cfg := newGenConfig(opts...)
	return orders(n, customers, products, cfg)
}

// orders is the config-resolved worker shared with the Dataset pipeline.
func orders(n int, customers []shop.Customer, products []shop.Product, cfg genConfig) ([]shop.Order, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodOrders, n, ErrBadCount)
	}
	if len(customers) == 0 || len(products) == 0 {
		return nil, fmt.Errorf("%s: %d customers, %d products: %w",
			methodOrders, len(customers), len(products), ErrEmptyPool)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodOrders, ErrNeedRandSource)
	}

	days, dayWeights := dateWindow(cfg.today)
	hours, hourWeights := hourTable()
	custWeights := activityWeights(customers)
	prodWeights := make([]float64, len(products)) // rescaled per order month

	// Promotional window: end of November of the anchor year.
	promoStart := shop.NewDate(cfg.today.Year(), 11, 20)
	promoEnd := shop.NewDate(cfg.today.Year(), 11, 30)

	out := make([]shop.Order, 0, n)
	for i := 1; i <= n; i++ {
		day, err := sampler.Pick(cfg.rng, days, dayWeights)
		if err != nil {
			return nil, fmt.Errorf("%s: day: %w", methodOrders, err)
		}
		hour, err := sampler.Pick(cfg.rng, hours, hourWeights)
		if err != nil {
			return nil, fmt.Errorf("%s: hour: %w", methodOrders, err)
		}
		minute := randx.IntBetween(cfg.rng, 0, 59)

		cust, err := sampler.Pick(cfg.rng, customers, custWeights)
		if err != nil {
			return nil, fmt.Errorf("%s: customer: %w", methodOrders, err)
		}

		// Rescale product popularity by the order month's category season.
		for j, p := range products {
			prodWeights[j] = p.Popularity * season.CategoryMonthMultiplier(p.Category, day.Month())
		}
		prod, err := sampler.Pick(cfg.rng, products, prodWeights)
		if err != nil {
			return nil, fmt.Errorf("%s: product: %w", methodOrders, err)
		}

		qty := quantity(cfg, prod)
		discount := discountFor(cfg, prod, day, promoStart, promoEnd)

		noise := randx.Uniform(cfg.rng, priceNoiseLo, priceNoiseHi)
		unitPrice := shop.MoneyFromFloat(prod.BasePrice.Float64() * (1.0 - discount) * (1.0 + noise))

		channel, err := sampler.Pick(cfg.rng, channels, channelWeights)
		if err != nil {
			return nil, fmt.Errorf("%s: channel: %w", methodOrders, err)
		}
		payment, err := sampler.Pick(cfg.rng, payments, paymentWeights)
		if err != nil {
			return nil, fmt.Errorf("%s: payment: %w", methodOrders, err)
		}

		out = append(out, shop.Order{
			ID:            shop.OrderID(i),
			PlacedAt:      day.At(hour, minute),
			CustomerID:    cust.ID,
			ProductID:     prod.ID,
			Quantity:      qty,
			UnitPrice:     unitPrice,
			Discount:      shop.Fraction(discount),
			Channel:       channel,
			PaymentMethod: payment,
		})
	}
	return out, nil
}

// RollupCustomers folds the completed order batch into per-customer
// aggregates: order count and exact total spend. Customers with no orders are
// absent from the map; their zero-value rollup is the correct aggregate.
func RollupCustomers(orders []shop.Order) map[string]shop.CustomerRollup {
	rollups := make(map[string]shop.CustomerRollup, len(orders))
	for _, o := range orders {
		r := rollups[o.CustomerID]
		r.Orders++
		r.Spent = r.Spent.Add(o.Total())
		rollups[o.CustomerID] = r
	}
	return rollups
}

// dateWindow returns the trailing window's dates (oldest first) and their
// seasonal weights.
func dateWindow(today shop.Date) ([]shop.Date, []float64) {
	days := make([]shop.Date, 0, orderWindowDays)
	weights := make([]float64, 0, orderWindowDays)
	for i := orderWindowDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		days = append(days, d)
		weights = append(weights, season.DateWeight(d))
	}
	return days, weights
}

// hourTable returns the 24 hour buckets and their fixed weights.
func hourTable() ([]int, []float64) {
	hours := make([]int, 24)
	weights := make([]float64, 24)
	for h := range hours {
		hours[h] = h
		switch {
		case h >= 18 && h <= 22:
			weights[h] = hourWeightEvening
		case h >= 12 && h <= 14:
			weights[h] = hourWeightMidday
		default:
			weights[h] = hourWeightOffPeak
		}
	}
	return hours, weights
}

// activityWeights maps customers to sampling weights, shifting all of them up
// when the minimum is non-positive so every customer stays reachable.
func activityWeights(customers []shop.Customer) []float64 {
	weights := make([]float64, len(customers))
	minW := math.Inf(1)
	for i, c := range customers {
		weights[i] = float64(c.ActivityScore)
		minW = math.Min(minW, weights[i])
	}
	if minW <= 0 {
		shift := math.Abs(minW) + activityWeightEps
		for i := range weights {
			weights[i] += shift
		}
	}
	return weights
}

// quantity draws the unit count: log-normal around a price-dependent base,
// rounded and clamped to [quantityMin, quantityMax].
func quantity(cfg genConfig, prod shop.Product) int {
	base := 2.0
	if prod.BasePrice.Float64() > singleUnitPrice {
		base = 1.0
	}
	q := int(math.Round(randx.LogNormal(cfg.rng, math.Log(base), quantitySigma)))
	return clampInt(q, quantityMin, quantityMax)
}

// discountFor applies the markdown chance, then the promotional override for
// eligible categories inside the end-of-November window. The override never
// lowers an existing discount.
func discountFor(cfg genConfig, prod shop.Product, day, promoStart, promoEnd shop.Date) float64 {
	discount := 0.0
	if cfg.rng.Float64() < markdownChance {
		discount = markdownTiers[cfg.rng.Intn(len(markdownTiers))]
	}
	if day.Between(promoStart, promoEnd) && promoCategories[prod.Category] {
		discount = math.Max(discount, promoTiers[cfg.rng.Intn(len(promoTiers))])
	}
	return discount
}
