package gen_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecomsynth/ecomsynth/gen"
	"github.com/ecomsynth/ecomsynth/randx"
	"github.com/ecomsynth/ecomsynth/shop"
)

// anchor pins "today" so every test run reproduces the same dataset.
var anchor = time.Date(2025, time.December, 15, 10, 30, 0, 0, time.UTC)

func TestCustomers_PopulationShape(t *testing.T) {
	customers, err := gen.Customers(200, gen.WithSeed(42), gen.WithToday(anchor))
	require.NoError(t, err)
	require.Len(t, customers, 200)

	today := shop.DateOf(anchor)
	windowStart := today.AddDays(-730)
	signupEnd := windowStart.AddDays(700)

	for i, c := range customers {
		require.Equal(t, shop.CustomerID(i+1), c.ID)
		require.NotEmpty(t, c.FirstName)
		require.NotEmpty(t, c.LastName)
		require.Contains(t, c.Email, "@")
		require.NotEmpty(t, c.City)
		require.NotEmpty(t, c.Country)
		require.True(t, c.SignupDate.Between(windowStart, signupEnd),
			"signup %s outside window", c.SignupDate)

		score := float64(c.ActivityScore)
		require.Greater(t, score, 0.0)
		switch {
		case score > 3.0:
			require.Equal(t, shop.SegmentVIP, c.Segment)
		case score > 1.5:
			require.Equal(t, shop.SegmentReturning, c.Segment)
		default:
			require.Equal(t, shop.SegmentNew, c.Segment)
		}
	}
}

func TestCustomers_Errors(t *testing.T) {
	_, err := gen.Customers(0, gen.WithSeed(1))
	require.True(t, errors.Is(err, gen.ErrBadCount))

	_, err = gen.Customers(5) // no seed policy configured
	require.True(t, errors.Is(err, gen.ErrNeedRandSource))
}

func TestProducts_CatalogShape(t *testing.T) {
	products, err := gen.Products(100, gen.WithSeed(42), gen.WithToday(anchor))
	require.NoError(t, err)
	require.Len(t, products, 100)

	ranges := map[shop.Category][2]float64{
		shop.Electronics: {40, 1200},
		shop.Apparel:     {10, 150},
		shop.Home:        {15, 300},
		shop.Beauty:      {8, 80},
		shop.Outdoor:     {20, 500},
		shop.Toys:        {10, 150},
	}

	for i, p := range products {
		require.Equal(t, shop.ProductID(i+1), p.ID)
		require.Equal(t, shop.ProductSKU(p.Category, i+1), p.SKU)
		require.NotEmpty(t, p.Name)

		r, ok := ranges[p.Category]
		require.True(t, ok, "unknown category %q", p.Category)

		price := p.BasePrice.Float64()
		require.GreaterOrEqual(t, price, r[0]*0.9-0.01)
		require.LessOrEqual(t, price, r[1]+0.01)

		// Margin in [0.25, 0.5] keeps cost strictly below price.
		cost := p.UnitCost.Float64()
		require.Greater(t, cost, 0.0)
		require.Less(t, cost, price)
		require.GreaterOrEqual(t, cost, price*0.5-0.01)
		require.LessOrEqual(t, cost, price*0.75+0.01)

		require.Greater(t, p.Popularity, 0.0)
	}
}

func TestProducts_Errors(t *testing.T) {
	_, err := gen.Products(-1, gen.WithSeed(1))
	require.True(t, errors.Is(err, gen.ErrBadCount))

	_, err = gen.Products(5)
	require.True(t, errors.Is(err, gen.ErrNeedRandSource))
}

func TestOrders_EmptyPools(t *testing.T) {
	customers, err := gen.Customers(3, gen.WithSeed(1), gen.WithToday(anchor))
	require.NoError(t, err)
	products, err := gen.Products(3, gen.WithSeed(1), gen.WithToday(anchor))
	require.NoError(t, err)

	_, err = gen.Orders(10, nil, products, gen.WithSeed(1))
	require.True(t, errors.Is(err, gen.ErrEmptyPool))

	_, err = gen.Orders(10, customers, nil, gen.WithSeed(1))
	require.True(t, errors.Is(err, gen.ErrEmptyPool))

	_, err = gen.Orders(0, customers, products, gen.WithSeed(1))
	require.True(t, errors.Is(err, gen.ErrBadCount))
}

// The reference scenario: seed 42, 500 customers, 50 products, 1000 orders.
func TestGenerate_ReferenceScenario(t *testing.T) {
	ds, err := gen.Generate(gen.Counts{Customers: 500, Products: 50, Orders: 1000},
		gen.WithSeed(42), gen.WithToday(anchor))
	require.NoError(t, err)
	require.Len(t, ds.Customers, 500)
	require.Len(t, ds.Products, 50)
	require.Len(t, ds.Orders, 1000)

	customerIDs := make(map[string]bool, len(ds.Customers))
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	productIDs := make(map[string]bool, len(ds.Products))
	for _, p := range ds.Products {
		productIDs[p.ID] = true
	}

	today := shop.DateOf(anchor)
	windowStart := today.AddDays(-364)
	validDiscounts := map[shop.Fraction]bool{
		0: true, 0.05: true, 0.10: true, 0.15: true, 0.20: true, 0.25: true, 0.30: true,
	}

	for i, o := range ds.Orders {
		require.Equal(t, shop.OrderID(i+1), o.ID)
		require.True(t, customerIDs[o.CustomerID], "order %s dangling customer %s", o.ID, o.CustomerID)
		require.True(t, productIDs[o.ProductID], "order %s dangling product %s", o.ID, o.ProductID)

		require.GreaterOrEqual(t, o.Quantity, 1)
		require.LessOrEqual(t, o.Quantity, 5)
		require.True(t, validDiscounts[o.Discount], "order %s discount %v", o.ID, o.Discount)
		require.Greater(t, o.UnitPrice.Float64(), 0.0)
		require.True(t, o.PlacedAt.Date().Between(windowStart, today),
			"order %s date %s outside trailing window", o.ID, o.PlacedAt)
	}

	// The rollup must account for every order exactly once.
	totalOrders := 0
	for _, r := range ds.Rollups {
		totalOrders += r.Orders
	}
	require.Equal(t, 1000, totalOrders)
}

// Rollups must equal an independent recomputation over the order batch.
func TestRollupCustomers_MatchesOrders(t *testing.T) {
	ds, err := gen.Generate(gen.Counts{Customers: 50, Products: 10, Orders: 300},
		gen.WithSeed(7), gen.WithToday(anchor))
	require.NoError(t, err)

	counts := make(map[string]int)
	spend := make(map[string]shop.Money)
	for _, o := range ds.Orders {
		counts[o.CustomerID]++
		spend[o.CustomerID] = spend[o.CustomerID].Add(o.Total())
	}

	require.Len(t, ds.Rollups, len(counts))
	for id, r := range ds.Rollups {
		require.Equal(t, counts[id], r.Orders, "customer %s order count", id)
		require.True(t, spend[id].Equal(r.Spent), "customer %s spend: %s vs %s", id, spend[id], r.Spent)
	}

	// Customers without orders are simply absent: the zero rollup applies.
	for _, c := range ds.Customers {
		if counts[c.ID] == 0 {
			_, present := ds.Rollups[c.ID]
			require.False(t, present)
		}
	}
}

// Orders landing in the end-of-November window on promo categories carry at
// least the minimum promotional discount.
func TestOrders_PromotionalWindow(t *testing.T) {
	// Anchor at Nov 30 so the trailing window ends inside the promo window,
	// and a Toys-only catalog so every order is promo-eligible.
	nov := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	customers, err := gen.Customers(20, gen.WithSeed(5), gen.WithToday(nov))
	require.NoError(t, err)

	products := []shop.Product{
		{ID: "P001", Name: "Board Game", Category: shop.Toys,
			BasePrice: shop.MoneyFromFloat(39.99), UnitCost: shop.MoneyFromFloat(20), Popularity: 1, SKU: "SKU-TO-0001"},
		{ID: "P002", Name: "RC Car", Category: shop.Toys,
			BasePrice: shop.MoneyFromFloat(59.99), UnitCost: shop.MoneyFromFloat(30), Popularity: 1, SKU: "SKU-TO-0002"},
	}

	orders, err := gen.Orders(800, customers, products, gen.WithSeed(5), gen.WithToday(nov))
	require.NoError(t, err)

	promoStart := shop.NewDate(2025, time.November, 20)
	promoEnd := shop.NewDate(2025, time.November, 30)
	inWindow := 0
	for _, o := range orders {
		if o.PlacedAt.Date().Between(promoStart, promoEnd) {
			inWindow++
			require.GreaterOrEqual(t, float64(o.Discount), 0.20,
				"order %s at %s under-discounted", o.ID, o.PlacedAt)
		}
	}
	// The holiday-weighted window makes in-window orders overwhelmingly
	// likely across 800 draws.
	require.Greater(t, inWindow, 0, "no orders landed in the promo window")
}

// Cheap products (base quantity 2) average more units per order than
// expensive ones (base quantity 1).
func TestOrders_QuantitySkewByPrice(t *testing.T) {
	customers, err := gen.Customers(20, gen.WithSeed(3), gen.WithToday(anchor))
	require.NoError(t, err)

	meanQuantity := func(price float64, seed int64) float64 {
		products := []shop.Product{{
			ID: "P001", Name: "Widget", Category: shop.Home,
			BasePrice: shop.MoneyFromFloat(price), UnitCost: shop.MoneyFromFloat(price / 2),
			Popularity: 1, SKU: "SKU-HO-0001",
		}}
		orders, err := gen.Orders(500, customers, products, gen.WithSeed(seed), gen.WithToday(anchor))
		require.NoError(t, err)
		total := 0
		for _, o := range orders {
			total += o.Quantity
		}
		return float64(total) / float64(len(orders))
	}

	cheap := meanQuantity(20, 11)
	expensive := meanQuantity(500, 11)
	require.Greater(t, cheap, expensive,
		"cheap mean %v should exceed expensive mean %v", cheap, expensive)
	require.Greater(t, cheap, 1.5)
	require.Less(t, expensive, 1.5)
}

// Equal seed, counts and anchor reproduce the dataset exactly.
func TestGenerate_Deterministic(t *testing.T) {
	counts := gen.Counts{Customers: 40, Products: 10, Orders: 120}
	a, err := gen.Generate(counts, gen.WithSeed(42), gen.WithToday(anchor))
	require.NoError(t, err)
	b, err := gen.Generate(counts, gen.WithSeed(42), gen.WithToday(anchor))
	require.NoError(t, err)

	require.Equal(t, a.Customers, b.Customers)
	require.Equal(t, a.Products, b.Products)
	require.Equal(t, a.Orders, b.Orders)
	require.Equal(t, a.Rollups, b.Rollups)

	c, err := gen.Generate(counts, gen.WithSeed(43), gen.WithToday(anchor))
	require.NoError(t, err)
	require.NotEqual(t, a.Orders, c.Orders)
}

// Generation is staged off one shared RNG: the one-shot pipeline and explicit
// staged calls over a shared handle must produce the same dataset.
func TestGenerate_MatchesStagedCalls(t *testing.T) {
	counts := gen.Counts{Customers: 30, Products: 8, Orders: 60}
	ds, err := gen.Generate(counts, gen.WithSeed(9), gen.WithToday(anchor))
	require.NoError(t, err)

	rng := randx.New(9)
	cs, err := gen.Customers(counts.Customers, gen.WithRand(rng), gen.WithToday(anchor))
	require.NoError(t, err)
	ps, err := gen.Products(counts.Products, gen.WithRand(rng), gen.WithToday(anchor))
	require.NoError(t, err)
	ords, err := gen.Orders(counts.Orders, cs, ps, gen.WithRand(rng), gen.WithToday(anchor))
	require.NoError(t, err)

	require.Equal(t, ds.Customers, cs)
	require.Equal(t, ds.Products, ps)
	require.Equal(t, ds.Orders, ords)
}
