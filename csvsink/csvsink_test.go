package csvsink_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecomsynth/ecomsynth/csvsink"
	"github.com/ecomsynth/ecomsynth/gen"
	"github.com/ecomsynth/ecomsynth/shop"
)

var anchor = time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)

func generate(t *testing.T) *gen.Dataset {
	t.Helper()
	ds, err := gen.Generate(gen.Counts{Customers: 30, Products: 10, Orders: 100},
		gen.WithSeed(42), gen.WithToday(anchor))
	require.NoError(t, err)
	return ds
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteAll_FilesRowsAndHeaders(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") // exercises directory creation
	ds := generate(t)
	require.NoError(t, csvsink.New(dir).WriteAll(ds))

	customers := readCSV(t, filepath.Join(dir, csvsink.CustomersFile))
	require.Len(t, customers, 31) // header + 30 rows
	require.Equal(t, []string{
		"customer_id", "first_name", "last_name", "email", "signup_date",
		"city", "state", "country", "segment", "activity_score",
		"total_orders", "total_spent",
	}, customers[0])

	products := readCSV(t, filepath.Join(dir, csvsink.ProductsFile))
	require.Len(t, products, 11)
	require.Equal(t, []string{
		"product_id", "name", "category", "base_price", "unit_cost", "sku",
	}, products[0])

	orders := readCSV(t, filepath.Join(dir, csvsink.OrdersFile))
	require.Len(t, orders, 101)
	require.Equal(t, []string{
		"order_id", "order_date", "customer_id", "product_id", "quantity",
		"unit_price", "discount", "channel", "payment_method",
	}, orders[0])
}

// Customer rows must reflect the aggregate pass: total_orders and total_spent
// columns match the rollup, and order-less customers serialize zeros.
func TestWriteCustomers_MergesRollups(t *testing.T) {
	dir := t.TempDir()
	ds := generate(t)
	require.NoError(t, csvsink.New(dir).WriteAll(ds))

	rows := readCSV(t, filepath.Join(dir, csvsink.CustomersFile))
	sawZero, sawOrders := false, false
	for _, row := range rows[1:] {
		id := row[0]
		gotOrders, err := strconv.Atoi(row[10])
		require.NoError(t, err)

		r := ds.Rollups[id]
		require.Equal(t, r.Orders, gotOrders, "customer %s total_orders", id)
		require.Equal(t, r.Spent.String(), row[11], "customer %s total_spent", id)

		if gotOrders == 0 {
			require.Equal(t, "0.00", row[11])
			sawZero = true
		} else {
			sawOrders = true
		}
	}
	// 100 orders over 30 customers: both populated and empty aggregates occur.
	require.True(t, sawOrders)
	require.True(t, sawZero)
}

func TestWriteOrders_ValueFormats(t *testing.T) {
	dir := t.TempDir()
	ds := generate(t)
	require.NoError(t, csvsink.New(dir).WriteAll(ds))

	rows := readCSV(t, filepath.Join(dir, csvsink.OrdersFile))
	for _, row := range rows[1:] {
		// Sortable minute-precision timestamp.
		_, err := time.Parse("2006-01-02T15:04", row[1])
		require.NoError(t, err, "order_date %q", row[1])

		// Money at exactly two places.
		require.Regexp(t, `^\d+\.\d{2}$`, row[5], "unit_price %q", row[5])

		qty, err := strconv.Atoi(row[4])
		require.NoError(t, err)
		require.GreaterOrEqual(t, qty, 1)
		require.LessOrEqual(t, qty, 5)
	}
}

// Same seed, sizes and anchor: output files must be byte-identical.
func TestWriteAll_DeterministicBytes(t *testing.T) {
	run := func(dir string) {
		ds := generate(t)
		require.NoError(t, csvsink.New(dir).WriteAll(ds))
	}
	dirA, dirB := t.TempDir(), t.TempDir()
	run(dirA)
	run(dirB)

	for _, name := range []string{csvsink.CustomersFile, csvsink.ProductsFile, csvsink.OrdersFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		require.Equal(t, a, b, "%s differs between identical runs", name)
	}
}

// A sink rooted at an unwritable path surfaces the failure unrecovered.
func TestWriteAll_DirCreationFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	// The sink dir path collides with an existing file: MkdirAll must fail.
	err := csvsink.New(filepath.Join(file, "sub")).WriteCustomers(
		[]shop.Customer{{ID: "C0001"}}, nil)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "create"), "unexpected error %v", err)
}
