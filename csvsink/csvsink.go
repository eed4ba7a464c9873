// SPDX-License-Identifier: MIT
// Package: ecomsynth/csvsink

// Package csvsink serializes generated collections to flat CSV files with
// fixed headers. Customer rollups are merged into rows here, at write time,
// so the entity values themselves stay immutable. Any I/O failure is fatal to
// the run: errors are returned unrecovered and no partial-output contract is
// offered.
package csvsink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/ecomsynth/ecomsynth/gen"
	"github.com/ecomsynth/ecomsynth/shop"
)

// Output file names within the sink directory.
const (
	CustomersFile = "customers.csv"
	ProductsFile  = "products.csv"
	OrdersFile    = "orders.csv"
)

const dirPerm = 0o755

// customerRow is the serialized customer shape; aggregate columns come from
// the rollup map, not the Customer value.
type customerRow struct {
	CustomerID    string     `csv:"customer_id"`
	FirstName     string     `csv:"first_name"`
	LastName      string     `csv:"last_name"`
	Email         string     `csv:"email"`
	SignupDate    shop.Date  `csv:"signup_date"`
	City          string     `csv:"city"`
	State         string     `csv:"state"`
	Country       string     `csv:"country"`
	Segment       string     `csv:"segment"`
	ActivityScore shop.Score `csv:"activity_score"`
	TotalOrders   int        `csv:"total_orders"`
	TotalSpent    shop.Money `csv:"total_spent"`
}

type productRow struct {
	ProductID string     `csv:"product_id"`
	Name      string     `csv:"name"`
	Category  string     `csv:"category"`
	BasePrice shop.Money `csv:"base_price"`
	UnitCost  shop.Money `csv:"unit_cost"`
	SKU       string     `csv:"sku"`
}

type orderRow struct {
	OrderID       string        `csv:"order_id"`
	OrderDate     shop.DateTime `csv:"order_date"`
	CustomerID    string        `csv:"customer_id"`
	ProductID     string        `csv:"product_id"`
	Quantity      int           `csv:"quantity"`
	UnitPrice     shop.Money    `csv:"unit_price"`
	Discount      shop.Fraction `csv:"discount"`
	Channel       string        `csv:"channel"`
	PaymentMethod string        `csv:"payment_method"`
}

// Sink writes collections into one output directory.
type Sink struct {
	Dir string
}

// New returns a sink rooted at dir. The directory is created on first write.
func New(dir string) Sink { return Sink{Dir: dir} }

// WriteAll persists the dataset: customers (with merged rollups), products
// and orders. The customer file is written only after the rollup exists, so
// aggregates are always reflected in it.
func (s Sink) WriteAll(ds *gen.Dataset) error {
	if err := s.WriteCustomers(ds.Customers, ds.Rollups); err != nil {
		return err
	}
	if err := s.WriteProducts(ds.Products); err != nil {
		return err
	}
	return s.WriteOrders(ds.Orders)
}

// WriteCustomers writes customers.csv, merging each customer's rollup into
// its row. Customers without orders get zero aggregates.
func (s Sink) WriteCustomers(customers []shop.Customer, rollups map[string]shop.CustomerRollup) error {
	rows := make([]customerRow, 0, len(customers))
	for _, c := range customers {
		r := rollups[c.ID] // zero value is correct for order-less customers
		rows = append(rows, customerRow{
			CustomerID:    c.ID,
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Email:         c.Email,
			SignupDate:    c.SignupDate,
			City:          c.City,
			State:         c.State,
			Country:       c.Country,
			Segment:       string(c.Segment),
			ActivityScore: c.ActivityScore,
			TotalOrders:   r.Orders,
			TotalSpent:    r.Spent,
		})
	}
	return s.write(CustomersFile, &rows)
}

// WriteProducts writes products.csv. Popularity is a sampling input and is
// deliberately not serialized.
func (s Sink) WriteProducts(products []shop.Product) error {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  string(p.Category),
			BasePrice: p.BasePrice,
			UnitCost:  p.UnitCost,
			SKU:       p.SKU,
		})
	}
	return s.write(ProductsFile, &rows)
}

// WriteOrders writes orders.csv in generation order.
func (s Sink) WriteOrders(orders []shop.Order) error {
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{
			OrderID:       o.ID,
			OrderDate:     o.PlacedAt,
			CustomerID:    o.CustomerID,
			ProductID:     o.ProductID,
			Quantity:      o.Quantity,
			UnitPrice:     o.UnitPrice,
			Discount:      o.Discount,
			Channel:       string(o.Channel),
			PaymentMethod: string(o.PaymentMethod),
		})
	}
	return s.write(OrdersFile, &rows)
}

// write ensures the sink directory exists and marshals rows to name.
func (s Sink) write(name string, rows interface{}) error {
	if err := os.MkdirAll(s.Dir, dirPerm); err != nil {
		return fmt.Errorf("csvsink: create dir %s: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvsink: create %s: %w", path, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("csvsink: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csvsink: close %s: %w", path, err)
	}
	return nil
}
