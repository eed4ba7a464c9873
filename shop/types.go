// SPDX-License-Identifier: MIT
// Package: ecomsynth/shop
//
// types.go - domain value types for the synthetic store: enums, entities,
// identifier schemes and the customer aggregate rollup.
//
// Design contract (strict):
//   - Entities are plain immutable values; generation never mutates them afterwards.
//   - Customer carries NO aggregate fields: order counts and spend live in
//     CustomerRollup, computed in one pass over the order batch and merged into
//     rows only at serialization time.
//   - Identifier schemes are deterministic functions of the 1-based index so that
//     equal seeds and population sizes yield byte-identical output files.
package shop

import (
	"fmt"
	"strings"
)

// Category classifies a product. The set is fixed; samplers select uniformly
// over Categories and seasonality rules key off these exact values.
type Category string

const (
	Electronics Category = "Electronics"
	Apparel     Category = "Apparel"
	Home        Category = "Home"
	Beauty      Category = "Beauty"
	Outdoor     Category = "Outdoor"
	Toys        Category = "Toys"
)

// Categories lists every category in stable sampling order.
var Categories = []Category{Electronics, Apparel, Home, Beauty, Outdoor, Toys}

// Segment is the behavioral tier derived from a customer's activity score.
type Segment string

const (
	SegmentNew       Segment = "New"
	SegmentReturning Segment = "Returning"
	SegmentVIP       Segment = "VIP"
)

// Channel is the storefront an order was placed through.
type Channel string

const (
	ChannelWeb    Channel = "Web"
	ChannelMobile Channel = "Mobile"
)

// PaymentMethod is the tender used on an order.
type PaymentMethod string

const (
	PayCreditCard PaymentMethod = "Credit Card"
	PayPayPal     PaymentMethod = "PayPal"
	PayApplePay   PaymentMethod = "Apple Pay"
	PayGooglePay  PaymentMethod = "Google Pay"
)

// Customer is a generated shopper. Values are immutable once generated;
// aggregates are tracked separately in CustomerRollup.
type Customer struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	SignupDate    Date
	City          string
	State         string
	Country       string
	Segment       Segment
	ActivityScore Score
}

// Product is a generated catalog item. Popularity is a sampling input only;
// it is never serialized.
type Product struct {
	ID         string
	Name       string
	Category   Category
	BasePrice  Money
	UnitCost   Money
	Popularity float64
	SKU        string
}

// Order is one generated transaction referencing exactly one Customer and one
// Product from the closed generation pools.
type Order struct {
	ID            string
	PlacedAt      DateTime
	CustomerID    string
	ProductID     string
	Quantity      int
	UnitPrice     Money
	Discount      Fraction
	Channel       Channel
	PaymentMethod PaymentMethod
}

// Total is the order's monetary value: unit price times quantity, exact.
func (o Order) Total() Money {
	return o.UnitPrice.MulInt(o.Quantity)
}

// CustomerRollup aggregates the order batch for one customer.
// The zero value is the correct aggregate for a customer with no orders.
type CustomerRollup struct {
	Orders int
	Spent  Money
}

// CustomerID renders the i-th (1-based) customer identifier, e.g. "C0042".
func CustomerID(i int) string { return fmt.Sprintf("C%04d", i) }

// ProductID renders the i-th (1-based) product identifier, e.g. "P007".
func ProductID(i int) string { return fmt.Sprintf("P%03d", i) }

// OrderID renders the i-th (1-based) order identifier, e.g. "O00031".
func OrderID(i int) string { return fmt.Sprintf("O%05d", i) }

// ProductSKU derives the stock-keeping unit from category and product index,
// e.g. ("Toys", 7) -> "SKU-TO-0007".
func ProductSKU(cat Category, i int) string {
	return fmt.Sprintf("SKU-%s-%04d", strings.ToUpper(string(cat)[:2]), i)
}
