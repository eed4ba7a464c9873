// SPDX-License-Identifier: MIT
// Package: ecomsynth/shop
//
// scalars.go - CSV-aware scalar types shared by entities and the sink.
//
// Contract:
//   - Money is exact decimal, always held at 2 places; sums of Money are exact,
//     so aggregate spend equals the sum over orders to the cent.
//   - Date serializes as "2006-01-02", DateTime as "2006-01-02T15:04"; both are
//     lexicographically sortable.
//   - Each type implements MarshalCSV (gocsv TypeMarshaller) so row structs in
//     the sink need no per-column formatting code.
package shop

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"

	moneyPlaces    = 2
	scorePlaces    = 4
	fractionPlaces = 2
)

// Money is an exact monetary amount held at two decimal places.
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// MoneyFromFloat converts a raw float to Money, rounding half away from zero
// to two places. All monetary values enter the domain through this function.
func MoneyFromFloat(v float64) Money {
	return Money{d: decimal.NewFromFloat(v).Round(moneyPlaces)}
}

// Add returns m + o exactly.
func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }

// MulInt returns m × n exactly. Quantities are small integers, so the result
// stays at two places.
func (m Money) MulInt(n int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(n)))}
}

// Float64 returns the nearest float64 representation. For tests and
// comparisons only; serialization goes through MarshalCSV.
func (m Money) Float64() float64 { return m.d.InexactFloat64() }

// Equal reports exact equality.
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// GreaterThan reports m > o.
func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }

// String renders with exactly two decimal places, e.g. "12.50".
func (m Money) String() string { return m.d.StringFixed(moneyPlaces) }

// MarshalCSV implements gocsv.TypeMarshaller.
func (m Money) MarshalCSV() (string, error) { return m.String(), nil }

// Date is a calendar date (time-of-day discarded).
type Date struct {
	t time.Time
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a date from components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Year, Month and Weekday expose calendar components for seasonality rules.
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Before and After are strict comparisons.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

// Between reports lo ≤ d ≤ hi.
func (d Date) Between(lo, hi Date) bool { return !d.Before(lo) && !d.After(hi) }

// At attaches a time of day, producing a DateTime.
func (d Date) At(hour, minute int) DateTime {
	return DateTime{t: time.Date(d.t.Year(), d.t.Month(), d.t.Day(), hour, minute, 0, 0, time.UTC)}
}

// String renders as "2006-01-02".
func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Date) MarshalCSV() (string, error) { return d.String(), nil }

// DateTime is a timestamp with minute precision.
type DateTime struct {
	t time.Time
}

// Date strips the time of day.
func (dt DateTime) Date() Date { return DateOf(dt.t) }

// Hour exposes the hour component.
func (dt DateTime) Hour() int { return dt.t.Hour() }

// String renders as "2006-01-02T15:04" (sortable, minute precision).
func (dt DateTime) String() string { return dt.t.Format(dateTimeLayout) }

// MarshalCSV implements gocsv.TypeMarshaller.
func (dt DateTime) MarshalCSV() (string, error) { return dt.String(), nil }

// Score is a continuous activity score, serialized rounded to four places.
type Score float64

// MarshalCSV implements gocsv.TypeMarshaller.
func (s Score) MarshalCSV() (string, error) {
	return strconv.FormatFloat(roundTo(float64(s), scorePlaces), 'f', -1, 64), nil
}

// Fraction is a discount fraction in [0,1), serialized rounded to two places.
type Fraction float64

// MarshalCSV implements gocsv.TypeMarshaller.
func (f Fraction) MarshalCSV() (string, error) {
	return strconv.FormatFloat(roundTo(float64(f), fractionPlaces), 'f', -1, 64), nil
}

// roundTo rounds v half away from zero to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	pow := math.Pow10(places)
	return math.Round(v*pow) / pow
}
