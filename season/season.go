// SPDX-License-Identifier: MIT
// Package: ecomsynth/season
//
// season.go - pure seasonal demand multipliers.
//
// Model:
//   - Month: holiday spike in Nov/Dec, summer dip in Jun/Jul, back-to-school
//     bump in Sep, spring lift in Mar/Apr.
//   - Weekday: weekend lift Fri-Sun.
//   - Category×month: per-category seasonal skew (toys at the holidays,
//     outdoor gear in summer, and so on).
//
// Multipliers compose multiplicatively wherever applied; no normalization is
// performed because the weighted sampler normalizes internally.
//
// Complexity: every function is a constant-time lookup; no state, no RNG.

// Package season maps calendar periods and product categories to positive
// demand multipliers used as sampling weights.
package season

import (
	"time"

	"github.com/ecomsynth/ecomsynth/shop"
)

// Named multiplier constants; the tests pin these exactly.
const (
	monthBaseline = 1.0
	monthHoliday  = 1.8  // Nov, Dec
	monthSummer   = 0.85 // Jun, Jul
	monthSchool   = 1.15 // Sep
	monthSpring   = 1.1  // Mar, Apr

	weekdayBaseline = 0.95
	weekdayFriSat   = 1.15
	weekdaySun      = 1.1
)

// MonthMultiplier returns the store-wide demand factor for a calendar month.
func MonthMultiplier(m time.Month) float64 {
	switch m {
	case time.November, time.December:
		return monthHoliday
	case time.June, time.July:
		return monthSummer
	case time.September:
		return monthSchool
	case time.March, time.April:
		return monthSpring
	default:
		return monthBaseline
	}
}

// WeekdayMultiplier returns the demand factor for a day of the week.
func WeekdayMultiplier(wd time.Weekday) float64 {
	switch wd {
	case time.Friday, time.Saturday:
		return weekdayFriSat
	case time.Sunday:
		return weekdaySun
	default:
		return weekdayBaseline
	}
}

// CategoryMonthMultiplier returns the category-specific seasonal factor for a
// month. Unknown categories are season-neutral (1.0).
func CategoryMonthMultiplier(cat shop.Category, m time.Month) float64 {
	switch cat {
	case shop.Toys:
		if m == time.November || m == time.December {
			return 1.6
		}
		return 0.9
	case shop.Outdoor:
		if m >= time.May && m <= time.August {
			return 1.4
		}
		return 0.9
	case shop.Apparel:
		if m == time.September || m == time.October {
			return 1.2
		}
		return 1.0
	case shop.Electronics:
		if m == time.November || m == time.December {
			return 1.3
		}
		return 1.0
	case shop.Home:
		if m >= time.March && m <= time.May {
			return 1.15
		}
		return 1.0
	case shop.Beauty:
		return 1.1
	default:
		return 1.0
	}
}

// DateWeight is the composed sampling weight for a calendar date:
// month multiplier × weekday multiplier.
func DateWeight(d shop.Date) float64 {
	return MonthMultiplier(d.Month()) * WeekdayMultiplier(d.Weekday())
}
