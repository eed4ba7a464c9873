// SPDX-License-Identifier: MIT
// Package: ecomsynth/names

// Package names supplies customer identity attributes: person names, contact
// emails and city/state/country locations. The generation pipeline treats it
// as a pluggable collaborator behind the Provider interface; the default
// table-backed provider draws everything from the injected rng so runs stay
// byte-identical per seed.
package names

import (
	"fmt"
	"math/rand"
	"strings"
)

// Location is a coherent city/state/country tuple. State may be empty for
// countries without subdivisions in the pool.
type Location struct {
	City    string
	State   string
	Country string
}

// Provider supplies identity attributes for generated customers.
// Implementations must be deterministic with respect to their seed source.
type Provider interface {
	// Person returns a first and last name.
	Person(rng *rand.Rand) (first, last string)
	// Email returns a contact address for the given person.
	Email(rng *rand.Rand, first, last string) string
	// Location returns a city/state/country tuple.
	Location(rng *rand.Rand) Location
}

// Fixed pools for the table provider.
var (
	firstNames = []string{
		"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Skyler",
		"Jamie", "Cameron", "Drew", "Logan", "Quinn", "Rowan", "Harper", "Parker",
		"Charlie", "Emerson", "Reese", "Sage",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	emailDomains = []string{"example.com", "mail.com", "inbox.com", "shopper.net"}
	locations    = []Location{
		{"New York", "NY", "USA"}, {"Los Angeles", "CA", "USA"}, {"Chicago", "IL", "USA"},
		{"Houston", "TX", "USA"}, {"Phoenix", "AZ", "USA"}, {"Philadelphia", "PA", "USA"},
		{"San Antonio", "TX", "USA"}, {"San Diego", "CA", "USA"}, {"Dallas", "TX", "USA"},
		{"San Jose", "CA", "USA"}, {"Toronto", "ON", "Canada"}, {"Vancouver", "BC", "Canada"},
		{"London", "", "UK"}, {"Manchester", "", "UK"}, {"Sydney", "NSW", "Australia"},
		{"Melbourne", "VIC", "Australia"}, {"Berlin", "", "Germany"}, {"Paris", "", "France"},
	}
)

// maxEmailSuffix bounds the numeric disambiguator in generated addresses.
const maxEmailSuffix = 9999

// tableProvider draws uniformly from the fixed pools above.
type tableProvider struct{}

// Tables returns the default deterministic provider backed by fixed name,
// domain and location pools.
func Tables() Provider { return tableProvider{} }

func (tableProvider) Person(rng *rand.Rand) (string, string) {
	return firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]
}

func (tableProvider) Email(rng *rand.Rand, first, last string) string {
	num := 1 + rng.Intn(maxEmailSuffix)
	domain := emailDomains[rng.Intn(len(emailDomains))]
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), num, domain)
}

func (tableProvider) Location(rng *rand.Rand) Location {
	return locations[rng.Intn(len(locations))]
}
