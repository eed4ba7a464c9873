// SPDX-License-Identifier: MIT
// Package: ecomsynth/names
//
// faker.go - Provider backed by go-faker for a wider identity pool.
//
// Determinism note: faker draws from its own package-level source, so the
// provider reseeds it at construction from the run seed rather than using the
// pipeline rng. Locations keep using the curated tuple pool because faker has
// no coherent city/state/country triple.
package names

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
)

// fakerProvider generates person names and emails via go-faker.
type fakerProvider struct {
	tables tableProvider
}

// Faker returns a Provider that draws names and emails from go-faker's pools,
// seeded once from the given run seed.
func Faker(seed int64) Provider {
	faker.SetRandomSource(rand.NewSource(seed))
	return fakerProvider{}
}

func (fakerProvider) Person(_ *rand.Rand) (string, string) {
	return faker.FirstName(), faker.LastName()
}

func (fakerProvider) Email(_ *rand.Rand, _, _ string) string {
	return faker.Email()
}

func (p fakerProvider) Location(rng *rand.Rand) Location {
	return p.tables.Location(rng)
}
