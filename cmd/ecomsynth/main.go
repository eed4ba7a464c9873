// SPDX-License-Identifier: MIT

// Command ecomsynth generates a deterministic synthetic e-commerce dataset
// (customers, products, orders) and writes it as CSV files. One-shot batch
// run: exit 0 on success, exit 1 with a logged error otherwise.
//
// Configuration is environment-only:
//
//	DATA_SEED       random seed (default 42)
//	DATA_CUSTOMERS  customer count (default 500)
//	DATA_PRODUCTS   product count (default 50)
//	DATA_ORDERS     order count (default 1000)
//	DATA_OUT_DIR    output directory (default "data")
//	DATA_NAMES      identity provider, "table" or "faker" (default "table")
package main

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecomsynth/ecomsynth/csvsink"
	"github.com/ecomsynth/ecomsynth/gen"
	"github.com/ecomsynth/ecomsynth/names"
)

type config struct {
	Seed      int64  `env:"DATA_SEED" envDefault:"42"`
	Customers int    `env:"DATA_CUSTOMERS" envDefault:"500"`
	Products  int    `env:"DATA_PRODUCTS" envDefault:"50"`
	Orders    int    `env:"DATA_ORDERS" envDefault:"1000"`
	OutDir    string `env:"DATA_OUT_DIR" envDefault:"data"`
	Names     string `env:"DATA_NAMES" envDefault:"table"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("run_id", uuid.NewString()).Logger()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	opts := []gen.Option{gen.WithSeed(cfg.Seed)}
	if cfg.Names == "faker" {
		opts = append(opts, gen.WithNames(names.Faker(cfg.Seed)))
	}

	log.Info().
		Int64("seed", cfg.Seed).
		Int("customers", cfg.Customers).
		Int("products", cfg.Products).
		Int("orders", cfg.Orders).
		Msg("generating dataset")

	ds, err := gen.Generate(gen.Counts{
		Customers: cfg.Customers,
		Products:  cfg.Products,
		Orders:    cfg.Orders,
	}, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}

	sink := csvsink.New(cfg.OutDir)
	if err := sink.WriteAll(ds); err != nil {
		log.Fatal().Err(err).Msg("write failed")
	}

	log.Info().Int("rows", len(ds.Customers)).
		Str("path", filepath.Join(cfg.OutDir, csvsink.CustomersFile)).Msg("wrote customers")
	log.Info().Int("rows", len(ds.Products)).
		Str("path", filepath.Join(cfg.OutDir, csvsink.ProductsFile)).Msg("wrote products")
	log.Info().Int("rows", len(ds.Orders)).
		Str("path", filepath.Join(cfg.OutDir, csvsink.OrdersFile)).Msg("wrote orders")
}
