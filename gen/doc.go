// SPDX-License-Identifier: MIT

// Package gen builds the synthetic dataset: customer and product populations,
// a weighted order stream over them, and the customer aggregate rollup.
//
// Generation is strictly ordered and single-threaded: all customers, then all
// products, then all orders, then one aggregation pass. Populations are
// closed-world - every order references a customer and a product generated
// earlier in the same run, and no entity is mutated after generation.
//
// All stochastic behavior flows through one injected *rand.Rand (WithRand or
// WithSeed), so equal seeds, population sizes and anchor dates reproduce the
// dataset exactly.
package gen
