// Package testutil provides testing utilities for bsa.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.Indices(100, 1<<12) // distinct indices
//	ops := rng.Ops(1000, 1<<10)    // mixed set/delete sequence
//
// # Reference Model
//
// Model mirrors array semantics with a plain map, so an Array can be checked
// against it after every operation.
package testutil
