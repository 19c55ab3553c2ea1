// Package testutil provides testing utilities for genarena.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and random operation
// sequences for model-based arena tests.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(10000, testutil.DefaultOpMix)
//	for _, op := range ops {
//	    switch op.Kind {
//	    case testutil.OpInsert:
//	        // ...
//	    }
//	}
package testutil
