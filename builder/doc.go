// Package builder produces canonical synthetic weight matrices for the rho
// package: the star–plunder test topology, uniform matrices, and seeded
// random matrices for property tests.
//
// The package offers the following key components:
//
//   - Constructors:
//     – StarPlunder(n, p): hub node 0 with a uniform column; every other node
//     sends p to the hub and spreads 1−p evenly over the non-hub nodes.
//     – Uniform(n): every entry 1/n.
//     – Random(n, opts...): i.i.d. weights drawn from a WeightFn.
//   - Configuration primitives (functional options):
//     – WithSeed / WithRand: explicit random stream for Random.
//     – WithWeightFn: per-cell weight distribution.
//   - Weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, SparseWeightFn.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the constructor name.
//   - Deterministic output: fixed fill order, and a fixed random stream for
//     a fixed seed.
package builder
