// Package rholaw measures how concentrated influence is in a weighted
// directed graph, and how that concentration evolves when trust is built
// and plundered.
//
// The invariant:
//
//	rho = A² · (1 − D)
//
//	A  authority: share of the heaviest node's total weight
//	D  diversity: mean normalized Shannon entropy of the columns
//
// rho is 0 for a perfectly spread graph and approaches 1 when one node
// holds all the weight and every distribution is one-hot.
//
// Subpackages:
//
//	matrix/    — dense row-major matrices, validators, column/row reductions
//	rho/       — Authority, Diversity, Rho, Evaluator (calibration bound at construction)
//	builder/   — StarPlunder, Uniform and seeded Random weight matrices
//	band/      — Green…Black classification of rho values
//	trustsim/  — seeded trust-formation simulation scored with rho each step
//	cmd/rholaw — CLI: star, simulate, bands, version
//
// Every stochastic component takes an explicit, seedable *rand.Rand; no
// package keeps mutable global state.
package rholaw
