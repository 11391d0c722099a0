// Package rho computes the structural concentration invariant of a weighted
// directed influence matrix W (N×N, non-negative, N >= 2):
//
//	A   = max_j c_j / Σ_j c_j            authority, c_j = Σ_i w[i][j]
//	D   = mean_j H(p_·j) / ln N           diversity, p_ij = w[i][j] / (c_j + ε)
//	rho = A² · (1 − D)
//
// All three values lie in [0,1]. A matrix whose entire weight sits in one
// column has A = 1; equal column totals give A = 1/N. Uniform columns give
// D = 1; one-hot columns give D = 0.
//
// Degenerate inputs are absorbed rather than reported: an all-zero matrix has
// A = 0 and an all-zero column contributes zero entropy. Structural problems
// (nil, non-square, N < 2, NaN/Inf, negative weight) are validation errors
// carrying the matrix package sentinels.
//
// Authority is defined over column totals. Which direction a column stands
// for (outgoing from its node, or incoming to it) depends on how the caller
// laid out W; the package does not assume either. An Evaluator configured
// WithAxis(Rows) computes the same ratio over row totals for callers whose
// matrices are laid out the other way round.
//
// Evaluator binds the calibration (axis, entropy epsilon, critical rho) at
// construction; the package holds no mutable globals.
package rho
