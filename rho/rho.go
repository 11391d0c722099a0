// SPDX-License-Identifier: MIT

package rho

import (
	"fmt"

	"github.com/katalvlaran/rholaw/matrix"
)

// GraphRhoResult is the snapshot of one matrix evaluation.
// A, D and Rho all lie in [0,1] and Rho == A*A*(1-D).
type GraphRhoResult struct {
	A   float64 `json:"authority" yaml:"authority"`
	D   float64 `json:"diversity" yaml:"diversity"`
	Rho float64 `json:"rho" yaml:"rho"`
}

// String renders the triple with fixed precision for logs and tables.
func (r GraphRhoResult) String() string {
	return fmt.Sprintf("A=%.4f D=%.4f rho=%.4f", r.A, r.D, r.Rho)
}

// Rho composes authority and diversity: A² · (1 − D).
// For A, D in [0,1] the result is in [0,1].
func Rho(a, d float64) float64 {
	return a * a * (1.0 - d)
}

// Evaluate computes A, D and rho for W with the default calibration
// (column authority, DefaultEpsilon).
func Evaluate(W matrix.Matrix) (GraphRhoResult, error) {
	return defaultEvaluator.Evaluate(W)
}
