// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported constructors to package matrix_test only.
// The _test.go suffix keeps it out of production builds.

// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests
// that need NaN/Inf cells (validators, numeric guards).
var ExportedNewDenseWithPolicy = newDenseWithPolicy
