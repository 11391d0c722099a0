// Package matrix provides the dense storage and the small set of numeric
// kernels shared by the rho, builder and trustsim packages.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateMinSize and the
//     composite ValidateWeights used for influence (weight) matrices.
//   - Reductions: ColumnSums and RowSums in a fixed i→j traversal.
//   - Transforms: NormalizeColumns (in-place column L1 normalization with an
//     epsilon guard), Clamp (in-place range clamp), FillOffDiagonal.
//
// All loops run in a fixed order so repeated calls on identical input
// produce bit-identical output. In-place variants exist for hot loops that
// reuse preallocated buffers across iterations.
package matrix
