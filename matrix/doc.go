// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra kit for curve fitting.
//
// What
//
//   - Dense: a row-major r×c float64 matrix with bounds-checked At/Set.
//   - Mul, Transpose, MatVec: the products needed to build normal equations.
//   - LU: Doolittle decomposition with partial (row) pivoting, P·A = L·U.
//   - Solve: A·x = b through LU with forward and back substitution.
//   - LeastSquares: min‖A·x − b‖² via the normal equations AᵀA·x = Aᵀb, with
//     an optional ridge term used as the Levenberg–Marquardt damping.
//
// Determinism
//
//	Fixed loop orders and no map iteration; the first row with the largest
//	absolute pivot wins ties, so results are bit-for-bit reproducible.
//
// Errors
//
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrOutOfRange for bad indices.
//   - ErrDimensionMismatch for incompatible operands.
//   - ErrNonSquare when LU/Solve get a rectangular matrix.
//   - ErrSingular when a pivot is below the singularity threshold.
//
// Complexity
//
//   - LU, Solve: O(n³) time, O(n²) space.
//   - LeastSquares on an m×n design: O(m·n² + n³).
package matrix
