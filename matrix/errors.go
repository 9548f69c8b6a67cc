// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ". Algorithms wrap these with
// the operation name; callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when no usable pivot exists in a column.
	ErrSingular = errors.New("matrix: singular matrix")
)

// operation tags used in error wrappers
const (
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opMatVec       = "MatVec"
	opLU           = "LU"
	opSolve        = "Solve"
	opLeastSquares = "LeastSquares"
)

func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
