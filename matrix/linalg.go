// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Mul returns a·b.
//
// Errors:
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, _ := NewDense(a.r, b.c)
	// i-k-j order keeps the inner loop on contiguous rows of b and out.
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// MatVec returns m·x.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != m.Cols().
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var sum float64
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// LUDecomposition holds P·A = L·U packed in one buffer: U on and above the
// diagonal, L (unit diagonal implied) below it. Perm[i] is the source row of
// row i.
type LUDecomposition struct {
	n    int
	lu   []float64
	Perm []int
}

// LU factors a square matrix with partial pivoting.
//
// Implementation:
//   - Stage 1: copy A; Perm = identity.
//   - Stage 2: for each column k pick the row with the largest |a[i][k]|
//     (i ≥ k), swap it up, then eliminate below the pivot storing the
//     multipliers in place.
//
// Errors:
//   - ErrNonSquare for rectangular input.
//   - ErrSingular when the best pivot magnitude is below SingularEps.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(a *Dense) (*LUDecomposition, error) {
	if a.r != a.c {
		return nil, matrixErrorf(opLU, ErrNonSquare)
	}
	n := a.r
	d := &LUDecomposition{n: n, lu: make([]float64, len(a.data)), Perm: make([]int, n)}
	copy(d.lu, a.data)
	for i := range d.Perm {
		d.Perm[i] = i
	}

	for k := 0; k < n; k++ {
		p := k
		best := math.Abs(d.lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(d.lu[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best < SingularEps {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j := 0; j < n; j++ {
				d.lu[k*n+j], d.lu[p*n+j] = d.lu[p*n+j], d.lu[k*n+j]
			}
			d.Perm[k], d.Perm[p] = d.Perm[p], d.Perm[k]
		}
		pivot := d.lu[k*n+k]
		for i := k + 1; i < n; i++ {
			f := d.lu[i*n+k] / pivot
			d.lu[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				d.lu[i*n+j] -= f * d.lu[k*n+j]
			}
		}
	}

	return d, nil
}

// L returns the unit lower-triangular factor.
func (d *LUDecomposition) L() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i := 0; i < d.n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*d.n+j] = d.lu[i*d.n+j]
		}
		out.data[i*d.n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor.
func (d *LUDecomposition) U() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			out.data[i*d.n+j] = d.lu[i*d.n+j]
		}
	}

	return out
}

// Solve returns x with A·x = b for the factored A.
func (d *LUDecomposition) Solve(b []float64) ([]float64, error) {
	if len(b) != d.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	n := d.n
	x := make([]float64, n)
	// forward substitution on P·b with unit L
	for i := 0; i < n; i++ {
		sum := b[d.Perm[i]]
		for j := 0; j < i; j++ {
			sum -= d.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// back substitution with U
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum -= d.lu[i*n+j] * x[j]
		}
		x[i] = sum / d.lu[i*n+i]
	}

	return x, nil
}

// Solve returns x with a·x = b.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrSingular.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if a.r != len(b) {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	d, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return d.Solve(b)
}

// LeastSquares minimizes ‖a·x − b‖² + ridge·‖D·x‖², where D is the diagonal of
// aᵀa. ridge = 0 gives the plain normal-equation solution; a positive ridge
// is the Levenberg–Marquardt damped step.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != a.Rows().
//   - ErrSingular when the (damped) normal matrix has no usable pivot.
func LeastSquares(a *Dense, b []float64, ridge float64) ([]float64, error) {
	if len(b) != a.r {
		return nil, matrixErrorf(opLeastSquares, ErrDimensionMismatch)
	}
	at := Transpose(a)
	ata, err := Mul(at, a)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	atb, err := MatVec(at, b)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if ridge > 0 {
		n := ata.r
		for i := 0; i < n; i++ {
			ata.data[i*n+i] *= 1 + ridge
		}
	}
	x, err := Solve(ata, atb)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	return x, nil
}
