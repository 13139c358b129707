// Package cmatrix supplies the small amount of complex linear algebra the
// interconnection computations need: identity construction, a dense
// product and a dense linear solve. gonum's mat package provides complex
// matrix storage but no complex arithmetic or factorizations, so the
// product is a plain triple loop and the solve is Gaussian elimination
// with partial pivoting.
package cmatrix

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular indicates the coefficient matrix has no usable pivot and
// the system cannot be solved.
var ErrSingular = errors.New("cmatrix: matrix is singular")

// Eye returns the n x n complex identity matrix.
func Eye(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Mul returns the matrix product A*B. A's column count must equal B's
// row count; mismatched shapes panic, following the mat convention.
func Mul(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		panic("cmatrix: dimension mismatch in multiply")
	}

	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var s complex128
			for k := 0; k < ca; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// Solve returns X satisfying A*X = B using Gaussian elimination with
// partial pivoting. A must be square with as many rows as B. The inputs
// are not modified.
func Solve(a, b *mat.CDense) (*mat.CDense, error) {
	n, cA := a.Dims()
	rB, cB := b.Dims()
	if n != cA || n != rB {
		return nil, errors.New("cmatrix: dimension mismatch in solve")
	}

	// Augmented working copy [A|B], row-major.
	w := make([][]complex128, n)
	for i := 0; i < n; i++ {
		w[i] = make([]complex128, n+cB)
		for j := 0; j < n; j++ {
			w[i][j] = a.At(i, j)
		}
		for j := 0; j < cB; j++ {
			w[i][n+j] = b.At(i, j)
		}
	}

	for col := 0; col < n; col++ {
		// Partial pivot: largest magnitude entry in this column.
		pivot := col
		best := cmplx.Abs(w[col][col])
		for r := col + 1; r < n; r++ {
			if m := cmplx.Abs(w[r][col]); m > best {
				best = m
				pivot = r
			}
		}
		if best == 0 {
			return nil, ErrSingular
		}
		w[col], w[pivot] = w[pivot], w[col]

		inv := 1 / w[col][col]
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := w[r][col] * inv
			if factor == 0 {
				continue
			}
			for j := col; j < n+cB; j++ {
				w[r][j] -= factor * w[col][j]
			}
		}
	}

	x := mat.NewCDense(n, cB, nil)
	for i := 0; i < n; i++ {
		inv := 1 / w[i][i]
		for j := 0; j < cB; j++ {
			x.Set(i, j, w[i][n+j]*inv)
		}
	}
	return x, nil
}
