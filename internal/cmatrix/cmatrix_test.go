package cmatrix

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEye(t *testing.T) {
	m := Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

func TestMulKnownProduct(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		1 + 0i, 2 + 0i,
		0 + 1i, 1 - 1i,
	})
	b := mat.NewCDense(2, 2, []complex128{
		0 + 0i, 1 + 0i,
		1 + 0i, 0 + 1i,
	})

	got := Mul(a, b)

	want := []complex128{
		2 + 0i, 1 + 2i,
		1 - 1i, 1 + 2i,
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, want[i*2+j], got.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

func TestMulRectangular(t *testing.T) {
	a := mat.NewCDense(1, 3, []complex128{1, 2i, 3})
	b := mat.NewCDense(3, 1, []complex128{1, 1, 1i})

	got := Mul(a, b)

	r, c := got.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 1+5i, got.At(0, 0))
}

func TestMulDimensionMismatchPanics(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	b := mat.NewCDense(2, 2, nil)

	assert.Panics(t, func() { Mul(a, b) })
}

// TestSolveKnownSystem solves a 2x2 complex system and verifies A*X
// reproduces B.
func TestSolveKnownSystem(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		2 + 1i, 1 - 1i,
		0 + 3i, 4 + 0i,
	})
	b := mat.NewCDense(2, 1, []complex128{
		1 + 0i,
		2 - 2i,
	})

	x, err := Solve(a, b)
	require.NoError(t, err)

	check := Mul(a, x)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, 0, cmplx.Abs(check.At(i, 0)-b.At(i, 0)), 1e-12, "row %d", i)
	}
}

// TestSolveIdentityRHS verifies solving against the identity inverts A.
func TestSolveIdentityRHS(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		1 + 0i, 2 + 0i,
		3 + 0i, 4 + 0i,
	})

	inv, err := Solve(a, Eye(2))
	require.NoError(t, err)

	prod := Mul(a, inv)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, 0, cmplx.Abs(prod.At(i, j)-want), 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

func TestSolveSingular(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		1, 2,
		2, 4,
	})

	_, err := Solve(a, Eye(2))
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSolveDimensionMismatch(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	b := mat.NewCDense(2, 2, nil)

	_, err := Solve(a, b)
	assert.Error(t, err)
}

// TestSolveRequiresPivoting uses a system whose leading pivot is zero.
func TestSolveRequiresPivoting(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
	b := mat.NewCDense(2, 1, []complex128{3 + 1i, 5 - 2i})

	x, err := Solve(a, b)
	require.NoError(t, err)

	assert.Equal(t, 5-2i, x.At(0, 0))
	assert.Equal(t, 3+1i, x.At(1, 0))
}
