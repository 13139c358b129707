// Package testutil provides reusable test helper functions for frequency
// response tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	FitTolerance     = 1e-9
	SweepTolerance   = 1e-8
)

// AssertCInDelta verifies two complex values agree within tolerance in
// absolute distance.
func AssertCInDelta(t *testing.T, expected, actual complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	d := cmplx.Abs(expected - actual)
	if d > tolerance {
		return assert.Fail(t, "complex values differ",
			"expected %v, got %v (|diff|=%g > %g)", expected, actual, d, tolerance)
	}
	return true
}

// AssertCSliceInDelta verifies two complex slices agree element-wise
// within tolerance.
func AssertCSliceInDelta(t *testing.T, expected, actual []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		d := cmplx.Abs(expected[i] - actual[i])
		if d > tolerance {
			return assert.Fail(t, "complex slices differ",
				"index %d: expected %v, got %v (|diff|=%g > %g)",
				i, expected[i], actual[i], d, tolerance)
		}
	}
	return true
}

// AssertCMatrixInDelta verifies two complex matrices agree entry-wise
// within tolerance.
func AssertCMatrixInDelta(t *testing.T, expected, actual mat.CMatrix, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	er, ec := expected.Dims()
	ar, ac := actual.Dims()
	if er != ar || ec != ac {
		return assert.Fail(t, "matrix dimensions differ",
			"expected %dx%d, got %dx%d", er, ec, ar, ac)
	}
	for i := 0; i < er; i++ {
		for j := 0; j < ec; j++ {
			d := cmplx.Abs(expected.At(i, j) - actual.At(i, j))
			if d > tolerance {
				return assert.Fail(t, "matrices differ",
					"entry (%d,%d): expected %v, got %v (|diff|=%g > %g)",
					i, j, expected.At(i, j), actual.At(i, j), d, tolerance)
			}
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAscending verifies that a slice is strictly increasing.
func AssertAscending(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "slice not strictly increasing",
				"s[%d]=%v follows s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	return true
}
