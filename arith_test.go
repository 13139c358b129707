package freqresp

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-freqresp/internal/testutil"
)

var axis123 = []float64{1, 2, 3}

// captureWarnings redirects diagnostic notices to a buffer for the
// duration of a test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetWarnWriter(&buf)
	t.Cleanup(func() { SetWarnWriter(nil) })
	return &buf
}

func TestNegCancelsAgainstAdd(t *testing.T) {
	f := firstOrderFRD(t, []float64{0.5, 1, 4, 12})

	sum, err := f.Add(f.Neg())
	require.NoError(t, err)

	for k := range sum.Omega() {
		testutil.AssertCInDelta(t, 0, sum.Data().At(0, 0, k), testutil.DefaultTolerance)
	}
}

func TestConstantAlgebra(t *testing.T) {
	a := constFRD(t, 2, axis123)
	b := constFRD(t, 4, axis123)

	tests := []struct {
		name string
		op   func() (*FRD, error)
		want complex128
	}{
		{"add", func() (*FRD, error) { return a.Add(b) }, 6},
		{"sub", func() (*FRD, error) { return a.Sub(b) }, -2},
		{"sub from", func() (*FRD, error) { return a.SubFrom(b) }, 2},
		{"mul", func() (*FRD, error) { return a.Mul(b) }, 8},
		{"mul from", func() (*FRD, error) { return a.MulFrom(b) }, 8},
		{"div", func() (*FRD, error) { return a.Div(b) }, 0.5},
		{"div from", func() (*FRD, error) { return a.DivFrom(8.0) }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			require.NoError(t, err)
			require.Equal(t, axis123, got.Omega())
			for k := range axis123 {
				testutil.AssertCInDelta(t, tt.want, got.Data().At(0, 0, k), testutil.DefaultTolerance)
			}
		})
	}
}

func TestScalarOperands(t *testing.T) {
	f := firstOrderFRD(t, axis123)

	t.Run("add broadcasts to full shape", func(t *testing.T) {
		got, err := f.Add(3.0)
		require.NoError(t, err)
		for k := range axis123 {
			want := f.Data().At(0, 0, k) + 3
			testutil.AssertCInDelta(t, want, got.Data().At(0, 0, k), testutil.DefaultTolerance)
		}
	})

	t.Run("mul by one is identity", func(t *testing.T) {
		got, err := f.Mul(1.0)
		require.NoError(t, err)
		testutil.AssertCSliceInDelta(t, f.Data().Pair(0, 0), got.Data().Pair(0, 0), 0)
	})

	t.Run("mul from scales", func(t *testing.T) {
		got, err := f.MulFrom(2i)
		require.NoError(t, err)
		for k := range axis123 {
			want := 2i * f.Data().At(0, 0, k)
			testutil.AssertCInDelta(t, want, got.Data().At(0, 0, k), testutil.DefaultTolerance)
		}
	})
}

func TestMulMIMOMatrixProduct(t *testing.T) {
	// Constant 2x2 responses with a known matrix product.
	a := NewTensor(2, 2, len(axis123))
	b := NewTensor(2, 2, len(axis123))
	for k := range axis123 {
		a.SetMatrix(k, cmat2x2(1, 2, 3, 4))
		b.SetMatrix(k, cmat2x2(0, 1i, 1, 0))
	}
	fa, err := FromData(a, axis123)
	require.NoError(t, err)
	fb, err := FromData(b, axis123)
	require.NoError(t, err)

	got, err := fa.Mul(fb)
	require.NoError(t, err)

	want := cmat2x2(2, 1i, 4, 3i)
	for k := range axis123 {
		testutil.AssertCMatrixInDelta(t, want, got.Data().Matrix(k), testutil.DefaultTolerance)
	}
}

func TestDimensionMismatches(t *testing.T) {
	siso := constFRD(t, 1, axis123)
	mimo, err := FromData(NewTensor(2, 2, len(axis123)), axis123)
	require.NoError(t, err)

	_, err = siso.Add(mimo)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = mimo.Mul(siso)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = mimo.Div(2.0)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestAddDisjointAxes(t *testing.T) {
	captureWarnings(t)
	a := constFRD(t, 2, axis123)
	b := constFRD(t, 4, []float64{10, 20, 30})

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrNoOverlap)
}

func TestAddOverlappingAxes(t *testing.T) {
	buf := captureWarnings(t)
	a := constFRD(t, 2, []float64{1, 2, 3, 4})
	b := constFRD(t, 4, []float64{2, 3, 4, 5})

	sum, err := a.Add(b)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "frequency points do not match")
	testutil.AssertAscending(t, sum.Omega())
	assert.GreaterOrEqual(t, sum.Omega()[0], 2.0)
	for k := range sum.Omega() {
		testutil.AssertCInDelta(t, 6, sum.Data().At(0, 0, k), testutil.FitTolerance)
	}
}

// TestDivPaddedReconciledAxis divides operands whose reconciled axis is
// longer than the receiver's own axis, which forces interpolated
// evaluation instead of direct sample indexing.
func TestDivPaddedReconciledAxis(t *testing.T) {
	captureWarnings(t)
	a := constFRD(t, 2, []float64{1, 2, 3, 4})
	b := constFRD(t, 4, []float64{0.5, 2, 5})

	q, err := a.Div(b)
	require.NoError(t, err)

	// The operand's endpoints pad the axis beyond a's sample count.
	assert.Greater(t, len(q.Omega()), len(a.Omega()))
	for k := range q.Omega() {
		testutil.AssertCInDelta(t, 0.5, q.Data().At(0, 0, k), testutil.FitTolerance)
	}
}

func TestPow(t *testing.T) {
	omega := []float64{0.5, 1, 4, 12}
	f := firstOrderFRD(t, omega)

	t.Run("zero exponent is unity", func(t *testing.T) {
		got, err := f.Pow(0)
		require.NoError(t, err)
		for k := range omega {
			testutil.AssertCInDelta(t, 1, got.Data().At(0, 0, k), testutil.DefaultTolerance)
		}
	})

	t.Run("square matches element-wise product", func(t *testing.T) {
		got, err := f.Pow(2)
		require.NoError(t, err)
		for k := range omega {
			h := f.Data().At(0, 0, k)
			testutil.AssertCInDelta(t, h*h, got.Data().At(0, 0, k), testutil.DefaultTolerance)
		}
	})

	t.Run("negative exponent is reciprocal", func(t *testing.T) {
		got, err := f.Pow(-1)
		require.NoError(t, err)
		for k := range omega {
			h := f.Data().At(0, 0, k)
			testutil.AssertCInDelta(t, 1/h, got.Data().At(0, 0, k), testutil.DefaultTolerance)
		}
	})

	t.Run("non-integer exponent", func(t *testing.T) {
		_, err := f.Pow(1.5)
		assert.ErrorIs(t, err, ErrInvalidExponent)
	})

	t.Run("NaN exponent", func(t *testing.T) {
		_, err := f.Pow(math.NaN())
		assert.ErrorIs(t, err, ErrInvalidExponent)
	})
}
