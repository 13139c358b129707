package freqresp

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ToFRD coerces v into a frequency response model on the target axis
// omega. It is the single entry point the algebraic operators use to
// reconcile operands.
//
// Accepted operand types:
//   - *FRD: returned unchanged when its axis matches omega within
//     tolerance; otherwise resampled onto the overlap of the two axes via
//     its interpolation curves. Axes with no overlapping range yield
//     ErrNoOverlap.
//   - System: sampled at each point of omega.
//   - real or complex scalars (int, float32, float64, complex64,
//     complex128): expanded to a constant outputs x inputs response.
//   - *mat.CDense, *mat.Dense, [][]complex128, [][]float64: the matrix
//     replicated across every frequency sample; outputs and inputs are
//     taken from the matrix shape.
//
// Anything else yields ErrUnsupportedConversion naming the type.
func ToFRD(v any, omega []float64, outputs, inputs int) (*FRD, error) {
	switch x := v.(type) {
	case *FRD:
		return resampleOnto(x, omega)
	case System:
		return FromSystem(x, omega)
	default:
	}

	if s, ok := scalarOf(v); ok {
		resp := NewTensor(outputs, inputs, len(omega))
		for i := 0; i < outputs; i++ {
			for j := 0; j < inputs; j++ {
				pair := resp.Pair(i, j)
				for k := range pair {
					pair[k] = s
				}
			}
		}
		return FromData(resp, sortedCopy(omega))
	}

	if m, ok := matrixOf(v); ok {
		rows, cols := m.Dims()
		resp := NewTensor(rows, cols, len(omega))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				pair := resp.Pair(i, j)
				for k := range pair {
					pair[k] = m.At(i, j)
				}
			}
		}
		return FromData(resp, sortedCopy(omega))
	}

	return nil, fmt.Errorf("%w: cannot convert %T", ErrUnsupportedConversion, v)
}

// resampleOnto reconciles an existing model with a target axis. A
// matching axis returns the model unchanged. Otherwise the target axis is
// intersected with the model's sampled range, padded with the model's
// extreme frequencies when the target extends beyond them, and the model
// is re-evaluated on the reconciled axis.
func resampleOnto(f *FRD, omega []float64) (*FRD, error) {
	w := sortedCopy(omega)
	if sameGrid(w, f.omega) {
		return f, nil
	}

	lo, hi := f.omega[0], f.omega[len(f.omega)-1]
	keep := w[:0]
	for _, wk := range w {
		if wk >= lo && wk <= hi {
			keep = append(keep, wk)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("%w: [%g, %g] rad/s outside sampled range [%g, %g]",
			ErrNoOverlap, w[0], w[len(w)-1], lo, hi)
	}

	if keep[0]-lo > epsw {
		keep = append([]float64{lo}, keep...)
	}
	if hi-keep[len(keep)-1] > epsw {
		keep = append(keep, hi)
	}
	warnf("adjusting frequency range to [%g, %g] rad/s (%d points)",
		keep[0], keep[len(keep)-1], len(keep))

	resp := NewTensor(f.outs, f.ins, len(keep))
	for k, wk := range keep {
		resp.SetMatrix(k, f.EvalFr(wk))
	}
	return FromData(resp, keep)
}

// scalarOf extracts a complex scalar from supported numeric types.
func scalarOf(v any) (complex128, bool) {
	switch x := v.(type) {
	case complex128:
		return x, true
	case complex64:
		return complex128(x), true
	case float64:
		return complex(x, 0), true
	case float32:
		return complex(float64(x), 0), true
	case int:
		return complex(float64(x), 0), true
	default:
		return 0, false
	}
}

// matrixOf extracts a complex matrix from supported matrix types.
func matrixOf(v any) (*mat.CDense, bool) {
	switch x := v.(type) {
	case *mat.CDense:
		return x, true
	case *mat.Dense:
		rows, cols := x.Dims()
		m := mat.NewCDense(rows, cols, nil)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				m.Set(i, j, complex(x.At(i, j), 0))
			}
		}
		return m, true
	case [][]complex128:
		if m := cdenseFromRows(x, func(v complex128) complex128 { return v }); m != nil {
			return m, true
		}
		return nil, false
	case [][]float64:
		if m := cdenseFromRows(x, func(v float64) complex128 { return complex(v, 0) }); m != nil {
			return m, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// cdenseFromRows packs rectangular row slices into a CDense. Ragged or
// empty input returns nil.
func cdenseFromRows[T any](rows [][]T, conv func(T) complex128) *mat.CDense {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	cols := len(rows[0])
	m := mat.NewCDense(len(rows), cols, nil)
	for i, row := range rows {
		if len(row) != cols {
			return nil
		}
		for j, v := range row {
			m.Set(i, j, conv(v))
		}
	}
	return m
}

// sortedCopy returns an ascending copy of omega, leaving the caller's
// slice untouched.
func sortedCopy(omega []float64) []float64 {
	w := make([]float64, len(omega))
	copy(w, omega)
	sort.Float64s(w)
	return w
}
