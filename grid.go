package freqresp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogGrid returns n logarithmically spaced frequencies from wmin to wmax
// inclusive, for Bode-style sweeps. wmin must be positive and less than
// wmax, and n must be at least 2; otherwise LogGrid returns nil.
func LogGrid(wmin, wmax float64, n int) []float64 {
	if wmin <= 0 || wmax <= wmin || n < 2 {
		return nil
	}
	return floats.LogSpan(make([]float64, n), wmin, wmax)
}

// LinGrid returns n linearly spaced frequencies from wmin to wmax
// inclusive. wmin must be non-negative and less than wmax, and n must be
// at least 2; otherwise LinGrid returns nil.
func LinGrid(wmin, wmax float64, n int) []float64 {
	if wmin < 0 || wmax <= wmin || n < 2 {
		return nil
	}
	return floats.Span(make([]float64, n), wmin, wmax)
}

// sameGrid reports whether two axes match element-wise within epsw.
func sameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) >= epsw {
			return false
		}
	}
	return true
}
