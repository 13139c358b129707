package freqresp

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// EvalFr evaluates the response matrix at s = j*omega by evaluating each
// pair's spline curve. Frequencies within the sampled range reproduce the
// stored samples exactly at the sample points; frequencies outside the
// range are extrapolated and lose accuracy with distance.
func (f *FRD) EvalFr(omega float64) *mat.CDense {
	out := mat.NewCDense(f.outs, f.ins, nil)
	for i := 0; i < f.outs; i++ {
		for j := 0; j < f.ins; j++ {
			out.Set(i, j, f.curves[i*f.ins+j].Eval(omega))
		}
	}
	return out
}

// EvalAt evaluates the response of a single output/input pair at omega.
func (f *FRD) EvalAt(i, j int, omega float64) complex128 {
	return f.curves[i*f.ins+j].Eval(omega)
}

// Magnitude returns |H_ij(j*omega)|.
func (f *FRD) Magnitude(i, j int, omega float64) float64 {
	return cmplx.Abs(f.EvalAt(i, j, omega))
}

// MagnitudeDB returns 20*log10(|H_ij(j*omega)|).
func (f *FRD) MagnitudeDB(i, j int, omega float64) float64 {
	return 20 * math.Log10(f.Magnitude(i, j, omega))
}

// Phase returns the principal-value phase of H_ij(j*omega) in radians.
func (f *FRD) Phase(i, j int, omega float64) float64 {
	return cmplx.Phase(f.EvalAt(i, j, omega))
}

// FreqResp evaluates the response over a frequency sweep. It sorts omega
// ascending in place (the caller's slice is modified), evaluates the full
// matrix at each point, and returns magnitude and phase tensors shaped
// [output][input][sample] along with the sorted axis. Phase is the
// principal value in radians.
func (f *FRD) FreqResp(omega []float64) (magnitude, phase [][][]float64, sorted []float64) {
	sort.Float64s(omega)

	magnitude = make([][][]float64, f.outs)
	phase = make([][][]float64, f.outs)
	for i := range magnitude {
		magnitude[i] = make([][]float64, f.ins)
		phase[i] = make([][]float64, f.ins)
		for j := range magnitude[i] {
			magnitude[i][j] = make([]float64, len(omega))
			phase[i][j] = make([]float64, len(omega))
		}
	}

	for k, w := range omega {
		h := f.EvalFr(w)
		for i := 0; i < f.outs; i++ {
			for j := 0; j < f.ins; j++ {
				magnitude[i][j][k] = cmplx.Abs(h.At(i, j))
				phase[i][j][k] = cmplx.Phase(h.At(i, j))
			}
		}
	}
	return magnitude, phase, omega
}
