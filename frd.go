package freqresp

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/tphakala/go-freqresp/internal/curve"
)

// FRD holds sampled frequency response data: an ascending frequency axis
// in rad/s and the complex response tensor indexed [output, input, sample].
// A parametric spline curve per output/input pair is derived eagerly at
// construction, so the response can be evaluated at arbitrary frequencies.
//
// An FRD is immutable after construction. All operators return new
// instances, which makes FRD values safe to share between goroutines.
type FRD struct {
	omega  []float64
	resp   *Tensor
	curves []*curve.Curve // row-major per (output, input) pair
	outs   int
	ins    int
}

// FromData constructs an FRD from a response tensor and a matching
// frequency axis. The tensor's sample dimension must equal the axis
// length, and the axis must be strictly increasing. Both buffers are
// shared with the new model; callers must not mutate them afterwards.
func FromData(resp *Tensor, omega []float64) (*FRD, error) {
	if resp == nil || omega == nil {
		return nil, fmt.Errorf("%w: nil response data or frequency axis", ErrInvalidArguments)
	}
	outs, ins, n := resp.Dims()
	if n != len(omega) {
		return nil, fmt.Errorf("%w: %d response samples vs %d frequency points",
			ErrShapeMismatch, n, len(omega))
	}
	if err := checkAxis(omega); err != nil {
		return nil, err
	}

	f := &FRD{omega: omega, resp: resp, outs: outs, ins: ins}
	if err := f.buildCurves(); err != nil {
		return nil, err
	}
	return f, nil
}

// FromSamples constructs a SISO FRD from a 1-D sample vector and a
// matching frequency axis.
func FromSamples(samples []complex128, omega []float64) (*FRD, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: empty sample vector", ErrInvalidArguments)
	}
	return FromData(SISOTensor(samples), omega)
}

// FromSystem constructs an FRD by sampling the response of sys at each
// point of omega. The axis is copied and sorted ascending before
// sampling.
func FromSystem(sys System, omega []float64) (*FRD, error) {
	if sys == nil || len(omega) == 0 {
		return nil, fmt.Errorf("%w: nil system or empty frequency axis", ErrInvalidArguments)
	}

	w := make([]float64, len(omega))
	copy(w, omega)
	sort.Float64s(w)

	outs, ins := sys.Outputs(), sys.Inputs()
	resp := NewTensor(outs, ins, len(w))
	for k, wk := range w {
		resp.SetMatrix(k, sys.EvalFr(wk))
	}
	return FromData(resp, w)
}

// Copy returns a zero-copy view sharing the axis, tensor and curves of f.
// Safe because FRD exposes no mutation API.
func (f *FRD) Copy() *FRD {
	out := *f
	return &out
}

// Clone returns a deep copy of f with freshly derived curves.
func (f *FRD) Clone() *FRD {
	omega := make([]float64, len(f.omega))
	copy(omega, f.omega)

	out := &FRD{omega: omega, resp: f.resp.Clone(), outs: f.outs, ins: f.ins}
	if err := out.buildCurves(); err != nil {
		// The source model already carries a valid axis and tensor.
		panic("freqresp: clone of valid model failed: " + err.Error())
	}
	return out
}

// Inputs returns the number of system inputs.
func (f *FRD) Inputs() int { return f.ins }

// Outputs returns the number of system outputs.
func (f *FRD) Outputs() int { return f.outs }

// Omega returns the frequency axis. The returned slice is shared; callers
// must not modify it.
func (f *FRD) Omega() []float64 { return f.omega }

// Data returns the response tensor. The returned tensor is shared; callers
// must not modify it.
func (f *FRD) Data() *Tensor { return f.resp }

// SISO reports whether the model has exactly one input and one output.
func (f *FRD) SISO() bool { return f.outs == 1 && f.ins == 1 }

// buildCurves fits the per-pair parametric curves from the tensor and
// axis. Each sample is weighted by 1/(|h|+magWeightEps).
func (f *FRD) buildCurves() error {
	f.curves = make([]*curve.Curve, f.outs*f.ins)
	w := make([]float64, len(f.omega))
	for i := 0; i < f.outs; i++ {
		for j := 0; j < f.ins; j++ {
			pair := f.resp.Pair(i, j)
			for k, h := range pair {
				w[k] = 1 / (cmplx.Abs(h) + magWeightEps)
			}
			c, err := curve.Fit(f.omega, pair, w)
			if err != nil {
				return fmt.Errorf("fitting output %d input %d: %w", i, j, err)
			}
			f.curves[i*f.ins+j] = c
		}
	}
	return nil
}

// build constructs an FRD from parts already known to satisfy the
// construction invariants (validated axis, matching tensor). Operators use
// it for their results.
func build(resp *Tensor, omega []float64) *FRD {
	f, err := FromData(resp, omega)
	if err != nil {
		panic("freqresp: internal construction failed: " + err.Error())
	}
	return f
}

// checkAxis validates a frequency axis: non-empty, non-negative and
// strictly increasing.
func checkAxis(omega []float64) error {
	if len(omega) == 0 {
		return fmt.Errorf("%w: empty frequency axis", ErrInvalidArguments)
	}
	if omega[0] < 0 {
		return fmt.Errorf("%w: negative frequency %v", ErrInvalidArguments, omega[0])
	}
	for i := 1; i < len(omega); i++ {
		if omega[i] <= omega[i-1] {
			return fmt.Errorf("%w: omega[%d]=%v follows %v",
				ErrNonIncreasingAxis, i, omega[i], omega[i-1])
		}
	}
	return nil
}

// unity returns the SISO multiplicative identity on the given axis: a
// response of 1+0i at every frequency.
func unity(omega []float64) *FRD {
	ones := make([]complex128, len(omega))
	for i := range ones {
		ones[i] = 1
	}
	return build(SISOTensor(ones), omega)
}
