package freqresp

import (
	"fmt"

	"github.com/tphakala/go-freqresp/internal/cmatrix"
)

// Feedback closes a feedback loop around f with other in the return path,
// computing (I + f*other)^-1 * f at each frequency sample through a linear
// solve rather than an explicit inverse. f's outputs must match other's
// inputs and vice versa. The operand is coerced onto f's frequency axis
// first.
//
// The sign argument selects positive or negative feedback in other system
// representations; this representation currently applies the negative
// feedback formula regardless of sign.
func (f *FRD) Feedback(other any, sign int) (*FRD, error) {
	_ = sign

	o, err := f.coerceFactor(other, f.outs)
	if err != nil {
		return nil, err
	}
	if f.outs != o.ins || f.ins != o.outs {
		return nil, fmt.Errorf("%w: %dx%d plant vs %dx%d feedback path",
			ErrDimensionMismatch, f.outs, f.ins, o.outs, o.ins)
	}

	axis := o.omega
	fSame := sameGrid(f.omega, axis)
	resp := NewTensor(f.outs, f.ins, len(axis))

	for k := range axis {
		a := respAt(f, axis, k, fSame)
		b := o.resp.Matrix(k)

		// I + A*B, the closed-loop coefficient matrix at this sample.
		loop := cmatrix.Mul(a, b)
		for d := 0; d < f.outs; d++ {
			loop.Set(d, d, loop.At(d, d)+1)
		}

		x, err := cmatrix.Solve(loop, a)
		if err != nil {
			return nil, fmt.Errorf("feedback at %g rad/s: %w", axis[k], err)
		}
		resp.SetMatrix(k, x)
	}
	return build(resp, axis), nil
}
