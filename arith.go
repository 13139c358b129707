package freqresp

import (
	"fmt"
	"math"

	"github.com/tphakala/go-freqresp/internal/cmatrix"
	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// Neg returns the element-wise negation of the response; the frequency
// axis is unchanged.
func (f *FRD) Neg() *FRD {
	resp := f.resp.Clone()
	cmplxs.Scale(-1, resp.data)
	return build(resp, f.omega)
}

// Add combines two models in parallel connection. The operand is coerced
// onto f's frequency axis via ToFRD; an FRD operand on a differing axis
// triggers a diagnostic notice and interpolation-based resampling onto the
// overlapping range. Operands must agree in input and output counts.
func (f *FRD) Add(other any) (*FRD, error) {
	o, err := f.coerceLike(other)
	if err != nil {
		return nil, err
	}
	return addParts(f, o, o.omega)
}

// Sub returns f - other, defined as f + (-other).
func (f *FRD) Sub(other any) (*FRD, error) {
	o, err := f.coerceLike(other)
	if err != nil {
		return nil, err
	}
	return addParts(f, o.Neg(), o.omega)
}

// SubFrom returns other - f, defined as (-f) + other.
func (f *FRD) SubFrom(other any) (*FRD, error) {
	o, err := f.coerceLike(other)
	if err != nil {
		return nil, err
	}
	return addParts(f.Neg(), o, o.omega)
}

// Mul combines two models in series connection: the result at each
// frequency sample is the complex matrix product of the operand response
// matrices at that sample. f's input count must equal the operand's
// output count. Scalar operands broadcast to an identity matrix scaled by
// the scalar, sized to match f's inputs.
func (f *FRD) Mul(other any) (*FRD, error) {
	o, err := f.coerceFactor(other, f.ins)
	if err != nil {
		return nil, err
	}
	return mulParts(f, o, o.omega)
}

// MulFrom returns other * f in series connection, with other coerced onto
// f's frequency axis. Scalar operands broadcast to an identity matrix
// scaled by the scalar, sized to match f's outputs.
func (f *FRD) MulFrom(other any) (*FRD, error) {
	o, err := f.coerceFactor(other, f.outs)
	if err != nil {
		return nil, err
	}
	return mulParts(o, f, o.omega)
}

// Div returns f / other. Division is defined for SISO operands only;
// MIMO division returns ErrNotImplemented.
func (f *FRD) Div(other any) (*FRD, error) {
	o, err := f.coerceFactor(other, f.ins)
	if err != nil {
		return nil, err
	}
	return divParts(f, o, o.omega)
}

// DivFrom returns other / f, with other coerced onto f's frequency axis.
// Division is defined for SISO operands only.
func (f *FRD) DivFrom(other any) (*FRD, error) {
	o, err := f.coerceFactor(other, f.outs)
	if err != nil {
		return nil, err
	}
	return divParts(o, f, o.omega)
}

// Pow raises a model to an integer power. A zero exponent yields the SISO
// multiplicative identity (response 1 at every sampled frequency),
// positive exponents repeat series connection, and negative exponents
// operate on the reciprocal (SISO only). Non-integer exponents return
// ErrInvalidExponent.
func (f *FRD) Pow(x float64) (*FRD, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidExponent, x)
	}

	switch n := int(x); {
	case n == 0:
		return unity(f.omega), nil
	case n > 0:
		rest, err := f.Pow(x - 1)
		if err != nil {
			return nil, err
		}
		return f.Mul(rest)
	default:
		recip, err := unity(f.omega).Div(f)
		if err != nil {
			return nil, err
		}
		rest, err := f.Pow(x + 1)
		if err != nil {
			return nil, err
		}
		return recip.Mul(rest)
	}
}

// coerceLike reconciles an additive operand: FRD operands on differing
// axes are flagged and resampled, scalars broadcast to f's full shape.
func (f *FRD) coerceLike(other any) (*FRD, error) {
	if o, ok := other.(*FRD); ok && !sameGrid(o.omega, f.omega) {
		warnf("frequency points do not match; expect truncation and interpolation")
	}
	return ToFRD(other, f.omega, f.outs, f.ins)
}

// coerceFactor reconciles a multiplicative operand: scalars become an
// identity matrix scaled by the scalar with the given square size, other
// operands go through the standard coercion.
func (f *FRD) coerceFactor(other any, size int) (*FRD, error) {
	if s, ok := scalarOf(other); ok {
		resp := NewTensor(size, size, len(f.omega))
		for d := 0; d < size; d++ {
			pair := resp.Pair(d, d)
			for k := range pair {
				pair[k] = s
			}
		}
		return build(resp, f.omega), nil
	}
	if o, ok := other.(*FRD); ok && !sameGrid(o.omega, f.omega) {
		warnf("frequency points do not match; expect truncation and interpolation")
	}
	return ToFRD(other, f.omega, 1, 1)
}

// respAt returns the response matrix of x at axis[k]: directly from the
// sample store when x lives on the same axis, through the interpolation
// curves otherwise.
func respAt(x *FRD, axis []float64, k int, same bool) *mat.CDense {
	if same {
		return x.resp.Matrix(k)
	}
	return x.EvalFr(axis[k])
}

// addParts sums two models element-wise on the reconciled axis.
func addParts(a, b *FRD, axis []float64) (*FRD, error) {
	if a.ins != b.ins || a.outs != b.outs {
		return nil, fmt.Errorf("%w: %dx%d summand vs %dx%d summand",
			ErrDimensionMismatch, a.outs, a.ins, b.outs, b.ins)
	}

	aSame := sameGrid(a.omega, axis)
	bSame := sameGrid(b.omega, axis)
	if aSame && bSame {
		resp := NewTensor(a.outs, a.ins, len(axis))
		cmplxs.AddTo(resp.data, a.resp.data, b.resp.data)
		return build(resp, axis), nil
	}

	resp := NewTensor(a.outs, a.ins, len(axis))
	for k := range axis {
		am := respAt(a, axis, k, aSame)
		bm := respAt(b, axis, k, bSame)
		for i := 0; i < a.outs; i++ {
			for j := 0; j < a.ins; j++ {
				resp.Set(i, j, k, am.At(i, j)+bm.At(i, j))
			}
		}
	}
	return build(resp, axis), nil
}

// mulParts cascades a and b on the reconciled axis, computing the complex
// matrix product at each frequency sample.
func mulParts(a, b *FRD, axis []float64) (*FRD, error) {
	if a.ins != b.outs {
		return nil, fmt.Errorf("%w: left operand has %d input(s), right operand has %d output(s)",
			ErrDimensionMismatch, a.ins, b.outs)
	}

	aSame := sameGrid(a.omega, axis)
	bSame := sameGrid(b.omega, axis)
	resp := NewTensor(a.outs, b.ins, len(axis))

	if aSame && bSame && a.SISO() && b.SISO() {
		c128.Mul(resp.Pair(0, 0), a.resp.Pair(0, 0), b.resp.Pair(0, 0))
		return build(resp, axis), nil
	}

	for k := range axis {
		am := respAt(a, axis, k, aSame)
		bm := respAt(b, axis, k, bSame)
		resp.SetMatrix(k, cmatrix.Mul(am, bm))
	}
	return build(resp, axis), nil
}

// divParts divides a by b sample-wise on the reconciled axis. Defined for
// SISO operands only.
func divParts(a, b *FRD, axis []float64) (*FRD, error) {
	if !a.SISO() || !b.SISO() {
		return nil, fmt.Errorf("%w: division requires SISO operands, got %dx%d and %dx%d",
			ErrNotImplemented, a.outs, a.ins, b.outs, b.ins)
	}

	aSame := sameGrid(a.omega, axis)
	bSame := sameGrid(b.omega, axis)
	resp := NewTensor(1, 1, len(axis))

	if aSame && bSame {
		cmplxs.DivTo(resp.data, a.resp.data, b.resp.data)
		return build(resp, axis), nil
	}

	// The reconciled axis can be longer than an operand's own axis, so
	// direct sample indexing is only valid for an operand on that axis.
	pair := resp.Pair(0, 0)
	for k, w := range axis {
		num := a.EvalAt(0, 0, w)
		if aSame {
			num = a.resp.At(0, 0, k)
		}
		den := b.EvalAt(0, 0, w)
		if bSame {
			den = b.resp.At(0, 0, k)
		}
		pair[k] = num / den
	}
	return build(resp, axis), nil
}
