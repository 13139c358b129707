package freqresp

import (
	"gonum.org/v1/gonum/mat"
)

// Tensor is a complex response tensor indexed [output, input, sample].
// Storage is a single flat slice with the sample vector of each
// (output, input) pair held contiguously, so per-pair slices can be
// handed to slice-based kernels without copying.
type Tensor struct {
	outs, ins, n int
	data         []complex128
}

// NewTensor returns a zero-filled tensor with the given dimensions.
// All dimensions must be positive.
func NewTensor(outputs, inputs, samples int) *Tensor {
	if outputs < 1 || inputs < 1 || samples < 1 {
		return nil
	}
	return &Tensor{
		outs: outputs,
		ins:  inputs,
		n:    samples,
		data: make([]complex128, outputs*inputs*samples),
	}
}

// SISOTensor wraps a 1-D sample vector as a 1x1xN tensor. The slice is
// shared, not copied.
func SISOTensor(samples []complex128) *Tensor {
	if len(samples) == 0 {
		return nil
	}
	return &Tensor{outs: 1, ins: 1, n: len(samples), data: samples}
}

// Dims returns the (outputs, inputs, samples) dimensions.
func (t *Tensor) Dims() (outputs, inputs, samples int) {
	return t.outs, t.ins, t.n
}

// At returns the response of output i to input j at sample index k.
func (t *Tensor) At(i, j, k int) complex128 {
	return t.data[(i*t.ins+j)*t.n+k]
}

// Set stores the response of output i to input j at sample index k.
func (t *Tensor) Set(i, j, k int, v complex128) {
	t.data[(i*t.ins+j)*t.n+k] = v
}

// Pair returns the sample vector of the (i, j) output/input pair as a
// shared sub-slice of the tensor storage.
func (t *Tensor) Pair(i, j int) []complex128 {
	off := (i*t.ins + j) * t.n
	return t.data[off : off+t.n : off+t.n]
}

// Matrix returns the outputs x inputs response matrix at sample index k.
func (t *Tensor) Matrix(k int) *mat.CDense {
	m := mat.NewCDense(t.outs, t.ins, nil)
	for i := 0; i < t.outs; i++ {
		for j := 0; j < t.ins; j++ {
			m.Set(i, j, t.At(i, j, k))
		}
	}
	return m
}

// SetMatrix stores an outputs x inputs response matrix at sample index k.
func (t *Tensor) SetMatrix(k int, m mat.CMatrix) {
	for i := 0; i < t.outs; i++ {
		for j := 0; j < t.ins; j++ {
			t.Set(i, j, k, m.At(i, j))
		}
	}
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{
		outs: t.outs,
		ins:  t.ins,
		n:    t.n,
		data: make([]complex128, len(t.data)),
	}
	copy(out.data, t.data)
	return out
}
