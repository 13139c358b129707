package freqresp

import "gonum.org/v1/gonum/mat"

// System is the contract shared by all linear system representations that
// can be sampled into frequency response data. EvalFr evaluates the
// response matrix at s = j*omega for a real angular frequency omega in
// rad/s.
type System interface {
	Inputs() int
	Outputs() int
	EvalFr(omega float64) *mat.CDense
}

// StaticGain is a frequency-independent System wrapping a constant complex
// gain matrix. It is the simplest System implementation and is used to
// model pure gain blocks in interconnections.
type StaticGain struct {
	gain *mat.CDense
}

// NewStaticGain returns a static gain system over the given matrix.
// The matrix is shared, not copied.
func NewStaticGain(gain *mat.CDense) *StaticGain {
	return &StaticGain{gain: gain}
}

// Inputs returns the number of system inputs.
func (g *StaticGain) Inputs() int {
	_, c := g.gain.Dims()
	return c
}

// Outputs returns the number of system outputs.
func (g *StaticGain) Outputs() int {
	r, _ := g.gain.Dims()
	return r
}

// EvalFr returns the gain matrix; a static gain has no frequency
// dependence.
func (g *StaticGain) EvalFr(omega float64) *mat.CDense {
	r, c := g.gain.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, g.gain.At(i, j))
		}
	}
	return out
}
