// Package curve fits parametric spline curves through complex frequency
// response samples. Each curve tracks the real and imaginary parts of one
// output/input pair as two cubic splines parameterized by angular
// frequency, so the response can be evaluated between (and slightly
// beyond) the sampled points.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Errors returned by Fit.
var (
	// ErrBadInput indicates mismatched slice lengths or an empty sample set.
	ErrBadInput = errors.New("curve: invalid fit input")

	// ErrBadWeights indicates a non-finite or non-positive fit weight.
	ErrBadWeights = errors.New("curve: fit weights must be positive and finite")
)

// Curve is a parametric interpolating curve through complex samples.
// Evaluation outside the fitted frequency range extrapolates linearly from
// the boundary value and slope; accuracy degrades with distance from the
// sampled range.
type Curve struct {
	re, im interp.NaturalCubic

	// Degenerate single-sample curves evaluate to a constant.
	constant complex128
	single   bool
}

// Fit builds an interpolating curve through points, parameterized by the
// strictly increasing values u. Weights w follow the measurement
// convention 1/(|h|+eps); the fit interpolates (zero smoothing) and passes
// through every point regardless, so w is validated but does not alter the
// curve.
func Fit(u []float64, points []complex128, w []float64) (*Curve, error) {
	n := len(u)
	if n == 0 || len(points) != n || len(w) != n {
		return nil, fmt.Errorf("%w: %d parameters, %d points, %d weights",
			ErrBadInput, n, len(points), len(w))
	}
	for i, wi := range w {
		if wi <= 0 || math.IsInf(wi, 0) || math.IsNaN(wi) {
			return nil, fmt.Errorf("%w: w[%d] = %v", ErrBadWeights, i, wi)
		}
	}
	for i := 1; i < n; i++ {
		if u[i] <= u[i-1] {
			return nil, fmt.Errorf("%w: u not strictly increasing at index %d", ErrBadInput, i)
		}
	}

	c := &Curve{}
	if n == 1 {
		c.constant = points[0]
		c.single = true
		return c, nil
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, p := range points {
		re[i] = real(p)
		im[i] = imag(p)
	}
	if err := c.re.Fit(u, re); err != nil {
		return nil, fmt.Errorf("curve: real part fit: %w", err)
	}
	if err := c.im.Fit(u, im); err != nil {
		return nil, fmt.Errorf("curve: imaginary part fit: %w", err)
	}
	return c, nil
}

// Eval returns the curve value at parameter u.
func (c *Curve) Eval(u float64) complex128 {
	if c.single {
		return c.constant
	}
	return complex(c.re.Predict(u), c.im.Predict(u))
}
