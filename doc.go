// Package freqresp represents linear dynamical systems by sampled
// frequency response data and provides algebraic composition and
// interpolated evaluation of those responses.
//
// A model holds an ascending axis of angular frequencies (rad/s) and a
// complex response tensor indexed [output, input, sample]. A parametric
// spline curve per input/output pair is fitted at construction, so the
// response can be evaluated at any frequency inside (and slightly beyond)
// the sampled range, not just at the sample points.
//
// # Features
//
//   - SISO and MIMO response data with matrix semantics per frequency sample
//   - Smooth interpolated evaluation between irregularly spaced samples
//   - Parallel (Add), series (Mul) and feedback interconnections
//   - Automatic reconciliation of differing frequency grids between operands
//   - Coercion of scalars, matrices and other system representations into
//     response data via [ToFRD]
//   - Impulse-response measurement via [FromImpulseResponse]
//
// # Quick Start
//
// Build a SISO model from samples and evaluate it:
//
//	omega := []float64{1, 10, 100}
//	h := []complex128{0.9 - 0.1i, 0.5 - 0.5i, 0.1 - 0.1i}
//	sys, err := freqresp.FromSamples(h, omega)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp := sys.EvalFr(5) // interpolated response matrix at 5 rad/s
//
// Close a unity feedback loop and sweep the result:
//
//	closed, err := sys.Feedback(1, -1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mag, phase, w := closed.FreqResp([]float64{1, 5, 10, 50, 100})
//
// # Frequency Grids
//
// Binary operations reconcile operand grids automatically: matching axes
// (within 1e-8 rad/s) combine directly, overlapping axes are intersected
// and the operands resampled through their interpolation curves, and
// disjoint axes fail with [ErrNoOverlap]. Reconciliation emits a
// diagnostic notice on the writer configured with [SetWarnWriter].
//
// Evaluation outside a model's sampled range extrapolates the boundary
// spline segments. This is well defined but increasingly inaccurate with
// distance from the sampled range; callers needing guarantees should keep
// queries inside the axis.
//
// # Thread Safety
//
// Models are immutable after construction: every operator returns a new
// instance. A constructed [FRD] is therefore safe for concurrent
// read-only use by multiple goroutines without locking.
package freqresp
