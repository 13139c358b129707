package freqresp

import (
	"fmt"
	"math"

	"github.com/tphakala/go-freqresp/internal/mathutil"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FromImpulseResponse builds a SISO model from a measured impulse
// response sampled at sampleRate Hz. The response is zero-padded to the
// next power of two and transformed with a real FFT; bin k maps to the
// angular frequency 2*pi*k*sampleRate/N rad/s, covering DC through the
// Nyquist frequency.
func FromImpulseResponse(ir []float64, sampleRate float64) (*FRD, error) {
	if len(ir) == 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: empty impulse response or non-positive sample rate",
			ErrInvalidArguments)
	}

	n := mathutil.NextPow2(len(ir))
	padded := make([]float64, n)
	copy(padded, ir)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, padded)

	omega := make([]float64, len(coeffs))
	for k := range omega {
		omega[k] = 2 * math.Pi * float64(k) * sampleRate / float64(n)
	}

	// Bin 0 is DC; the axis starts at zero and is strictly increasing, so
	// the samples can back the model directly.
	return FromSamples(coeffs, omega)
}
