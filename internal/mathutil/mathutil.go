// Package mathutil provides mathematical helpers for frequency response
// processing.
package mathutil

import "math"

// NextPow2 returns the smallest power of two greater than or equal to n.
// Values below 1 return 1.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// Unwrap removes 2*pi discontinuities from a phase sequence in radians,
// returning a new slice. Whenever consecutive samples jump by more than
// pi, a multiple of 2*pi is added to keep the sequence continuous.
func Unwrap(phase []float64) []float64 {
	out := make([]float64, len(phase))
	if len(phase) == 0 {
		return out
	}

	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if d > math.Pi {
			offset -= 2 * math.Pi
		} else if d < -math.Pi {
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}
