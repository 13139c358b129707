package freqresp

const (
	// epsw is the absolute tolerance used when comparing frequency axes.
	// Axes whose points differ by less than epsw element-wise are treated
	// as identical and no resampling takes place.
	epsw = 1e-8

	// magWeightEps is added to the sample magnitude before inversion when
	// computing per-point fit weights, so near-zero-magnitude samples do
	// not produce unbounded weights.
	magWeightEps = 1e-3
)
