// Command bode renders a Bode-style listing of frequency response data
// loaded from CSV.
//
// Usage:
//
//	bode response.csv                 # 100-point log sweep over the data range
//	bode -points 50 response.csv
//	bode -unwrap response.csv         # continuous phase instead of principal value
//
// Input rows are "omega,re,im" with omega in rad/s, as emitted by
// wav2frd -csv. The data is interpolated onto a logarithmically spaced
// grid and printed as magnitude (dB) and phase (degrees).
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	freqresp "github.com/tphakala/go-freqresp"
	"github.com/tphakala/go-freqresp/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

const (
	defaultPoints = 100
	degPerRad     = 180 / math.Pi
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	points := flag.Int("points", defaultPoints, "Number of sweep points")
	unwrap := flag.Bool("unwrap", false, "Unwrap phase to a continuous curve")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		return fmt.Errorf("missing input CSV file")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	omega, samples, err := readSamples(f)
	if err != nil {
		return err
	}

	model, err := freqresp.FromSamples(samples, omega)
	if err != nil {
		return fmt.Errorf("building response model: %w", err)
	}

	wmin, wmax := omega[0], omega[len(omega)-1]
	if wmin <= 0 {
		// A log grid cannot include DC; start at the first positive point.
		if len(omega) < 2 {
			return fmt.Errorf("need at least one positive frequency for a log sweep")
		}
		wmin = omega[1]
	}
	grid := freqresp.LogGrid(wmin, wmax, *points)
	if grid == nil {
		return fmt.Errorf("cannot build a log grid over [%g, %g] with %d points", wmin, wmax, *points)
	}

	magDB := make([]float64, len(grid))
	phase := make([]float64, len(grid))
	for i, w := range grid {
		magDB[i] = model.MagnitudeDB(0, 0, w)
		phase[i] = model.Phase(0, 0, w)
	}
	if *unwrap {
		phase = mathutil.Unwrap(phase)
	}
	f64.Scale(phase, phase, degPerRad)

	fmt.Println("Freq [rad/s]   Mag [dB]  Phase [deg]")
	fmt.Println("------------  ---------  -----------")
	for i, w := range grid {
		fmt.Printf("%12.4g  %9.3f  %11.2f\n", w, magDB[i], phase[i])
	}
	return nil
}
