package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// readSamples parses omega,re,im rows into a frequency axis and complex
// sample vector. A single leading header row is tolerated and skipped.
func readSamples(r io.Reader) ([]float64, []complex128, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var (
		omega   []float64
		samples []complex128
	)
	for line := 1; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading CSV: %w", err)
		}

		w, errW := strconv.ParseFloat(rec[0], 64)
		re, errRe := strconv.ParseFloat(rec[1], 64)
		im, errIm := strconv.ParseFloat(rec[2], 64)
		if errW != nil || errRe != nil || errIm != nil {
			if line == 1 {
				continue // header row
			}
			return nil, nil, fmt.Errorf("line %d: malformed row %v", line, rec)
		}

		omega = append(omega, w)
		samples = append(samples, complex(re, im))
	}

	if len(omega) == 0 {
		return nil, nil, fmt.Errorf("no data rows found")
	}
	return omega, samples, nil
}
