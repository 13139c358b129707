// Command wav2frd measures a frequency response from a WAV impulse
// response recording.
//
// Usage:
//
//	wav2frd impulse.wav              # print magnitude/phase table
//	wav2frd -csv impulse.wav         # emit omega,re,im CSV rows
//	wav2frd -channel 1 impulse.wav   # use the second channel
//
// The first channel is used by default. The impulse response is
// zero-padded to a power of two and transformed with a real FFT; the
// resulting model covers DC through the Nyquist frequency.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	freqresp "github.com/tphakala/go-freqresp"
)

// Full-scale values for PCM sample formats.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvOut := flag.Bool("csv", false, "Emit omega,re,im CSV rows instead of a table")
	channel := flag.Int("channel", 0, "Channel index to analyze")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		return fmt.Errorf("missing input WAV file")
	}
	path := flag.Arg(0)

	ir, sampleRate, err := readImpulseResponse(path, *channel, *verbose)
	if err != nil {
		return err
	}

	model, err := freqresp.FromImpulseResponse(ir, sampleRate)
	if err != nil {
		return fmt.Errorf("building response model: %w", err)
	}

	if *csvOut {
		return writeCSV(os.Stdout, model)
	}
	fmt.Print(model.String())
	return nil
}

// readImpulseResponse loads one channel of a WAV file as float64 samples
// normalized to full scale.
func readImpulseResponse(path string, channel int, verbose bool) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, bitDepth)
	}
	if channel < 0 || channel >= format.NumChannels {
		return nil, 0, fmt.Errorf("channel %d out of range (file has %d)",
			channel, format.NumChannels)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read samples: %w", err)
	}

	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, 0, err
	}

	return channelSamples(buf, channel, scale), float64(format.SampleRate), nil
}

// channelSamples extracts one channel of an interleaved PCM buffer as
// float64 samples normalized to full scale.
func channelSamples(buf *audio.IntBuffer, channel int, scale float64) []float64 {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		out[i] = float64(buf.Data[i*channels+channel]) / scale
	}
	return out
}

// fullScale returns the positive full-scale value for a PCM bit depth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// writeCSV emits the stored samples as omega,re,im rows.
func writeCSV(w *os.File, model *freqresp.FRD) error {
	data := model.Data()
	for k, omega := range model.Omega() {
		h := data.At(0, 0, k)
		if _, err := fmt.Fprintf(w, "%g,%g,%g\n", omega, real(h), imag(h)); err != nil {
			return err
		}
	}
	return nil
}
