// Command curve-envelope applies a gain envelope from a curve file to a WAV
// audio file.
//
// Usage:
//
//	curve-envelope -curve fade.curve.yaml input.wav output.wav
//	curve-envelope -curve duck.curve.yaml -gain 0.8 input.wav output.wav
//	curve-envelope -curve fade.curve.yaml -fit=false input.wav output.wav  # Query in seconds
//
// By default the curve's knot range is stretched across the file, so the
// same fade works for any clip length. With -fit=false the curve is queried
// at each frame's timestamp in seconds instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	lookupcurve "github.com/tphakala/go-lookup-curve"
)

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Peak values for PCM sample formats
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV audio format tag for plain PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultMasterGain = 1.0
	minRequiredArgs   = 2

	// Gain and level constants
	unityGain       = 1.0
	dbFactor        = 20.0
	silenceFloorDB  = -120.0
	minFramesForFit = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curvePath := flag.String("curve", "", "Curve file to use as the gain envelope (required)")
	masterGain := flag.Float64("gain", defaultMasterGain, "Extra constant gain applied after the envelope")
	fit := flag.Bool("fit", true, "Stretch the curve's knot range across the whole file")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if *curvePath == "" || len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s -curve envelope.curve.yaml [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -curve fade.curve.yaml in.wav out.wav         # Fade per the curve\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -curve duck.curve.yaml -gain 0.5 in.wav out.wav\n", os.Args[0])
		if *curvePath == "" {
			return fmt.Errorf("missing -curve flag")
		}
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]

	curve, err := lookupcurve.LoadFile(*curvePath)
	if err != nil {
		return fmt.Errorf("failed to load curve: %w", err)
	}

	if *verbose {
		log.Printf("Curve: %s (%d knots)", curve.NameOrDefault(), curve.Len())
		if lo, hi, ok := curve.Domain(); ok {
			log.Printf("Curve range: [%g, %g]", lo, hi)
		}
		log.Printf("Master gain: %g", *masterGain)
		if *fit {
			log.Printf("Mapping: curve range stretched across file")
		} else {
			log.Printf("Mapping: curve queried in seconds")
		}
	}

	start := time.Now()
	stats, err := applyEnvelopeFile(inputPath, outputPath, curve, *masterGain, *fit, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Shaped %s -> %s with %q\n",
		filepath.Base(inputPath), filepath.Base(outputPath), curve.NameOrDefault())
	fmt.Printf("  %d frames (%d Hz, %d channels, %d-bit)\n",
		stats.frames, stats.rate, stats.channels, stats.bitDepth)
	fmt.Printf("  Peak: %.1f dBFS -> %.1f dBFS\n", dbFS(stats.peakIn), dbFS(stats.peakOut))
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

// envelopeFileStats summarizes one processed file.
type envelopeFileStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int
	peakIn   float64
	peakOut  float64
}

// applyEnvelopeFile runs the whole pipeline: decode, shape, re-encode.
func applyEnvelopeFile(inputPath, outputPath string, curve *lookupcurve.LookupCurve, masterGain float64, fit, verbose bool) (*envelopeFileStats, error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	maxVal := maxSampleValue(input.bitDepth)
	samples := normalizeSamples(input.buf.Data, maxVal)
	before := measureSignal(samples)

	tl := newEnvelopeTimeline(curve, fit, input.frames, input.rate)
	applyEnvelope(samples, input.channels, curve, tl)
	applyMasterGain(samples, masterGain)

	after := measureSignal(samples)
	if verbose {
		log.Printf("Signal before: peak=%.4f rms=%.4f mean=%+.5f", before.peak, before.rms, before.mean)
		log.Printf("Signal after:  peak=%.4f rms=%.4f mean=%+.5f", after.peak, after.rms, after.mean)
	}

	denormalizeInto(input.buf.Data, samples, maxVal)
	if err := writeWAVOutput(outputPath, input.buf, input.bitDepth); err != nil {
		return nil, err
	}

	return &envelopeFileStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		frames:   input.frames,
		peakIn:   before.peak,
		peakOut:  after.peak,
	}, nil
}
