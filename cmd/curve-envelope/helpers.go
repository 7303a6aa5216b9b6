package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	lookupcurve "github.com/tphakala/go-lookup-curve"
)

// wavInput holds a fully decoded input file and its format information.
type wavInput struct {
	buf      *audio.IntBuffer
	rate     int
	channels int
	bitDepth int
	frames   int
}

// openWAVInput opens, validates and fully decodes a WAV file.
func openWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio data: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d in %s", channels, path)
	}

	in := &wavInput{
		buf:      buf,
		rate:     buf.Format.SampleRate,
		channels: channels,
		bitDepth: int(decoder.BitDepth),
		frames:   len(buf.Data) / channels,
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			in.rate, in.channels, in.bitDepth, in.frames)
	}
	return in, nil
}

// maxSampleValue returns the peak integer sample value for a bit depth.
func maxSampleValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// normalizeSamples converts interleaved int samples to float64 in [-1, 1].
func normalizeSamples(data []int, maxVal float64) []float64 {
	invMaxVal := 1.0 / maxVal
	samples := make([]float64, len(data))
	for i, s := range data {
		samples[i] = float64(s) * invMaxVal
	}
	return samples
}

// denormalizeInto converts float64 samples back to clamped interleaved ints.
func denormalizeInto(dst []int, samples []float64, maxVal float64) {
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		dst[i] = int(s * maxVal)
	}
}

// envelopeTimeline maps frame indices onto curve query positions.
type envelopeTimeline struct {
	start float64
	step  float64
}

// newEnvelopeTimeline builds the frame-to-position mapping. With fit the
// curve's own knot range is stretched across the whole file; otherwise the
// curve is queried in seconds.
func newEnvelopeTimeline(c *lookupcurve.LookupCurve, fit bool, frames, rate int) envelopeTimeline {
	if !fit {
		return envelopeTimeline{start: 0, step: 1.0 / float64(rate)}
	}

	lo, hi, ok := c.Domain()
	if !ok || frames < minFramesForFit {
		return envelopeTimeline{start: lo}
	}
	return envelopeTimeline{start: lo, step: (hi - lo) / float64(frames-1)}
}

// position returns the curve query position for a frame.
func (tl envelopeTimeline) position(frame int) float64 {
	return tl.start + tl.step*float64(frame)
}

// applyEnvelope multiplies every frame by the curve's gain at that frame's
// position. Frame order is monotonic, which is the lookup cache's best case.
func applyEnvelope(samples []float64, channels int, c *lookupcurve.LookupCurve, tl envelopeTimeline) {
	var cache lookupcurve.LookupCache
	frames := len(samples) / channels
	for i := range frames {
		gain := c.LookupCached(tl.position(i), &cache)
		base := i * channels
		for ch := range channels {
			samples[base+ch] *= gain
		}
	}
}

// applyMasterGain scales the whole buffer by a constant factor.
func applyMasterGain(samples []float64, gain float64) {
	if gain == unityGain || len(samples) == 0 {
		return
	}
	f64.Scale(samples, samples, gain)
}

// signalStats summarizes a normalized sample buffer.
type signalStats struct {
	peak float64
	rms  float64
	mean float64
}

// measureSignal computes peak, RMS and mean over normalized samples.
func measureSignal(samples []float64) signalStats {
	if len(samples) == 0 {
		return signalStats{}
	}

	n := float64(len(samples))
	stats := signalStats{
		rms:  math.Sqrt(f64.DotProductUnsafe(samples, samples) / n),
		mean: f64.Sum(samples) / n,
	}
	for _, s := range samples {
		if a := math.Abs(s); a > stats.peak {
			stats.peak = a
		}
	}
	return stats
}

// dbFS converts a normalized level to decibels relative to full scale.
func dbFS(level float64) float64 {
	if level <= 0 {
		return silenceFloorDB
	}
	return dbFactor * math.Log10(level)
}

// writeWAVOutput encodes the buffer as a PCM WAV file at path.
func writeWAVOutput(path string, buf *audio.IntBuffer, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
