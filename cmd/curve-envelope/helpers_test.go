package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lookupcurve "github.com/tphakala/go-lookup-curve"
)

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestWriteThenOpenWAV_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ramp.wav")

	data := make([]int, 256)
	for i := range data {
		data[i] = (i - 128) * 100
	}
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: bitsPerSample16,
	}
	require.NoError(t, writeWAVOutput(path, buf, bitsPerSample16))

	in, err := openWAVInput(path, false)
	require.NoError(t, err)
	assert.Equal(t, 8000, in.rate)
	assert.Equal(t, 1, in.channels)
	assert.Equal(t, bitsPerSample16, in.bitDepth)
	assert.Equal(t, 256, in.frames)
	assert.Equal(t, data, in.buf.Data)
}

func TestWriteWAVOutput_InvalidDirectory(t *testing.T) {
	buf := &audio.IntBuffer{
		Data:   []int{0, 0},
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
	}
	err := writeWAVOutput("/nonexistent/dir/out.wav", buf, bitsPerSample16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestMaxSampleValue(t *testing.T) {
	assert.Equal(t, maxInt16, maxSampleValue(16))
	assert.Equal(t, maxInt24, maxSampleValue(24))
	assert.Equal(t, maxInt32, maxSampleValue(32))
	// Unknown depths fall back to 16-bit scaling.
	assert.Equal(t, maxInt16, maxSampleValue(12))
}

func TestNormalizeSamples_Range(t *testing.T) {
	data := []int{0, 16384, -16384, 32767, -32767}
	samples := normalizeSamples(data, maxInt16)

	require.Len(t, samples, len(data))
	assert.Equal(t, 0.0, samples[0])
	assert.InDelta(t, 1.0, samples[3], 1e-12)
	assert.InDelta(t, -1.0, samples[4], 1e-12)
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s), 1.0)
	}
}

func TestDenormalizeInto_ClampsAndRoundTrips(t *testing.T) {
	// Overdriven samples clamp to full scale.
	dst := make([]int, 3)
	denormalizeInto(dst, []float64{2.0, -2.0, 0}, maxInt16)
	assert.Equal(t, []int{32767, -32767, 0}, dst)

	// A normalize/denormalize cycle stays within one integer step.
	orig := []int{0, 1, -1, 100, -12345, 32767, -32767}
	back := make([]int, len(orig))
	denormalizeInto(back, normalizeSamples(orig, maxInt16), maxInt16)
	for i := range orig {
		assert.InDelta(t, orig[i], back[i], 1, "sample %d", i)
	}
}

func TestEnvelopeTimeline_Fit(t *testing.T) {
	c := lookupcurve.NewLinear(0, 0, 1, 1)
	tl := newEnvelopeTimeline(c, true, 101, 48000)

	assert.InDelta(t, 0.0, tl.position(0), 1e-12)
	assert.InDelta(t, 0.5, tl.position(50), 1e-12)
	assert.InDelta(t, 1.0, tl.position(100), 1e-12)
}

func TestEnvelopeTimeline_Seconds(t *testing.T) {
	c := lookupcurve.NewLinear(0, 0, 10, 1)
	tl := newEnvelopeTimeline(c, false, 16000, 8000)

	assert.InDelta(t, 0.0, tl.position(0), 1e-12)
	assert.InDelta(t, 1.0, tl.position(8000), 1e-12)
	assert.InDelta(t, 2.0, tl.position(16000), 1e-12)
}

func TestEnvelopeTimeline_DegenerateInputs(t *testing.T) {
	// A single frame cannot be stretched.
	c := lookupcurve.NewLinear(0, 0, 1, 1)
	tl := newEnvelopeTimeline(c, true, 1, 48000)
	assert.Equal(t, 0.0, tl.step)

	// An empty curve has no range to stretch.
	tl = newEnvelopeTimeline(lookupcurve.New(), true, 100, 48000)
	assert.Equal(t, 0.0, tl.position(50))
}

func TestApplyEnvelope_ConstantCurve(t *testing.T) {
	samples := []float64{1, -1, 0.5, -0.5, 0.25, -0.25}
	c := lookupcurve.NewConstant(0.5)

	applyEnvelope(samples, 2, c, newEnvelopeTimeline(c, true, 3, 8000))
	assert.Equal(t, []float64{0.5, -0.5, 0.25, -0.25, 0.125, -0.125}, samples)
}

func TestApplyEnvelope_LinearFade(t *testing.T) {
	const frames = 5
	samples := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1} // stereo, all full scale
	c := lookupcurve.NewLinear(0, 0, 1, 1)

	applyEnvelope(samples, 2, c, newEnvelopeTimeline(c, true, frames, 8000))

	for i := range frames {
		want := float64(i) / (frames - 1)
		assert.InDelta(t, want, samples[2*i], 1e-12, "frame %d left", i)
		assert.InDelta(t, want, samples[2*i+1], 1e-12, "frame %d right", i)
	}
}

func TestApplyMasterGain(t *testing.T) {
	samples := []float64{0.5, -0.25, 0.125}
	applyMasterGain(samples, 2)
	assert.Equal(t, []float64{1, -0.5, 0.25}, samples)

	// Unity gain is a no-op.
	applyMasterGain(samples, 1)
	assert.Equal(t, []float64{1, -0.5, 0.25}, samples)

	// Empty buffers must not panic.
	applyMasterGain(nil, 2)
}

func TestMeasureSignal(t *testing.T) {
	stats := measureSignal([]float64{0.5, -0.5, 0.5, -0.5})
	assert.InDelta(t, 0.5, stats.peak, 1e-12)
	assert.InDelta(t, 0.5, stats.rms, 1e-12)
	assert.InDelta(t, 0.0, stats.mean, 1e-12)

	empty := measureSignal(nil)
	assert.Equal(t, signalStats{}, empty)
}

func TestDbFS(t *testing.T) {
	assert.InDelta(t, 0.0, dbFS(1.0), 1e-12)
	assert.InDelta(t, -6.0206, dbFS(0.5), 1e-3)
	assert.Equal(t, silenceFloorDB, dbFS(0))
	assert.Equal(t, silenceFloorDB, dbFS(-0.5))
}

func TestApplyEnvelopeFile_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "in.wav")
	outPath := filepath.Join(tmpDir, "out.wav")

	// Constant half-scale input signal.
	data := make([]int, 512)
	for i := range data {
		data[i] = 16384
	}
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: bitsPerSample16,
	}
	require.NoError(t, writeWAVOutput(inPath, buf, bitsPerSample16))

	stats, err := applyEnvelopeFile(inPath, outPath, lookupcurve.NewConstant(0.5), 1.0, true, false)
	require.NoError(t, err)
	assert.Equal(t, 512, stats.frames)
	assert.Equal(t, 8000, stats.rate)
	assert.InDelta(t, 0.5, stats.peakIn, 1e-3)
	assert.InDelta(t, 0.25, stats.peakOut, 1e-3)

	out, err := openWAVInput(outPath, false)
	require.NoError(t, err)
	require.Equal(t, 512, out.frames)
	for i, s := range out.buf.Data {
		assert.InDelta(t, 8192, s, 1, "sample %d", i)
	}
}
