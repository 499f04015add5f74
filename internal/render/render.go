// Package render defines the per-frame sinks the core fills and the host
// drains: the vector line list and the audio sample stream.
package render

import "vectrexcore/internal/screen"

// Context collects the lines the Screen emits during one frame, in the
// [-128, 127]² box; the host scales these to its own pixel space.
type Context struct {
	Lines []screen.Line
}

// Reset clears the line buffer for a new frame, reusing its backing array.
func (c *Context) Reset() { c.Lines = c.Lines[:0] }

// AudioContext collects one frame's worth of output samples in [-1, 1] and
// carries the cycles-per-sample divisor the PSG resamples against.
type AudioContext struct {
	Samples                []float32
	CpuCyclesPerAudioSample float64
}

// Reset clears the sample buffer for a new frame.
func (a *AudioContext) Reset() { a.Samples = a.Samples[:0] }
