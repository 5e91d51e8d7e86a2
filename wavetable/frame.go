// Package wavetable synthesizes frequency-domain wavetable frames and
// morphs between them.
//
// A Frame is one Fourier-coefficient snapshot of a single waveform cycle.
// A Preset is an ordered sequence of frames acting as morph keyframes, and a
// Registry owns the built-in presets. All generation is deterministic and
// everything is read-only after construction, so presets and registries may
// be shared across goroutines without locking.
package wavetable

import "math"

// TableSize is the fixed number of coefficient bins per frame, shared by
// every frame in the process. Energy lives in bins 1..TableSize/2-1; bin 0
// and the upper half stay zero so an inverse transform yields a real,
// DC-free cycle.
const TableSize = 2048

// Frame is one frequency-domain snapshot of a waveform cycle, stored as
// one-sided amplitude coefficients: the time-domain cycle is
//
//	x(t) = sum_i Real[i]*cos(2*pi*i*t/n) + Imag[i]*sin(2*pi*i*t/n)
//
// Both buffers always hold exactly TableSize coefficients. Frames are
// immutable once produced; treat the buffers as read-only.
type Frame struct {
	Real []float64
	Imag []float64
}

func newFrame() *Frame {
	return &Frame{
		Real: make([]float64, TableSize),
		Imag: make([]float64, TableSize),
	}
}

// Clone returns an independently owned copy of f.
func (f *Frame) Clone() *Frame {
	out := newFrame()
	copy(out.Real, f.Real)
	copy(out.Imag, f.Imag)
	return out
}

// Magnitude returns the coefficient magnitude at harmonic index i.
func (f *Frame) Magnitude(i int) float64 {
	return math.Hypot(f.Real[i], f.Imag[i])
}
