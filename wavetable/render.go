package wavetable

import (
	"math"

	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
)

// renderEpsilon is the magnitude below which a bin is skipped during
// rendering.
const renderEpsilon = 1e-12

// RenderFrame additively synthesizes one time-domain cycle of n samples
// from f. Each populated bin contributes one sinusoid, generated with a
// two-term recurrence so the loop needs no per-sample trig. The output is
// not normalized; see RenderFrameNormalized.
//
// This is an offline preview surface. Real-time reconstruction (inverse
// transform inside an audio callback) is the rendering engine's job, not
// this package's.
func RenderFrame(f *Frame, n int) []float32 {
	if n < 1 {
		n = 1
	}
	acc := make([]float64, n)
	for i := 1; i < TableSize/2; i++ {
		re := f.Real[i]
		im := f.Imag[i]
		amp := math.Hypot(re, im)
		if amp < renderEpsilon {
			continue
		}
		w := 2.0 * math.Pi * float64(i) / float64(n)
		// re*cos(wt) + im*sin(wt) == amp*cos(wt - atan2(im, re))
		addPartial(acc, amp, w, -math.Atan2(im, re))
	}
	out := make([]float32, n)
	for i, v := range acc {
		out[i] = float32(dspcore.FlushDenormals(v))
	}
	return out
}

// RenderFrameNormalized renders f and scales the cycle so its absolute peak
// equals peak. A silent frame stays silent.
func RenderFrameNormalized(f *Frame, n int, peak float64) []float32 {
	out := RenderFrame(f, n)
	maxAbs := 0.0
	for _, v := range out {
		a := math.Abs(float64(v))
		if a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < renderEpsilon {
		return out
	}
	s := float32(peak / maxAbs)
	for i := range out {
		out[i] *= s
	}
	return out
}

// addPartial accumulates amp*cos(w*t + phase) into out using the Chebyshev
// recurrence x2 = 2*cos(w)*x1 - x0.
func addPartial(out []float64, amp, w, phase float64) {
	if len(out) == 0 {
		return
	}
	cw := 2.0 * math.Cos(w)
	x0 := math.Cos(phase)
	x1 := math.Cos(phase + w)
	out[0] += amp * x0
	if len(out) == 1 {
		return
	}
	out[1] += amp * x1
	for t := 2; t < len(out); t++ {
		x2 := cw*x1 - x0
		x0 = x1
		x1 = x2
		out[t] += amp * x2
	}
}
