package wavetable

import (
	"math"
	"sort"

	pdefd "github.com/cwbudde/algo-pde/fd"
	pdepoisson "github.com/cwbudde/algo-pde/poisson"
)

// builtinDef describes one built-in preset as data: an id, display name,
// category, and the generator calls producing its morph keyframes.
type builtinDef struct {
	id       string
	name     string
	category Category
	build    func() []*Frame
}

var builtins = []builtinDef{
	{"basic-sine", "Sine", CategoryBasic, func() []*Frame {
		return []*Frame{Basic(ShapeSine)}
	}},
	{"basic-triangle", "Triangle", CategoryBasic, func() []*Frame {
		return []*Frame{Basic(ShapeTriangle)}
	}},
	{"basic-saw", "Sawtooth", CategoryBasic, func() []*Frame {
		return []*Frame{Basic(ShapeSaw)}
	}},
	{"basic-square", "Square", CategoryBasic, func() []*Frame {
		return []*Frame{Basic(ShapeSquare)}
	}},

	{"analog-sweep", "Analog Sweep", CategoryAnalog, func() []*Frame {
		return []*Frame{
			Basic(ShapeSine),
			Basic(ShapeTriangle),
			Basic(ShapeSaw),
			Basic(ShapeSquare),
		}
	}},
	{"analog-pwm", "Pulse Width", CategoryAnalog, func() []*Frame {
		frames := make([]*Frame, 0, 5)
		for _, duty := range []float64{0.5, 0.35, 0.2, 0.1, 0.05} {
			frames = append(frames, Pulse(duty))
		}
		return frames
	}},
	{"analog-saw-stack", "Saw Stack", CategoryAnalog, func() []*Frame {
		// Morph from a single saw into stacks of phase-spread saws. The
		// spread angle grows per keyframe, thickening the sound without
		// changing the harmonic magnitudes much.
		saw := Basic(ShapeSaw)
		return []*Frame{
			saw,
			mixFrames(saw, PhaseRotate(saw, math.Pi/6)),
			mixFrames(saw, PhaseRotate(saw, math.Pi/4), PhaseRotate(saw, -math.Pi/4)),
			mixFrames(saw, PhaseRotate(saw, math.Pi/3), PhaseRotate(saw, -math.Pi/3)),
		}
	}},

	{"digital-harmonic-drop", "Harmonic Drop", CategoryDigital, func() []*Frame {
		// A stepped lowpass sweep: each keyframe keeps fewer harmonics.
		frames := make([]*Frame, 0, 5)
		for _, count := range []int{24, 12, 6, 3, 1} {
			frames = append(frames, Inharmonic(harmonicSeries(count)))
		}
		return frames
	}},
	{"digital-bitten", "Bitten", CategoryDigital, func() []*Frame {
		return []*Frame{
			Inharmonic(harmonicSeries(8)),
			Inharmonic([]float64{1, 3, 5, 7, 9, 11}),
			Inharmonic([]float64{1, 4, 8, 12, 16}),
		}
	}},

	{"vocal-morph", "Vowel Morph", CategoryVocal, func() []*Frame {
		// F1-F3 in Hz per vowel, from published vowel formant measurements.
		vowels := [][3]float64{
			{710, 1100, 2540}, // ah
			{569, 1965, 2636}, // eh
			{285, 2373, 3088}, // ee
			{449, 737, 2635},  // oh
			{309, 939, 2320},  // oo
		}
		frames := make([]*Frame, 0, len(vowels))
		for _, v := range vowels {
			frames = append(frames, Formant(v[0], v[1], v[2]))
		}
		return frames
	}},

	{"fx-bell", "Bell", CategoryFX, func() []*Frame {
		// Ideal clamped-bar partial ratios; the second keyframe shifts the
		// whole set up an octave for a brighter strike.
		bar := []float64{1, 2.756, 5.404, 8.933, 13.345, 18.645}
		high := make([]float64, len(bar))
		for i, r := range bar {
			high[i] = 2 * r
		}
		return []*Frame{Inharmonic(bar), Inharmonic(high)}
	}},
	{"fx-membrane", "Membrane", CategoryFX, func() []*Frame {
		return []*Frame{
			Inharmonic(membraneRatios(8, 2.0)),
			Inharmonic(membraneRatios(12, 4.0)),
		}
	}},
}

// mixFrames averages the given frames coefficient-wise.
func mixFrames(frames ...*Frame) *Frame {
	out := newFrame()
	if len(frames) == 0 {
		return out
	}
	g := 1.0 / float64(len(frames))
	for _, f := range frames {
		for i := 0; i < TableSize; i++ {
			out.Real[i] += f.Real[i] * g
			out.Imag[i] += f.Imag[i] * g
		}
	}
	return out
}

// harmonicSeries returns the integer ratios 1..n.
func harmonicSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// membraneRatios derives inharmonic partial ratios from the mode
// frequencies of a square membrane. The 2-D Dirichlet Laplacian spectrum is
// the pairwise sum of the 1-D spectrum, and mode frequencies scale with the
// square root of the eigenvalues. Ratios are normalized to the lowest mode
// and multiplied by scale so the set spreads across distinct harmonic bins.
func membraneRatios(count int, scale float64) []float64 {
	const n = 32
	const h = 1.0 / float64(n)
	eig := pdefd.Eigenvalues(n, h, pdepoisson.Dirichlet)

	sums := make([]float64, 0, 36)
	for i := 0; i < 6 && i < len(eig); i++ {
		for j := i; j < 6 && j < len(eig); j++ {
			sums = append(sums, eig[i]+eig[j])
		}
	}
	sort.Float64s(sums)

	base := math.Sqrt(sums[0])
	ratios := make([]float64, 0, count)
	for k := 0; k < count && k < len(sums); k++ {
		ratios = append(ratios, scale*math.Sqrt(sums[k])/base)
	}
	return ratios
}
