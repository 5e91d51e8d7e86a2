package wavetable

import "math"

// Shape selects one of the basic analog waveform spectra.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSaw
	ShapeSquare
	ShapeTriangle
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSaw:
		return "saw"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Basic synthesizes the spectrum of a classic analog shape. Every basic
// shape is treated as an odd function with zero phase, so all energy lands
// in the imaginary (sine) component and Real stays zero.
func Basic(shape Shape) *Frame {
	f := newFrame()
	switch shape {
	case ShapeSine:
		f.Imag[1] = 1.0
	case ShapeSaw:
		for i := 1; i < TableSize/2; i++ {
			a := 2.0 / (float64(i) * math.Pi)
			if i%2 == 0 {
				a = -a
			}
			f.Imag[i] = a
		}
	case ShapeSquare:
		for i := 1; i < TableSize/2; i += 2 {
			f.Imag[i] = 4.0 / (float64(i) * math.Pi)
		}
	case ShapeTriangle:
		for i := 1; i < TableSize/2; i += 2 {
			a := 8.0 / (math.Pi * math.Pi * float64(i) * float64(i))
			if ((i-1)/2)%2 == 1 {
				a = -a
			}
			f.Imag[i] = a
		}
	}
	return f
}

// Pulse synthesizes a rectangular wave with the given duty cycle. Like all
// generators here it keeps zero phase, so each bin carries the pulse
// train's magnitude (4/(i*pi))*|sin(i*pi*duty)|; at duty 0.5 the spectrum
// reduces to Basic(ShapeSquare). Values outside (0,1) are not rejected;
// they produce a silent or aliased spectrum and are the caller's
// responsibility.
func Pulse(duty float64) *Frame {
	f := newFrame()
	for i := 1; i < TableSize/2; i++ {
		f.Imag[i] = 4.0 / (float64(i) * math.Pi) * math.Abs(math.Sin(float64(i)*math.Pi*duty))
	}
	return f
}

// Formant bandwidths in Hz for the three Gaussian bands.
var formantBandwidths = [3]float64{100.0, 150.0, 200.0}

// formantFundamental is the fundamental assumed when mapping harmonic
// indices to Hz, so bin i sits at i*100 Hz.
const formantFundamental = 100.0

// Formant approximates a vowel spectral envelope by summing three Gaussian
// bands centered at the given formant frequencies in Hz. The division by
// (i/2 + 1) softens the high end so formant emphasis does not turn into
// excessive brightness. This is a vowel-ish timbre, not a modeled vocal
// tract.
func Formant(f1, f2, f3 float64) *Frame {
	f := newFrame()
	formants := [3]float64{f1, f2, f3}
	for i := 1; i < TableSize/2; i++ {
		freq := float64(i) * formantFundamental
		amp := 0.0
		for b := 0; b < 3; b++ {
			d := freq - formants[b]
			bw := formantBandwidths[b]
			amp += math.Exp(-(d * d) / (2.0 * bw * bw))
		}
		f.Imag[i] = amp / (float64(i)*0.5 + 1.0)
	}
	return f
}

// Inharmonic places one coefficient per partial frequency ratio, rounded to
// the nearest harmonic bin, with amplitude 1/(rank+1) so earlier partials
// are louder. Ratios rounding outside the usable range are skipped. When two
// partials round to the same bin, the last one wins.
func Inharmonic(partials []float64) *Frame {
	f := newFrame()
	for rank, ratio := range partials {
		idx := int(math.Round(ratio))
		if idx < 1 || idx >= TableSize/2 {
			continue
		}
		f.Imag[idx] = 1.0 / float64(rank+1)
	}
	return f
}

// PhaseRotate applies a per-harmonic phase rotation of theta*i and returns
// the rotated spectrum as a new frame. Composing this with Basic(ShapeSaw)
// yields the phase-spread saw stacks used by the built-in presets.
func PhaseRotate(f *Frame, theta float64) *Frame {
	out := newFrame()
	for i := 0; i < TableSize; i++ {
		angle := theta * float64(i)
		c := math.Cos(angle)
		s := math.Sin(angle)
		out.Real[i] = f.Real[i]*c - f.Imag[i]*s
		out.Imag[i] = f.Real[i]*s + f.Imag[i]*c
	}
	return out
}
