package wavetable

import (
	"fmt"
	"math"

	dspresample "github.com/cwbudde/algo-dsp/dsp/resample"
	algofft "github.com/cwbudde/algo-fft"
)

// FrameFromSamples converts one time-domain waveform cycle into a frame.
// Cycles of any length are resampled to TableSize first. DC and the Nyquist
// bin are discarded so the frame keeps the usual invariant of energy in
// bins 1..TableSize/2-1.
//
// The transform's scale and sign conventions are measured once per call
// with unit cosine and sine probes, so the resulting coefficients always
// follow the Frame amplitude convention regardless of FFT normalization.
func FrameFromSamples(cycle []float64) (*Frame, error) {
	if len(cycle) == 0 {
		return nil, fmt.Errorf("empty cycle")
	}
	buf, err := fitToTable(cycle)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlanReal64(TableSize)
	if err != nil {
		return nil, err
	}
	spec := make([]complex128, TableSize/2+1)
	plan.Forward(spec, buf)

	// Probe the transform's response to unit cosine and sine at bin 1. Any
	// linear real FFT responds identically at every bin, so the 2x2 inverse
	// of this response recovers (cos, sin) amplitudes per bin.
	probe := make([]float64, TableSize)
	probeSpec := make([]complex128, TableSize/2+1)
	for t := range probe {
		probe[t] = math.Cos(2.0 * math.Pi * float64(t) / TableSize)
	}
	plan.Forward(probeSpec, probe)
	cc := real(probeSpec[1])
	sc := imag(probeSpec[1])
	for t := range probe {
		probe[t] = math.Sin(2.0 * math.Pi * float64(t) / TableSize)
	}
	plan.Forward(probeSpec, probe)
	cs := real(probeSpec[1])
	ss := imag(probeSpec[1])

	det := cc*ss - cs*sc
	if det == 0 {
		return nil, fmt.Errorf("degenerate transform response")
	}

	f := newFrame()
	for i := 1; i < TableSize/2; i++ {
		re := real(spec[i])
		im := imag(spec[i])
		f.Real[i] = (ss*re - cs*im) / det
		f.Imag[i] = (cc*im - sc*re) / det
	}
	return f, nil
}

// fitToTable resamples a cycle of arbitrary length to exactly TableSize
// samples. Rate conversion can land a few samples short or long at the
// edges; short output is zero-padded, long output trimmed.
func fitToTable(cycle []float64) ([]float64, error) {
	buf := make([]float64, TableSize)
	if len(cycle) == TableSize {
		copy(buf, cycle)
		return buf, nil
	}
	r, err := dspresample.NewForRates(
		float64(len(cycle)),
		float64(TableSize),
		dspresample.WithQuality(dspresample.QualityBest),
	)
	if err != nil {
		return nil, err
	}
	copy(buf, r.Process(cycle))
	return buf, nil
}
