package wavetable

import "math"

// morphEpsilon is the smallest morph change that forces a table rebuild.
const morphEpsilon = 1e-4

// Oscillator plays a preset as a time-domain signal: it resolves the
// current morph position to a frame, renders that frame to a single-cycle
// table, and scans the table with a phase accumulator. The table is rebuilt
// lazily whenever the morph position moves, which keeps Process cheap for
// static or slowly automated morphs.
//
// An Oscillator is stateful and must not be shared between goroutines.
type Oscillator struct {
	sampleRate int
	preset     *Preset
	freq       float64
	morph      float64
	phase      float64
	table      []float32
	dirty      bool
}

// NewOscillator creates an oscillator for the given preset at 440 Hz and
// morph position 0.
func NewOscillator(sampleRate int, p *Preset) *Oscillator {
	if sampleRate < 8000 {
		sampleRate = 8000
	}
	return &Oscillator{
		sampleRate: sampleRate,
		preset:     p,
		freq:       440.0,
		dirty:      true,
	}
}

// SetFrequency sets the playback frequency in Hz.
func (o *Oscillator) SetFrequency(hz float64) {
	if hz > 0 {
		o.freq = hz
	}
}

// SetNote sets the playback frequency from a MIDI note number.
func (o *Oscillator) SetNote(note int) {
	o.freq = NoteToFreq(note)
}

// SetMorph moves the morph position, clamped to [0,1].
func (o *Oscillator) SetMorph(m float64) {
	m = clamp01(m)
	if math.Abs(m-o.morph) < morphEpsilon && o.table != nil {
		return
	}
	o.morph = m
	o.dirty = true
}

// Morph returns the current morph position.
func (o *Oscillator) Morph() float64 {
	return o.morph
}

// Process fills out with mono samples. The phase accumulator persists
// across calls so consecutive blocks are continuous.
func (o *Oscillator) Process(out []float32) {
	if o.dirty {
		o.table = RenderFrameNormalized(o.preset.Resolve(o.morph), TableSize, 1.0)
		o.dirty = false
	}
	inc := o.freq / float64(o.sampleRate)
	for i := range out {
		out[i] = sampleTable(o.table, o.phase)
		o.phase += inc
		if o.phase >= 1.0 {
			o.phase -= math.Floor(o.phase)
		}
	}
}

// sampleTable reads the table at fractional phase in [0,1) with linear
// interpolation and wraparound.
func sampleTable(table []float32, phase float64) float32 {
	pos := phase * float64(len(table))
	i0 := int(pos)
	frac := float32(pos - float64(i0))
	if i0 >= len(table) {
		i0 = 0
	}
	i1 := i0 + 1
	if i1 >= len(table) {
		i1 = 0
	}
	return table[i0]*(1.0-frac) + table[i1]*frac
}
