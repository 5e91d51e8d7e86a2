package wavetable

import (
	"math"
	"testing"
)

func TestOscillatorFrequencyAccuracy(t *testing.T) {
	p := mustPreset(t, "sine", Basic(ShapeSine))
	osc := NewOscillator(48000, p)
	osc.SetFrequency(1000)

	out := make([]float32, 48000/10)
	osc.Process(out)

	crossings := 0
	for i := 1; i < len(out); i++ {
		if out[i-1] < 0 && out[i] >= 0 {
			crossings++
		}
	}
	// 1 kHz for 100 ms: 100 upward crossings, +/-1 for phase at the edges.
	if crossings < 99 || crossings > 101 {
		t.Fatalf("expected ~100 cycles, counted %d", crossings)
	}
}

func TestNoteToFreqApproximation(t *testing.T) {
	if f := NoteToFreq(69); math.Abs(f-440.0) > 0.5 {
		t.Fatalf("A4: got %g", f)
	}
	if f := NoteToFreq(81); math.Abs(f-880.0) > 1.0 {
		t.Fatalf("A5: got %g", f)
	}
	if f := NoteToFreq(57); math.Abs(f-220.0) > 0.5 {
		t.Fatalf("A3: got %g", f)
	}
}

func TestOscillatorNotePitch(t *testing.T) {
	p := mustPreset(t, "sine", Basic(ShapeSine))
	osc := NewOscillator(48000, p)
	osc.SetNote(69)

	out := make([]float32, 48000)
	osc.Process(out)

	crossings := 0
	for i := 1; i < len(out); i++ {
		if out[i-1] < 0 && out[i] >= 0 {
			crossings++
		}
	}
	if crossings < 437 || crossings > 443 {
		t.Fatalf("expected ~440 cycles in one second, counted %d", crossings)
	}
}

func TestOscillatorMorphChangesOutput(t *testing.T) {
	r := Build()
	sweep, ok := r.Get("analog-sweep")
	if !ok {
		t.Fatal("analog-sweep missing")
	}
	osc := NewOscillator(48000, sweep)
	osc.SetFrequency(220)

	a := make([]float32, 2048)
	osc.Process(a)

	osc.SetMorph(1.0)
	b := make([]float32, 2048)
	osc.Process(b)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("morph position change did not affect the output")
	}
}

func TestOscillatorBlockContinuity(t *testing.T) {
	p := mustPreset(t, "sine", Basic(ShapeSine))
	osc := NewOscillator(48000, p)
	osc.SetFrequency(1000)

	a := make([]float32, 128)
	b := make([]float32, 128)
	osc.Process(a)
	osc.Process(b)

	// Max per-sample step of a unit sine at 1 kHz / 48 kHz.
	maxStep := 2.0 * math.Pi * 1000.0 / 48000.0 * 1.1
	if d := math.Abs(float64(b[0] - a[len(a)-1])); d > maxStep {
		t.Fatalf("discontinuity between blocks: %g", d)
	}
}

func TestOscillatorDeterministic(t *testing.T) {
	p := mustPreset(t, "saw", Basic(ShapeSaw))
	mk := func() []float32 {
		osc := NewOscillator(44100, p)
		osc.SetFrequency(110)
		osc.SetMorph(0)
		out := make([]float32, 4096)
		osc.Process(out)
		return out
	}
	a := mk()
	b := mk()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic sample at %d", i)
		}
	}
}
