package wavetable

import "github.com/cwbudde/algo-approx"

// NoteToFreq converts a MIDI note number to frequency in Hz.
func NoteToFreq(note int) float64 {
	const a4Freq = 440.0
	const a4Note = 69
	exponent := float32(note-a4Note) / 12.0
	return a4Freq * float64(pow2Approx(exponent))
}

func pow2Approx(x float32) float32 {
	const ln2 = 0.69314718055994530942
	return approx.FastExp(x * ln2)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
