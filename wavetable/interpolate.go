package wavetable

// Interpolate blends two frames linearly: out[i] = a[i]*(1-t) + b[i]*t for
// both coefficient buffers. The result is a new, independently owned frame;
// neither input is touched. t is not clamped — extrapolation outside [0,1]
// is well-defined and the caller's choice.
func Interpolate(a, b *Frame, t float64) *Frame {
	out := newFrame()
	u := 1.0 - t
	for i := 0; i < TableSize; i++ {
		out.Real[i] = a.Real[i]*u + b.Real[i]*t
		out.Imag[i] = a.Imag[i]*u + b.Imag[i]*t
	}
	return out
}
