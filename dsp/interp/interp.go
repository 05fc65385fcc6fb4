package interp

// Linear interpolates between x0 and x1 at fraction t in [0,1].
func Linear(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Resample reads src at the given rate ratio using Hermite interpolation
// and returns the resampled signal. A ratio of 2 reads twice as fast and
// halves the length (one octave up when played back at the original rate).
// Edge neighbors are clamped to the first and last sample.
func Resample(src []float64, ratio float64) []float64 {
	if len(src) == 0 || ratio <= 0 {
		return nil
	}
	if ratio == 1 {
		out := make([]float64, len(src))
		copy(out, src)
		return out
	}

	outLen := int(float64(len(src)) / ratio)
	if outLen < 1 {
		outLen = 1
	}

	out := make([]float64, outLen)
	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := pos - float64(idx)

		out[i] = Hermite4(frac,
			at(src, idx-1),
			at(src, idx),
			at(src, idx+1),
			at(src, idx+2),
		)
	}

	return out
}

func at(src []float64, i int) float64 {
	if i < 0 {
		return src[0]
	}
	if i >= len(src) {
		return src[len(src)-1]
	}
	return src[i]
}
