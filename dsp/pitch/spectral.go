package pitch

import (
	algofft "github.com/MeKo-Christian/algo-fft"
)

// SpectralShifter shifts grain pitch in the frequency domain by moving
// spectrum bins, preserving grain length. Each grain is transformed as a
// single frame (zero-padded to a power of two), so this is a coarse
// whole-grain shift rather than a phase-vocoder STFT; grains are short and
// already tapered, which keeps the artifacts acceptable.
//
// Plans and scratch buffers are cached per FFT size. Not safe for
// concurrent use.
type SpectralShifter struct {
	plans   map[int]*algofft.Plan[complex128]
	scratch map[int][]complex128
}

// NewSpectralShifter returns a spectral shifter with empty plan caches.
func NewSpectralShifter() *SpectralShifter {
	return &SpectralShifter{
		plans:   make(map[int]*algofft.Plan[complex128]),
		scratch: make(map[int][]complex128),
	}
}

// Process returns the grain with its spectrum bins shifted by the semitone
// ratio. The output has the same length as the input. If an FFT plan
// cannot be created the grain is returned unshifted.
func (s *SpectralShifter) Process(grain []float64, semitones float64) []float64 {
	if len(grain) == 0 {
		return grain
	}

	ratio := Ratio(semitones)
	if isIdentity(ratio) {
		return grain
	}

	fftSize := nextPowerOf2(len(grain))

	plan, in, out, err := s.buffers(fftSize)
	if err != nil {
		return grain
	}

	for i := range in {
		if i < len(grain) {
			in[i] = complex(grain[i], 0)
		} else {
			in[i] = 0
		}
	}

	if err := plan.Forward(in, in); err != nil {
		return grain
	}

	shiftBins(out, in, ratio)

	if err := plan.Inverse(out, out); err != nil {
		return grain
	}

	for i := range grain {
		grain[i] = real(out[i])
	}
	return grain
}

func (s *SpectralShifter) buffers(fftSize int) (*algofft.Plan[complex128], []complex128, []complex128, error) {
	plan, ok := s.plans[fftSize]
	if !ok {
		var err error
		plan, err = algofft.NewPlan64(fftSize)
		if err != nil {
			return nil, nil, nil, err
		}
		s.plans[fftSize] = plan
	}

	buf, ok := s.scratch[fftSize]
	if !ok {
		buf = make([]complex128, 2*fftSize)
		s.scratch[fftSize] = buf
	}

	return plan, buf[:fftSize], buf[fftSize:], nil
}

// shiftBins maps every positive-frequency bin k of src to bin
// round(k*ratio) of dst and mirrors the result so the inverse transform
// stays real-valued.
func shiftBins(dst, src []complex128, ratio float64) {
	n := len(src)
	half := n / 2

	for i := range dst {
		dst[i] = 0
	}

	dst[0] = src[0]
	for k := 1; k <= half; k++ {
		j := int(float64(k)*ratio + 0.5)
		if j < 1 || j > half {
			continue
		}
		dst[j] += src[k]
	}

	for j := 1; j < half; j++ {
		re := real(dst[j])
		im := imag(dst[j])
		dst[n-j] = complex(re, -im)
	}
	if half > 0 {
		dst[half] = complex(real(dst[half]), 0)
	}
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
