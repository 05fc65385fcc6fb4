package pitch

import "github.com/splitmoong/synthesis/dsp/interp"

// ResamplingShifter shifts grain pitch by reading the grain at a different
// rate. Shifting up shortens the grain, shifting down lengthens it, so the
// textural density changes along with the pitch — the classic granular
// resampling trade-off.
type ResamplingShifter struct{}

// NewResamplingShifter returns a stateless resampling shifter.
func NewResamplingShifter() *ResamplingShifter {
	return &ResamplingShifter{}
}

// Process returns the grain resampled by the semitone ratio.
func (r *ResamplingShifter) Process(grain []float64, semitones float64) []float64 {
	if len(grain) == 0 {
		return grain
	}

	ratio := Ratio(semitones)
	if isIdentity(ratio) {
		return grain
	}

	return interp.Resample(grain, ratio)
}
