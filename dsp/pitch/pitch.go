package pitch

import "math"

const (
	// minRatio and maxRatio bound the playback ratio to two octaves in
	// either direction; semitone inputs are clamped accordingly.
	minRatio = 0.25
	maxRatio = 4.0

	identityEps = 1e-9
)

// Processor shifts the pitch of a single grain. Implementations return the
// shifted samples, which may alias or replace the input slice, and may
// change its length. A semitone value of zero returns the grain unchanged.
type Processor interface {
	Process(grain []float64, semitones float64) []float64
}

var (
	_ Processor = (*ResamplingShifter)(nil)
	_ Processor = (*SpectralShifter)(nil)
)

// Ratio converts a semitone offset to a playback rate ratio, clamped to
// the supported range.
func Ratio(semitones float64) float64 {
	if math.IsNaN(semitones) || math.IsInf(semitones, 0) {
		return 1
	}

	ratio := math.Pow(2, semitones/12.0)
	if ratio < minRatio {
		return minRatio
	}
	if ratio > maxRatio {
		return maxRatio
	}
	return ratio
}

func isIdentity(ratio float64) bool {
	return math.Abs(ratio-1) <= identityEps
}
