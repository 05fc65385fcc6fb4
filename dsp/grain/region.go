package grain

import "github.com/splitmoong/synthesis/dsp/core"

// Region is the active loop sub-range of the source, in samples.
// Start is inclusive, End exclusive.
type Region struct {
	Start int
	End   int
}

// Duration returns the loop length in samples, never less than one so that
// playhead arithmetic stays well-defined.
func (r Region) Duration() int {
	d := r.End - r.Start
	if d < 1 {
		return 1
	}
	return d
}

// ComputeRegion derives the loop region from the source length and the
// start/length percentage parameters. For an empty source it returns the
// zero Region.
func ComputeRegion(totalSamples, startPct, lengthPct int) Region {
	if totalSamples <= 0 {
		return Region{}
	}

	start := core.ClampInt(totalSamples*startPct/100, 0, totalSamples-1)

	end := start + Length(totalSamples, lengthPct)
	if end > totalSamples {
		end = totalSamples
	}

	return Region{Start: start, End: end}
}

// Length returns the grain length in samples for the given length
// percentage, never less than one.
func Length(totalSamples, lengthPct int) int {
	n := totalSamples * lengthPct / 100
	if n < 1 {
		n = 1
	}
	return n
}
