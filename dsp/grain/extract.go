package grain

import (
	"github.com/splitmoong/synthesis/dsp/core"
	"github.com/splitmoong/synthesis/dsp/window"
)

// Extractor pulls windowed slices out of a source buffer using circular
// indexing, so start positions before the beginning or past the end of the
// source read wrapped samples instead of failing. Window coefficients are
// cached per grain length. Not safe for concurrent use.
type Extractor struct {
	env *window.Envelope
}

// NewExtractor returns an Extractor tapering grains with the given window type.
func NewExtractor(t window.Type) *Extractor {
	return &Extractor{env: window.NewEnvelope(t)}
}

// ExtractInto fills dst with len(dst) source samples starting at start
// (wrapped into [0, len(source)) as needed) and applies the taper in place.
// An empty source yields an all-zero dst.
func (e *Extractor) ExtractInto(dst, source []float64, start int) {
	e.extractRaw(dst, source, start)
	e.env.ApplyTo(dst)
}

// Extract allocates, fills, and windows a grain of the given length.
func (e *Extractor) Extract(source []float64, start, length int) []float64 {
	if length <= 0 {
		return nil
	}

	dst := make([]float64, length)
	e.extractRaw(dst, source, start)
	e.env.ApplyTo(dst)
	return dst
}

func (e *Extractor) extractRaw(dst, source []float64, start int) {
	n := len(source)
	if n == 0 {
		core.Zero(dst)
		return
	}

	idx := core.WrapIndex(start, n)
	filled := 0
	for filled < len(dst) {
		take := n - idx
		if remain := len(dst) - filled; take > remain {
			take = remain
		}
		copy(dst[filled:filled+take], source[idx:idx+take])
		filled += take
		idx = 0
	}
}
