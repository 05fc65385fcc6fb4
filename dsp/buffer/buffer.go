package buffer

import "github.com/cwbudde/algo-vecmath"

// Buffer wraps a float64 slice with reuse-friendly semantics. The engine
// uses it for mix accumulators; use Samples() to bridge to raw slices.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// Accumulate adds src into the buffer starting at offset. The portion of
// src that would extend past the buffer end is ignored.
func (b *Buffer) Accumulate(offset int, src []float64) {
	if offset < 0 || offset >= len(b.samples) {
		return
	}

	n := len(b.samples) - offset
	if len(src) < n {
		n = len(src)
	}
	if n <= 0 {
		return
	}

	vecmath.AddBlockInPlace(b.samples[offset:offset+n], src[:n])
}

// Peak returns the largest absolute sample value.
func (b *Buffer) Peak() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	return vecmath.MaxAbs(b.samples)
}

// Scale multiplies every sample by factor in place.
func (b *Buffer) Scale(factor float64) {
	vecmath.ScaleBlockInPlace(b.samples, factor)
}
