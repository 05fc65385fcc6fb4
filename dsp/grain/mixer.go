package grain

import (
	"github.com/splitmoong/synthesis/dsp/buffer"
	"github.com/splitmoong/synthesis/dsp/core"
)

// normalizeEpsilon is the silence threshold for peak normalization;
// buffers whose peak falls below it are returned as exact zeros.
const normalizeEpsilon = 1e-9

// Mixer owns the pool of currently sounding grains, advances their read
// cursors, sums their contributions, and peak-normalizes the result.
// Not safe for concurrent use; the engine serializes access.
type Mixer struct {
	pool *Pool
}

// NewMixer returns a Mixer with the given grain slot capacity.
func NewMixer(capacity int) *Mixer {
	return &Mixer{pool: NewPool(capacity)}
}

// Acquire reserves a grain slot of the given length for the caller to fill.
// Returns nil when the pool is exhausted; the grain is then simply skipped.
func (m *Mixer) Acquire(length int) *Grain {
	return m.pool.Acquire(length)
}

// Active returns the number of currently sounding grains.
func (m *Mixer) Active() int {
	return m.pool.Len()
}

// Clear drops every active grain.
func (m *Mixer) Clear() {
	m.pool.Clear()
}

// Render mixes all active grains into dst, advancing each grain's cursor
// and recycling finished ones. The mix is peak-normalized: if the summed
// peak exceeds normalizeEpsilon the buffer is scaled so its peak is 1,
// otherwise it is returned as exact silence. Normalization is a simple
// peak limiter, so perceived loudness varies buffer to buffer.
func (m *Mixer) Render(dst []float64) {
	acc := buffer.FromSlice(dst)
	acc.Zero()

	for _, idx := range m.pool.active {
		g := &m.pool.slots[idx]

		take := g.Remaining()
		if take > len(dst) {
			take = len(dst)
		}
		if take <= 0 {
			continue
		}

		acc.Accumulate(0, g.Samples[g.Cursor:g.Cursor+take])
		g.Cursor += take
	}
	m.pool.compact()

	peak := acc.Peak()
	if peak > normalizeEpsilon {
		acc.Scale(1 / peak)
	} else {
		core.Zero(dst)
	}
}
