package grain

import "github.com/splitmoong/synthesis/dsp/core"

// DefaultPoolCapacity bounds the number of simultaneously sounding grains
// when no explicit capacity is configured. Density times grain duration
// rarely exceeds a few dozen with musically useful settings.
const DefaultPoolCapacity = 256

// Pool is a fixed-capacity arena of grain slots with index recycling.
// Slot sample buffers are reused across grains, so steady-state spawning
// does not allocate once every slot has seen the current grain length.
// Pool is not safe for concurrent use.
type Pool struct {
	slots  []Grain
	active []int
	free   []int
}

// NewPool returns a Pool with the given slot capacity.
// Non-positive capacities fall back to DefaultPoolCapacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}

	p := &Pool{
		slots:  make([]Grain, capacity),
		active: make([]int, 0, capacity),
		free:   make([]int, capacity),
	}
	for i := range p.free {
		p.free[i] = capacity - 1 - i
	}
	return p
}

// Acquire reserves a slot and returns its grain with Samples resized to
// length and Cursor reset. Returns nil when the pool is exhausted or
// length is not positive; callers drop the grain in that case.
func (p *Pool) Acquire(length int) *Grain {
	if length <= 0 || len(p.free) == 0 {
		return nil
	}

	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.active = append(p.active, idx)

	g := &p.slots[idx]
	g.Samples = core.EnsureLen(g.Samples, length)
	g.Cursor = 0
	return g
}

// Len returns the number of active grains.
func (p *Pool) Len() int {
	return len(p.active)
}

// Cap returns the slot capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Clear releases every active grain. Slot buffers are kept for reuse.
func (p *Pool) Clear() {
	for _, idx := range p.active {
		p.free = append(p.free, idx)
	}
	p.active = p.active[:0]
}

// compact drops finished grains from the active list, recycling their slots.
func (p *Pool) compact() {
	kept := p.active[:0]
	for _, idx := range p.active {
		if p.slots[idx].Done() {
			p.free = append(p.free, idx)
			continue
		}
		kept = append(kept, idx)
	}
	p.active = kept
}
