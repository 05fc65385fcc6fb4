package buffer

import "sync"

// Pool recycles render-block Buffers so a steady stream of fixed-size
// audio callbacks settles into zero allocations. Blocks handed out by Get
// come back via Put once their contents have been consumed.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return &Buffer{} },
		},
	}
}

// Get returns a zeroed Buffer of the given length, reusing a recycled
// block when one of sufficient capacity is available.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put recycles b. The caller must not touch b afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
