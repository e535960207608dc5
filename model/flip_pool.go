package model

import "sync"

// flipPool recycles the index buffers Tick collects flips into.
type flipPool struct {
	pool sync.Pool
}

var flipBuffers = newFlipPool()

func newFlipPool() *flipPool {
	return &flipPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]int, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *flipPool) Get() *[]int {
	buf := p.pool.Get().(*[]int)
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool
func (p *flipPool) Put(buf *[]int) {
	p.pool.Put(buf)
}
