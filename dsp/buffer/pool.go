package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse so repeated polynomial
// products do not allocate scratch rows.
type Pool[T Element] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T Element]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested length.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()

	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}

	p.pool.Put(b)
}
