package buffer

import "golang.org/x/exp/constraints"

// Element is the set of coefficient types a Buffer can hold.
type Element interface {
	constraints.Float | constraints.Complex
}

// Buffer wraps a coefficient slice with reuse-friendly semantics.
type Buffer[T Element] struct {
	data []T
}

// New returns a zero-filled Buffer of the given length.
func New[T Element](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}

	return &Buffer[T]{data: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
func FromSlice[T Element](s []T) *Buffer[T] {
	return &Buffer[T]{data: s}
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the current number of coefficients.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}

	oldLen := len(b.data)
	if n > cap(b.data) {
		s := make([]T, n)
		copy(s, b.data)
		b.data = s

		return
	}

	b.data = b.data[:n]
	if n > oldLen {
		clear(b.data[oldLen:n])
	}
}

// Zero sets all coefficients to 0.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}
