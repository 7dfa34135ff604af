package poly

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is the coefficient type of a polynomial: real or complex floating
// point.
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Errors returned by polynomial routines.
var (
	ErrLengthMismatch = errors.New("poly: buffer length mismatch")
	ErrEmptyInput     = errors.New("poly: empty input")
	ErrNotImplemented = errors.New("poly: not implemented")
	ErrInvalidMethod  = errors.New("poly: invalid multiplication method")
	ErrOverlap        = errors.New("poly: destination shares memory with an operand")
)

// Order returns the order (highest degree) of a coefficient vector, or -1
// for an empty vector.
func Order[T Scalar](coeffs []T) int {
	return len(coeffs) - 1
}

// Eval evaluates an ascending-order coefficient vector at x using Horner's
// method. An empty vector evaluates to 0.
func Eval[T Scalar](coeffs []T, x T) T {
	var v T
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + coeffs[i]
	}

	return v
}

// aliases reports whether x and y share the same backing array.
func aliases[T Scalar](x, y []T) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[:cap(x)][cap(x)-1] == &y[:cap(y)][cap(y)-1]
}
