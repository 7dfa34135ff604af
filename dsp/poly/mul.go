package poly

import "fmt"

// Mul multiplies two polynomials given as ascending coefficient vectors.
// The result has order Order(a)+Order(b), i.e. len(a)+len(b)-1
// coefficients.
func Mul[T Scalar](a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	c := make([]T, len(a)+len(b)-1)
	mulDirect(c, a, b)

	return c, nil
}

// MulTo is Mul writing into dst, which must have length len(a)+len(b)-1.
// dst is zeroed before the products are accumulated, so it must not share
// a backing array with a or b; such calls return ErrOverlap.
func MulTo[T Scalar](dst, a, b []T) error {
	if err := checkMul(dst, a, b); err != nil {
		return err
	}

	mulDirect(dst, a, b)

	return nil
}

func checkMul[T Scalar](dst, a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}

	if want := len(a) + len(b) - 1; len(dst) != want {
		return fmt.Errorf("%w: dst has %d coefficients, want %d", ErrLengthMismatch, len(dst), want)
	}

	if aliases(dst, a) || aliases(dst, b) {
		return ErrOverlap
	}

	return nil
}

func mulDirect[T Scalar](c, a, b []T) {
	clear(c)

	for i, ai := range a {
		for j, bj := range b {
			c[i+j] += ai * bj
		}
	}
}
