package poly

import (
	"fmt"
	"slices"
)

// ExpandBinomial expands (1+x*a[0]) * (1+x*a[1]) * ... * (1+x*a[n-1]) into
// n+1 ascending coefficients. The constant term of the result is 1. An empty
// factor list yields [0].
func ExpandBinomial[T Scalar](factors []T) []T {
	c := make([]T, len(factors)+1)
	expandBinomial(c, factors)

	return c
}

// ExpandBinomialTo is ExpandBinomial writing into dst, which must have
// length len(factors)+1 and must not share a backing array with factors.
// dst is fully overwritten.
func ExpandBinomialTo[T Scalar](dst, factors []T) error {
	if err := checkExpand(dst, factors); err != nil {
		return err
	}

	expandBinomial(dst, factors)

	return nil
}

// ExpandRoots expands (x+a[0]) * (x+a[1]) * ... * (x+a[n-1]) into n+1
// ascending coefficients. The result is monic: c[n] == 1. An empty root list
// yields [0].
func ExpandRoots[T Scalar](roots []T) []T {
	c := make([]T, len(roots)+1)
	expandRoots(c, roots)

	return c
}

// ExpandRootsTo is ExpandRoots writing into dst, which must have length
// len(roots)+1 and must not share a backing array with roots. dst is fully
// overwritten.
func ExpandRootsTo[T Scalar](dst, roots []T) error {
	if err := checkExpand(dst, roots); err != nil {
		return err
	}

	expandRoots(dst, roots)

	return nil
}

// ExpandRootsScaledTo is reserved for expanding
// (x*b[0]-a[0]) * (x*b[1]-a[1]) * ... * (x*b[n-1]-a[n-1]).
//
// The expansion is not implemented yet: after validating lengths it
// zero-fills dst (length len(roots)+1) and returns ErrNotImplemented.
func ExpandRootsScaledTo[T Scalar](dst, roots, scales []T) error {
	if len(scales) != len(roots) {
		return fmt.Errorf("%w: %d scales for %d roots", ErrLengthMismatch, len(scales), len(roots))
	}

	if err := checkExpandLen(len(dst), len(roots)); err != nil {
		return err
	}

	clear(dst)

	return fmt.Errorf("%w: scaled root expansion", ErrNotImplemented)
}

func checkExpand[T Scalar](dst, factors []T) error {
	if err := checkExpandLen(len(dst), len(factors)); err != nil {
		return err
	}

	if aliases(dst, factors) {
		return ErrOverlap
	}

	return nil
}

func checkExpandLen(dstLen, n int) error {
	if dstLen != n+1 {
		return fmt.Errorf("%w: dst has %d coefficients, want %d", ErrLengthMismatch, dstLen, n+1)
	}

	return nil
}

// expandRoots accumulates the product of (x+a[i]) in ascending order.
func expandRoots[T Scalar](c, a []T) {
	if len(a) == 0 {
		c[0] = 0
		return
	}

	c[0] = 1
	clear(c[1:])

	// j must run downwards: c[j-1] is read before it is overwritten.
	for i, ai := range a {
		for j := i + 1; j > 0; j-- {
			c[j] = ai*c[j] + c[j-1]
		}

		c[0] *= ai
	}
}

// expandBinomial runs the root recurrence, which leaves the coefficients of
// prod(1+x*a[i]) in descending order, then flips them.
func expandBinomial[T Scalar](c, a []T) {
	expandRoots(c, a)

	if len(a) > 0 {
		slices.Reverse(c)
	}
}
