// Package poly provides polynomial coefficient expansion and multiplication
// routines used by filter design code.
//
// A polynomial is stored as a coefficient vector in ascending degree order:
//
//	c[0] + c[1]*x + c[2]*x^2 + ... + c[n]*x^n
//
// so a polynomial of order n occupies n+1 elements. Every routine is generic
// over [Scalar], which admits real (float32, float64) and complex
// (complex64, complex128) coefficients with a single implementation.
//
// # Expansion
//
// Root-factor products are expanded into explicit coefficients:
//
//	c := poly.ExpandRoots([]float64{2, 3})    // (x+2)(x+3)   = [6 5 1]
//	c := poly.ExpandBinomial([]float64{2, 3}) // (1+2x)(1+3x) = [1 5 6]
//
// The ...To variants write into a caller-provided slice of length n+1 and
// never allocate. Expanding an empty factor list yields the single
// coefficient [0].
//
// # Multiplication
//
// [MulTo] and [Mul] compute the direct convolution of two coefficient
// vectors for any Scalar. [MulReal] multiplies real polynomials and picks a
// vectorised direct product or an FFT product depending on operand size:
//
//	c := make([]float64, len(a)+len(b)-1)
//	err := poly.MulReal(c, a, b, poly.WithMethod(poly.MethodFFT))
//
// # Errors
//
// Length mismatches between the destination and the operands are reported
// with [ErrLengthMismatch] rather than corrupting memory. Floating-point
// special values (NaN, Inf) propagate by ordinary arithmetic.
package poly
