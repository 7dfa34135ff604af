package poly

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-poly/dsp/buffer"
)

// minFFTSize keeps tiny products on a plan size every FFT backend accepts.
const minFFTSize = 16

// vecThreshold is the operand length from which the direct product uses
// vectorised row updates instead of the scalar double loop.
const vecThreshold = 4

var rowPool = buffer.NewPool[float64]()

// MulReal multiplies two real polynomials into dst, which must have length
// len(a)+len(b)-1 and must not share a backing array with a or b. The
// evaluation method is chosen by opts; see Config.
//
// Results of MethodFFT differ from the exact convolution sum by rounding
// of order 1e-15 relative to the largest coefficient. A NaN or Inf operand
// spreads to every FFT output, so MethodAuto evaluates non-finite operands
// directly.
func MulReal(dst, a, b []float64, opts ...Option) error {
	if err := checkMul(dst, a, b); err != nil {
		return err
	}

	cfg := ApplyOptions(opts...)

	method := cfg.resolve(len(a), len(b))
	if cfg.Method == MethodAuto && method == MethodFFT && !(allFinite(a) && allFinite(b)) {
		method = MethodDirect
	}

	switch method {
	case MethodFFT:
		return mulFFTReal(dst, a, b)
	default:
		mulDirectReal(dst, a, b)
		return nil
	}
}

// MulFFT multiplies two complex polynomials through the FFT and returns the
// len(a)+len(b)-1 product coefficients.
func MulFFT(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a) + len(b) - 1

	fa, fb, plan, err := newFFTOperands(n)
	if err != nil {
		return nil, err
	}

	copy(fa, a)
	copy(fb, b)

	if err := fftProduct(plan, fa, fb); err != nil {
		return nil, err
	}

	return fa[:n:n], nil
}

func mulDirectReal(dst, a, b []float64) {
	clear(dst)

	// Iterate the longer operand in the outer loop so rows stay long.
	if len(b) > len(a) {
		a, b = b, a
	}

	m := len(b)
	if m < vecThreshold {
		for i, ai := range a {
			for j, bj := range b {
				dst[i+j] += ai * bj
			}
		}

		return
	}

	row := rowPool.Get(m)
	defer rowPool.Put(row)

	tmp := row.Data()
	for i, ai := range a {
		vecmath.ScaleBlock(tmp, b, ai)
		vecmath.AddBlockInPlace(dst[i:i+m], tmp)
	}
}

func mulFFTReal(dst, a, b []float64) error {
	fa, fb, plan, err := newFFTOperands(len(dst))
	if err != nil {
		return err
	}

	for i, v := range a {
		fa[i] = complex(v, 0)
	}

	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := fftProduct(plan, fa, fb); err != nil {
		return err
	}

	for i := range dst {
		dst[i] = real(fa[i])
	}

	return nil
}

func newFFTOperands(n int) ([]complex128, []complex128, *algofft.Plan[complex128], error) {
	size := nextPowerOf2(max(n, minFFTSize))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("poly: failed to create FFT plan: %w", err)
	}

	return make([]complex128, size), make([]complex128, size), plan, nil
}

// fftProduct leaves the circular convolution of fa and fb in fa.
func fftProduct(plan *algofft.Plan[complex128], fa, fb []complex128) error {
	if err := plan.Forward(fa, fa); err != nil {
		return fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	if err := plan.Forward(fb, fb); err != nil {
		return fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return fmt.Errorf("poly: inverse FFT failed: %w", err)
	}

	return nil
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
