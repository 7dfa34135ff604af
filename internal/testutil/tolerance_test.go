package testutil

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	if got := Magnitude(-2.5); got != 2.5 {
		t.Fatalf("Magnitude(-2.5) = %v, want 2.5", got)
	}

	if got := Magnitude(float32(-1)); got != 1 {
		t.Fatalf("Magnitude(float32(-1)) = %v, want 1", got)
	}

	if got := Magnitude(complex(3, 4)); got != 5 {
		t.Fatalf("Magnitude(3+4i) = %v, want 5", got)
	}

	type coeff float64
	if got := Magnitude(coeff(-7)); got != 7 {
		t.Fatalf("Magnitude(coeff(-7)) = %v, want 7", got)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffComplex(t *testing.T) {
	a := []complex128{1, 2i}
	b := []complex128{1, 2i + 0.5}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []complex64{1, 1i}, []complex64{1, 1i}, 0)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-9)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
	RequireFinite(t, []complex128{complex(1, -1)})
}
