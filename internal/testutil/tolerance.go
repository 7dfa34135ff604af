// Package testutil holds assertions and deterministic fixtures shared by
// the polynomial tests.
package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
	"testing"

	"golang.org/x/exp/constraints"
)

// Number is any real or complex floating-point coefficient type.
type Number interface {
	constraints.Float | constraints.Complex
}

// Magnitude returns |v| as float64 for real and complex values alike.
func Magnitude[T Number](v T) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Abs(rv.Float())
	default:
		return cmplx.Abs(rv.Complex())
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps (absolute tolerance).
func RequireSliceNearlyEqual[T Number](t testing.TB, got, want []T, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := Magnitude(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element (or component) is NaN or Inf.
func RequireFinite[T Number](t testing.TB, data []T) {
	t.Helper()

	for i, v := range data {
		m := Magnitude(v)
		if math.IsNaN(m) || math.IsInf(m, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		if d := Magnitude(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
