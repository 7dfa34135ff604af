package testutil

import "math/rand"

// DeterministicRoots returns n real values uniformly drawn from
// [-scale, scale] with a fixed seed.
func DeterministicRoots(seed int64, scale float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}

	return out
}

// DeterministicComplexRoots returns n complex values whose real and
// imaginary parts are drawn from [-scale, scale] with a fixed seed.
func DeterministicComplexRoots(seed int64, scale float64, n int) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		re := (rng.Float64()*2 - 1) * scale
		im := (rng.Float64()*2 - 1) * scale
		out[i] = complex(re, im)
	}

	return out
}

// ToComplex widens a real slice to complex128 with zero imaginary parts.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}

	return out
}
