package algocomplex

import (
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertEqualComplex[T Number](t *testing.T, got, want Complex[T], format string, args ...any) {
	t.Helper()

	if !got.Equal(want) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

func randomInt64s(n int, seed int64) []Complex[int64] {
	rng := rand.New(rand.NewSource(seed))

	out := make([]Complex[int64], n)
	for i := range out {
		out[i] = New(rng.Int63()-rng.Int63(), rng.Int63()-rng.Int63())
	}

	return out
}

func randomFloat64s(n int, seed int64) []Complex[float64] {
	rng := rand.New(rand.NewSource(seed))

	out := make([]Complex[float64], n)
	for i := range out {
		out[i] = New(rng.NormFloat64()*1e3, rng.NormFloat64()*1e3)
	}

	return out
}

// randomSmallFloat64s returns integer-valued floats small enough that every
// product and sum stays exact in float64.
func randomSmallFloat64s(n int, seed int64) []Complex[float64] {
	rng := rand.New(rand.NewSource(seed))

	out := make([]Complex[float64], n)
	for i := range out {
		out[i] = New(float64(rng.Intn(2001)-1000), float64(rng.Intn(2001)-1000))
	}

	return out
}
