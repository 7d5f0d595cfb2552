package arith

import (
	"math"
	"testing"
)

// AssertCommutative fails t if op(a, b) != op(b, a) for any pair of samples.
func AssertCommutative[T any](t *testing.T, op func(a, b T) T, eq func(a, b T) bool, samples []T) {
	t.Helper()

	if err := CheckCommutative(op, eq, samples); err != nil {
		t.Errorf("Not commutative: %v", err)
		return
	}

	t.Logf("✓ Commutative over %d samples", len(samples))
}

// AssertAssociative fails t if op(op(a, b), c) != op(a, op(b, c)) for any
// triple of samples.
func AssertAssociative[T any](t *testing.T, op func(a, b T) T, eq func(a, b T) bool, samples []T) {
	t.Helper()

	if err := CheckAssociative(op, eq, samples); err != nil {
		t.Errorf("Not associative: %v", err)
		return
	}

	t.Logf("✓ Associative over %d samples", len(samples))
}

// AssertIdentity fails t if zero is not a two-sided identity of op.
func AssertIdentity[T any](t *testing.T, op func(a, b T) T, eq func(a, b T) bool, zero T, samples []T) {
	t.Helper()

	if err := CheckIdentity(op, eq, zero, samples); err != nil {
		t.Errorf("No identity: %v", err)
		return
	}

	t.Logf("✓ Identity %v over %d samples", zero, len(samples))
}

// AssertFloatNear fails t if got and want differ by more than tol.
func AssertFloatNear(t *testing.T, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Errorf("Expected %v ± %v, got %v", want, tol, got)
	}
}

// AssertComplexNear fails t if either component of got differs from the
// expected one by more than tol.
func AssertComplexNear(t *testing.T, got Complex, wantReal, wantImag, tol float64) {
	t.Helper()

	if math.Abs(float64(got.Real())-wantReal) > tol || math.Abs(float64(got.Imag())-wantImag) > tol {
		t.Errorf("Expected %v + %vi (± %v), got %s", wantReal, wantImag, tol, got)
	}
}
