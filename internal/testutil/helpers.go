// Package testutil provides reusable test helper functions for spline tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tolerances for comparisons against independent solvers.
const (
	ContinuityTolerance = 1e-9
	OracleTolerance     = 1e-9
)

// ReferenceSamples is the four-point dataset the spline has always been
// demonstrated with.
func ReferenceSamples() []float64 {
	return []float64{2.7, 6, 5, 6.5}
}

// SineSamples returns n samples of sin(2πk/period).
func SineSamples(n int, period float64) []float64 {
	s := make([]float64, n)
	for k := range s {
		s[k] = math.Sin(2 * math.Pi * float64(k) / period)
	}
	return s
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertSliceInDelta verifies element-wise closeness of two equal-length slices.
func AssertSliceInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tolerance || math.IsNaN(actual[i]) {
			return assert.Fail(t, fmt.Sprintf("index %d: expected %v, got %v (tolerance %v)",
				i, expected[i], actual[i], tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertBitEqual verifies that two slices hold bit-identical values.
// NaN compares equal to NaN with the same payload.
func AssertBitEqual(t *testing.T, expected, actual []float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Float64bits(expected[i]) != math.Float64bits(actual[i]) {
			return assert.Fail(t, fmt.Sprintf("values differ at index %d: expected %v (%#x), got %v (%#x)",
				i, expected[i], math.Float64bits(expected[i]),
				actual[i], math.Float64bits(actual[i])), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if !(v >= minVal && v <= maxVal) {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if !(relError <= tolerance) {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}
