// Package seq holds the slice helpers the drills use to transform their fixed inputs.
package seq

import "math"

// Map applies fn to every element and returns the results in the same order.
func Map[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps the elements for which keep reports true.
// The result is never nil so callers can print it as an empty list.
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// ForEach visits every element for its side effect only.
func ForEach[T any](in []T, fn func(T)) {
	for _, v := range in {
		fn(v)
	}
}

// MaxSquareOperand is the largest magnitude whose square still fits in an int.
var MaxSquareOperand = int(math.Sqrt(float64(math.MaxInt)))

// Square is the transformation the map drill applies. It wraps silently
// for |x| > MaxSquareOperand; config.Validate rejects such inputs.
func Square(x int) int {
	return x * x
}

// GreaterThan returns a predicate matching values strictly above threshold.
func GreaterThan(threshold int) func(int) bool {
	return func(x int) bool {
		return x > threshold
	}
}
