// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic helpers for transforming and reducing slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-18 v0.2.0: Reduced to the helpers used by the statistics engine

// Package slicex provides generic slice helpers.
package slicex

import (
	"cmp"
)

// Number is the set of types Sum accepts
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map applies a function to each element and returns a new slice
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil {
		return nil
	}
	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// IsEmpty reports whether the slice has no elements
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// Min returns the minimum element (requires ordered type)
func Min[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	min := slice[0]
	for _, item := range slice[1:] {
		if item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the maximum element (requires ordered type)
func Max[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	max := slice[0]
	for _, item := range slice[1:] {
		if item > max {
			max = item
		}
	}
	return max, true
}

// Sum returns the sum of all elements. Integer sums wrap on overflow.
func Sum[T Number](slice []T) T {
	var sum T
	for _, item := range slice {
		sum += item
	}
	return sum
}
