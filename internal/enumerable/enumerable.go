// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package enumerable has small generic slice helpers.
package enumerable

// Filter returns the elements of slice that keep returns true for, in order.
func Filter[T any](slice []T, keep func(T) bool) []T {
	var kept []T
	for _, elem := range slice {
		if keep(elem) {
			kept = append(kept, elem)
		}
	}
	return kept
}

// Any reports whether match holds for some element of slice.
func Any[T any](slice []T, match func(T) bool) bool {
	for _, elem := range slice {
		if match(elem) {
			return true
		}
	}
	return false
}

func Map[T, R any](slice []T, f func(T) R) []R {
	out := make([]R, 0, len(slice))
	for _, elem := range slice {
		out = append(out, f(elem))
	}
	return out
}

// Reduce folds slice left to right, stopping at the first error.
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) (R, error)) (R, error) {
	result := initial
	for _, elem := range slice {
		var err error
		if result, err = reducer(result, elem); err != nil {
			return result, err
		}
	}
	return result, nil
}
