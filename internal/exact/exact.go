// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package exact provides int64 arithmetic that reports overflow instead of wrapping.
package exact

import (
	"fmt"
	"math"

	"measure"
)

// Negate returns -a, failing for math.MinInt64 whose negation cannot be represented.
func Negate(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("%w: cannot negate %d", measure.ErrOverflow, a)
	}
	return -a, nil
}

func Add(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", measure.ErrOverflow, a, b)
	}
	return sum, nil
}

func Subtract(a, b int64) (int64, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, fmt.Errorf("%w: %d - %d", measure.ErrOverflow, a, b)
	}
	return diff, nil
}

func Multiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", measure.ErrOverflow, a, b)
	}
	return product, nil
}

// DivideRound returns a/b rounded half away from zero.
func DivideRound(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", measure.ErrDivisionByZero, a)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("%w: %d / %d", measure.ErrOverflow, a, b)
	}

	quotient, remainder := a/b, a%b
	if remainder == 0 {
		return quotient, nil
	}

	// compare |r| against |b| - |r| in unsigned space, |b| may be 2^63
	absRemainder, absDivisor := magnitude(remainder), magnitude(b)
	if absRemainder >= absDivisor-absRemainder {
		if (a < 0) != (b < 0) {
			quotient--
		} else {
			quotient++
		}
	}
	return quotient, nil
}

func magnitude(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}
	return uint64(a)
}

// GCD is the Euclidean greatest common divisor, GCD(a, 0) = a and GCD(0, b) = b.
// The sign of the result follows Go's truncated remainder and may be negative when
// an operand is negative; callers reducing a ratio divide by its magnitude.
func GCD(a, b int64) int64 {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63 // exclusive
)

// FromFloat rounds f half away from zero and checks it lies within int64.
func FromFloat(f float64) (int64, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN is not an integer", measure.ErrOverflow)
	}
	r := math.Round(f)
	if r < minInt64Float || r >= maxInt64Float {
		return 0, fmt.Errorf("%w: %g outside int64 range", measure.ErrOverflow, f)
	}
	return int64(r), nil
}
