// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package converter

import (
	"fmt"

	"measure"
	"measure/internal/exact"
)

// rational scales by dividend/divisor; divisor > 0 and the pair is always in lowest terms.
type rational struct {
	dividend int64
	divisor  int64
}

// NewRational returns the exact converter x * dividend / divisor.
// The ratio is reduced to lowest terms; a ratio of 1 yields Identity.
func NewRational(dividend, divisor int64) (Converter, error) {
	if divisor <= 0 {
		return nil, fmt.Errorf("%w: rational divisor must be positive, got %d/%d", measure.ErrConstruction, dividend, divisor)
	}
	return reduce(dividend, divisor), nil
}

// MustRational is like NewRational but panics on an invalid divisor.
func MustRational(dividend, divisor int64) Converter {
	c, err := NewRational(dividend, divisor)
	if err != nil {
		panic(err)
	}
	return c
}

// PowerOfTen returns the exact converter x * 10^n for -18 <= n <= 18.
func PowerOfTen(n int) (Converter, error) {
	if n < -18 || n > 18 {
		return nil, fmt.Errorf("%w: 10^%d does not fit an int64 ratio", measure.ErrConstruction, n)
	}

	factor := int64(1)
	for i := 0; i < abs(n); i++ {
		factor *= 10
	}
	if n < 0 {
		return reduce(1, factor), nil
	}
	return reduce(factor, 1), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Ratio reports the exact dividend/divisor of an Identity or Rational converter.
func Ratio(c Converter) (dividend, divisor int64, ok bool) {
	switch r := c.(type) {
	case identity:
		return 1, 1, true
	case rational:
		return r.dividend, r.divisor, true
	}
	return 0, 0, false
}

// reduce expects divisor > 0.
func reduce(dividend, divisor int64) Converter {
	g := exact.GCD(dividend, divisor)
	if g < 0 {
		g = -g // |g| <= divisor, cannot overflow
	}
	if g > 1 {
		dividend /= g
		divisor /= g
	}
	if dividend == divisor {
		return Identity
	}
	return rational{dividend: dividend, divisor: divisor}
}

func (r rational) Convert(x float64) float64 {
	return x * float64(r.dividend) / float64(r.divisor)
}

func (r rational) Inverse() (Converter, error) {
	if r.dividend == 0 {
		return nil, fmt.Errorf("%w: %s has no inverse", measure.ErrConstruction, r)
	}

	dividend, divisor := r.divisor, r.dividend
	if divisor < 0 {
		var err error
		if dividend, err = exact.Negate(dividend); err != nil {
			return nil, err
		}
		if divisor, err = exact.Negate(divisor); err != nil {
			return nil, fmt.Errorf("inverting %s: %w", r, err)
		}
	}
	return rational{dividend: dividend, divisor: divisor}, nil
}

// times multiplies two ratios, cross-cancelling first so that only genuinely
// unrepresentable products fail.
func (r rational) times(other rational) (Converter, bool) {
	g1 := absGCD(r.dividend, other.divisor)
	g2 := absGCD(other.dividend, r.divisor)

	dividend, err := exact.Multiply(r.dividend/g1, other.dividend/g2)
	if err != nil {
		return nil, false
	}
	divisor, err := exact.Multiply(r.divisor/g2, other.divisor/g1)
	if err != nil {
		return nil, false
	}
	return reduce(dividend, divisor), true
}

// absGCD is the magnitude of the gcd, or 1 when both are zero.
// One operand is always a positive divisor, so the magnitude fits an int64.
func absGCD(a, b int64) int64 {
	g := exact.GCD(a, b)
	if g < 0 {
		g = -g
	}
	if g == 0 {
		return 1
	}
	return g
}

func (r rational) Concatenate(other Converter) Converter { return concatenate(r, other) }

func (r rational) IsLinear() bool             { return true }
func (r rational) IsIdentity() bool           { return false }
func (r rational) Kind() Kind                 { return KindRational }
func (r rational) Equal(other Converter) bool { return equal(r, other) }
func (r rational) sealed()                    {}

func (r rational) String() string {
	if r.divisor == 1 {
		return fmt.Sprintf("x*%d", r.dividend)
	}
	if r.dividend == 1 {
		return fmt.Sprintf("x/%d", r.divisor)
	}
	return fmt.Sprintf("x*%d/%d", r.dividend, r.divisor)
}
