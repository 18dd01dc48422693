// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package converter

import (
	"fmt"
	"math"

	"measure"
)

// affine shifts by a constant offset, e.g. Celsius to Kelvin.
type affine struct {
	offset float64
}

// NewAffine returns x + offset; an offset of zero yields Identity. The offset must be finite.
func NewAffine(offset float64) (Converter, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, fmt.Errorf("%w: affine offset must be finite, got %g", measure.ErrConstruction, offset)
	}
	return shift(offset), nil
}

// MustAffine is NewAffine for package-level units; it panics on a non-finite offset.
func MustAffine(offset float64) Converter {
	c, err := NewAffine(offset)
	if err != nil {
		panic(err)
	}
	return c
}

// shift expects a finite offset.
func shift(offset float64) Converter {
	if offset == 0 {
		return Identity
	}
	return affine{offset: offset}
}

func (a affine) Convert(x float64) float64 { return x + a.offset }

func (a affine) Inverse() (Converter, error) { return shift(-a.offset), nil }

func (a affine) Concatenate(other Converter) Converter { return concatenate(a, other) }

func (a affine) IsLinear() bool             { return false }
func (a affine) IsIdentity() bool           { return false }
func (a affine) Kind() Kind                 { return KindAffine }
func (a affine) Equal(other Converter) bool { return equal(a, other) }
func (a affine) sealed()                    {}

func (a affine) String() string {
	if a.offset < 0 {
		return fmt.Sprintf("x-%g", -a.offset)
	}
	return fmt.Sprintf("x+%g", a.offset)
}

type logarithm struct {
	base float64
}

type exponential struct {
	base float64
}

func checkBase(base float64) error {
	if !(base > 0) || base == 1 || math.IsInf(base, 0) {
		return fmt.Errorf("%w: logarithm base must be positive, finite and not 1, got %g", measure.ErrConstruction, base)
	}
	return nil
}

// NewLog returns log_base(x), e.g. base 10 for bels.
func NewLog(base float64) (Converter, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	return logarithm{base: base}, nil
}

// NewExp returns base^x, the inverse of NewLog(base).
func NewExp(base float64) (Converter, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	return exponential{base: base}, nil
}

func (l logarithm) Convert(x float64) float64 {
	switch l.base {
	case math.E:
		return math.Log(x)
	case 10:
		return math.Log10(x)
	case 2:
		return math.Log2(x)
	}
	return math.Log(x) / math.Log(l.base)
}

func (l logarithm) Inverse() (Converter, error)           { return exponential(l), nil }
func (l logarithm) Concatenate(other Converter) Converter { return concatenate(l, other) }
func (l logarithm) IsLinear() bool                        { return false }
func (l logarithm) IsIdentity() bool                      { return false }
func (l logarithm) Kind() Kind                            { return KindLog }
func (l logarithm) Equal(other Converter) bool            { return equal(l, other) }
func (l logarithm) String() string                        { return fmt.Sprintf("log%g(x)", l.base) }
func (l logarithm) sealed()                               {}

func (e exponential) Convert(x float64) float64 {
	switch e.base {
	case math.E:
		return math.Exp(x)
	case 2:
		return math.Exp2(x)
	}
	return math.Pow(e.base, x)
}

func (e exponential) Inverse() (Converter, error)           { return logarithm(e), nil }
func (e exponential) Concatenate(other Converter) Converter { return concatenate(e, other) }
func (e exponential) IsLinear() bool                        { return false }
func (e exponential) IsIdentity() bool                      { return false }
func (e exponential) Kind() Kind                            { return KindExp }
func (e exponential) Equal(other Converter) bool            { return equal(e, other) }
func (e exponential) String() string                        { return fmt.Sprintf("%g^x", e.base) }
func (e exponential) sealed()                               {}
