// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package converter implements the algebra of unit converters: pure numeric transforms
// between two units of the same dimension, which compose, invert and simplify.
//
// The set of converters is closed. Each is one of the kinds below, and every
// variant is an immutable comparable value, so converters may be compared with
// Equal or == and used as map keys.
//
//	Identity   x
//	Rational   x * dividend / divisor, divisor > 0, always reduced
//	Pi         x * π
//	PiInverse  x / π
//	Affine     x + offset
//	Log        log_base(x)
//	Exp        base^x
//	Chain      outer(inner(x))
//
// a.Concatenate(b) applies b first, then a.
package converter

import (
	"fmt"
	"math"
)

type Kind int

const (
	KindIdentity Kind = iota
	KindRational
	KindPi
	KindPiInverse
	KindAffine
	KindLog
	KindExp
	KindChain
)

var kindNames = [...]string{"identity", "rational", "pi", "pi-inverse", "affine", "log", "exp", "chain"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Converter transforms a value expressed in one unit into the same amount expressed in another.
type Converter interface {
	// Convert applies the transform.
	Convert(x float64) float64

	// Inverse returns the converter undoing this one.
	Inverse() (Converter, error)

	// Concatenate returns the converter applying other first, then this one.
	Concatenate(other Converter) Converter

	// IsLinear reports whether Convert(0) == 0, i.e. a pure scale.
	IsLinear() bool

	IsIdentity() bool
	Equal(other Converter) bool
	Kind() Kind
	String() string

	sealed()
}

// Identity leaves values unchanged.
var Identity Converter = identity{}

type identity struct{}

func (identity) Convert(x float64) float64 { return x }

func (identity) Inverse() (Converter, error) { return Identity, nil }

func (c identity) Concatenate(other Converter) Converter { return concatenate(c, other) }

func (identity) IsLinear() bool   { return true }
func (identity) IsIdentity() bool { return true }
func (identity) Kind() Kind       { return KindIdentity }
func (identity) String() string   { return "x" }
func (identity) sealed()          {}

func (c identity) Equal(other Converter) bool { return equal(c, other) }

// equal is structural: every variant is a comparable struct, stateless variants compare equal to themselves.
func equal(a, b Converter) bool {
	if b == nil {
		return false
	}
	return a == b
}

// concatenate returns the converter applying b first, then a. Both are flattened into
// their steps, adjacent steps are merged wherever their kinds allow it, and the rest is
// folded back into a left-nested chain, so equal step sequences give equal converters.
func concatenate(a, b Converter) Converter {
	if b == nil {
		return a
	}

	var stack []Converter
	for _, step := range append(Steps(b), Steps(a)...) {
		stack = push(stack, step)
	}

	if len(stack) == 0 {
		return Identity
	}
	c := stack[0]
	for _, step := range stack[1:] {
		c = chain{outer: step, inner: c}
	}
	return c
}

// push appends step to the applied steps, merging it into the last one while possible.
func push(stack []Converter, step Converter) []Converter {
	for !step.IsIdentity() {
		if len(stack) == 0 {
			return append(stack, step)
		}
		merged, ok := simplify(step, stack[len(stack)-1])
		if !ok {
			return append(stack, step)
		}
		stack = stack[:len(stack)-1]
		step = merged
	}
	return stack
}

// simplify merges two steps, b applied first, into a single step if their kinds allow it.
func simplify(a, b Converter) (Converter, bool) {
	switch x := a.(type) {
	case rational:
		if y, ok := b.(rational); ok {
			return x.times(y)
		}
	case pi:
		if _, ok := b.(piInverse); ok {
			return Identity, true
		}
	case piInverse:
		if _, ok := b.(pi); ok {
			return Identity, true
		}
	case affine:
		// a sum beyond float64 range stays a chain
		if y, ok := b.(affine); ok {
			if sum := x.offset + y.offset; !math.IsInf(sum, 0) {
				return shift(sum), true
			}
		}
	case logarithm:
		if y, ok := b.(exponential); ok && x.base == y.base {
			return Identity, true
		}
	case exponential:
		if y, ok := b.(logarithm); ok && x.base == y.base {
			return Identity, true
		}
	case identity, chain:
	default:
		panic(fmt.Sprintf("unknown converter %T", a))
	}

	return nil, false
}
