// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package unit defines units of measure: a display symbol, a Dimension, and the
// converter from the unit to the system (coherent SI) unit of that dimension.
//
// Units compose with Multiply, Divide, Inverse and Pow into derived units whose
// dimension is the product of the operands' dimensions. Only compatible units,
// those sharing a dimension, can be converted into each other.
package unit

import (
	"fmt"
	"strings"

	"measure"
	"measure/converter"
)

const dot = "·"

// Unit is an immutable value; the zero Unit is One.
type Unit struct {
	symbol    string
	dimension Dimension
	toSystem  converter.Converter
}

// One is the dimensionless unit of pure numbers.
var One = Unit{}

// New returns the system unit of dimension, e.g. New("m", Length.Dimension()).
func New(symbol string, dimension Dimension) Unit {
	return Unit{symbol: symbol, dimension: dimension, toSystem: converter.Identity}
}

// Transform derives a unit whose values map into u through c, e.g.
// Meter.Transform("km", converter.MustRational(1000, 1)).
func (u Unit) Transform(symbol string, c converter.Converter) Unit {
	return Unit{symbol: symbol, dimension: u.dimension, toSystem: u.SystemConverter().Concatenate(c)}
}

// WithSymbol returns u under another symbol, e.g. kg·m/s^2 as N.
func (u Unit) WithSymbol(symbol string) Unit {
	u.symbol = symbol
	return u
}

func (u Unit) Symbol() string       { return u.symbol }
func (u Unit) Dimension() Dimension { return u.dimension }
func (u Unit) String() string       { return u.symbol }

// SystemConverter converts values in u to the system unit of its dimension.
func (u Unit) SystemConverter() converter.Converter {
	if u.toSystem == nil {
		return converter.Identity
	}
	return u.toSystem
}

func (u Unit) IsCompatible(other Unit) bool {
	return u.dimension == other.dimension
}

func (u Unit) Equal(other Unit) bool {
	return u.symbol == other.symbol &&
		u.dimension == other.dimension &&
		u.SystemConverter().Equal(other.SystemConverter())
}

// ConverterTo returns the converter from values in u to values in target.
func (u Unit) ConverterTo(target Unit) (converter.Converter, error) {
	if !u.IsCompatible(target) {
		return nil, fmt.Errorf("%w: cannot convert %s [%s] to %s [%s]",
			measure.ErrIncompatibleDimension, u.label(), u.dimension, target.label(), target.dimension)
	}
	if u.Equal(target) {
		return converter.Identity, nil
	}

	fromSystem, err := target.SystemConverter().Inverse()
	if err != nil {
		return nil, fmt.Errorf("converting %s to %s: %w", u.label(), target.label(), err)
	}
	return fromSystem.Concatenate(u.SystemConverter()), nil
}

func (u Unit) label() string {
	if u.symbol == "" {
		return "1"
	}
	return u.symbol
}

// scale is the multiplicative part of the system converter. Products of units scale
// values; offsets (°C) and logarithmic steps do not distribute over multiplication and
// are dropped, so °C·m composes like K·m.
func (u Unit) scale() converter.Converter {
	c := converter.Identity
	for _, step := range converter.Steps(u.SystemConverter()) {
		if step.IsLinear() {
			c = step.Concatenate(c)
		}
	}
	return c
}

func (u Unit) Multiply(other Unit) Unit {
	return Unit{
		symbol:    joinSymbols(u.symbol, dot, other.symbol),
		dimension: u.dimension.Multiply(other.dimension),
		toSystem:  u.scale().Concatenate(other.scale()),
	}
}

func (u Unit) Divide(other Unit) (Unit, error) {
	inverse, err := other.Inverse()
	if err != nil {
		return Unit{}, err
	}
	return Unit{
		symbol:    joinSymbols(u.symbol, "/", other.symbol),
		dimension: u.dimension.Divide(other.dimension),
		toSystem:  u.scale().Concatenate(inverse.SystemConverter()),
	}, nil
}

func (u Unit) Inverse() (Unit, error) {
	c, err := u.scale().Inverse()
	if err != nil {
		return Unit{}, fmt.Errorf("inverting %s: %w", u.label(), err)
	}
	symbol := ""
	if u.symbol != "" {
		symbol = "1/" + group(u.symbol, "/·")
	}
	return Unit{symbol: symbol, dimension: u.dimension.Inverse(), toSystem: c}, nil
}

// maxPower bounds the exponent accepted by Pow.
const maxPower = 64

// Pow raises u to an integral power with |n| <= maxPower; Pow(0) is One.
func (u Unit) Pow(n int) (Unit, error) {
	switch {
	case n < -maxPower || n > maxPower:
		return Unit{}, fmt.Errorf("%w: %s^%d exponent beyond %d", measure.ErrOverflow, u.label(), n, maxPower)
	case n == 0:
		return One, nil
	case n < 0:
		p, err := u.Pow(-n)
		if err != nil {
			return Unit{}, err
		}
		return p.Inverse()
	}

	c, square := converter.Identity, u.scale()
	for e := n; e > 0; e >>= 1 {
		if e&1 == 1 {
			c = c.Concatenate(square)
		}
		square = square.Concatenate(square)
	}
	symbol := u.symbol
	if symbol != "" && n > 1 {
		symbol = fmt.Sprintf("%s^%d", group(symbol, "/·^"), n)
	}
	return Unit{symbol: symbol, dimension: u.dimension.Pow(n), toSystem: c}, nil
}

func joinSymbols(left, op, right string) string {
	switch {
	case right == "":
		return left
	case left == "" && op == "/":
		return "1/" + group(right, "/·")
	case left == "":
		return right
	case op == "/":
		return left + "/" + group(right, "/·")
	}
	return left + op + right
}

// group parenthesizes symbols containing any of operators.
func group(symbol, operators string) string {
	if strings.ContainsAny(symbol, operators) {
		return "(" + symbol + ")"
	}
	return symbol
}
