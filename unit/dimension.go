// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"fmt"
	"strings"
)

// Base is one of the independent physical dimensions.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Angle
	Information
	NumBase
)

var baseSymbols = [NumBase]string{"L", "M", "T", "I", "Θ", "N", "J", "α", "B"}

func (b Base) String() string {
	if b < 0 || b >= NumBase {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseSymbols[b]
}

// Dimension is the power of each base dimension; two units are compatible iff their dimensions are equal.
type Dimension [NumBase]int

// Dimensionless is the dimension of pure numbers.
var Dimensionless Dimension

// Dimension returns b to the first power.
func (b Base) Dimension() Dimension {
	var d Dimension
	d[b] = 1
	return d
}

func (d Dimension) Multiply(other Dimension) Dimension {
	for i := range d {
		d[i] += other[i]
	}
	return d
}

func (d Dimension) Divide(other Dimension) Dimension {
	for i := range d {
		d[i] -= other[i]
	}
	return d
}

func (d Dimension) Pow(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

func (d Dimension) Inverse() Dimension {
	return d.Pow(-1)
}

func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// String renders d as e.g. "L·M/T^2".
func (d Dimension) String() string {
	var numerator, denominator []string
	for i, power := range d {
		switch {
		case power > 0:
			numerator = append(numerator, withPower(Base(i).String(), power))
		case power < 0:
			denominator = append(denominator, withPower(Base(i).String(), -power))
		}
	}

	result := strings.Join(numerator, dot)
	if result == "" {
		result = "1"
	}
	if len(denominator) > 0 {
		result += "/" + strings.Join(denominator, dot)
	}
	return result
}

func withPower(symbol string, power int) string {
	if power == 1 {
		return symbol
	}
	return fmt.Sprintf("%s^%d", symbol, power)
}
