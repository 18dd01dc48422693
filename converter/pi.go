// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package converter

import "math"

var (
	// Pi multiplies by π.
	Pi Converter = pi{}

	// PiInverse divides by π.
	PiInverse Converter = piInverse{}
)

type pi struct{}

func (pi) Convert(x float64) float64               { return x * math.Pi }
func (pi) Inverse() (Converter, error)             { return PiInverse, nil }
func (c pi) Concatenate(other Converter) Converter { return concatenate(c, other) }
func (pi) IsLinear() bool                          { return true }
func (pi) IsIdentity() bool                        { return false }
func (pi) Kind() Kind                              { return KindPi }
func (c pi) Equal(other Converter) bool            { return equal(c, other) }
func (pi) String() string                          { return "x*π" }
func (pi) sealed()                                 {}

type piInverse struct{}

func (piInverse) Convert(x float64) float64               { return x / math.Pi }
func (piInverse) Inverse() (Converter, error)             { return Pi, nil }
func (c piInverse) Concatenate(other Converter) Converter { return concatenate(c, other) }
func (piInverse) IsLinear() bool                          { return true }
func (piInverse) IsIdentity() bool                        { return false }
func (piInverse) Kind() Kind                              { return KindPiInverse }
func (c piInverse) Equal(other Converter) bool            { return equal(c, other) }
func (piInverse) String() string                          { return "x/π" }
func (piInverse) sealed()                                 {}
