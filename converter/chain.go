// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package converter

import "strings"

// chain applies inner, then outer. Built only by concatenate, never of an identity.
type chain struct {
	outer Converter
	inner Converter
}

func (c chain) Convert(x float64) float64 {
	return c.outer.Convert(c.inner.Convert(x))
}

func (c chain) Inverse() (Converter, error) {
	outer, err := c.outer.Inverse()
	if err != nil {
		return nil, err
	}
	inner, err := c.inner.Inverse()
	if err != nil {
		return nil, err
	}
	return concatenate(inner, outer), nil
}

func (c chain) Concatenate(other Converter) Converter { return concatenate(c, other) }

func (c chain) IsLinear() bool {
	return c.outer.IsLinear() && c.inner.IsLinear()
}

func (c chain) IsIdentity() bool           { return false }
func (c chain) Kind() Kind                 { return KindChain }
func (c chain) Equal(other Converter) bool { return equal(c, other) }
func (c chain) sealed()                    {}

// Steps lists the converters of c in the order they are applied.
func Steps(c Converter) []Converter {
	ch, ok := c.(chain)
	if !ok {
		return []Converter{c}
	}
	return append(Steps(ch.inner), Steps(ch.outer)...)
}

func (c chain) String() string {
	var sb strings.Builder
	sb.WriteString("x")
	for _, step := range Steps(c) {
		sb.WriteString(" → ")
		sb.WriteString(step.String())
	}
	return sb.String()
}
