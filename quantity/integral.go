// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantity

import (
	"fmt"

	"measure"
	"measure/internal/exact"
	"measure/unit"
)

// Integer is the set of integral target types for ToIntegral.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// bounds returns the range of I without relying on its size.
func bounds[I Integer]() (lo, hi int64) {
	half := I(1)
	for half<<1 > 0 {
		half <<= 1
	}
	m := int64(half)
	return -m - m, m - 1 + m
}

// ToIntegral converts q into u and returns the value as an I, rounded half away from
// zero. Values outside the range of I fail with measure.ErrOverflow.
func ToIntegral[I Integer, N Number](q Quantity[N], u unit.Unit) (I, error) {
	n, err := toInt64(q, u)
	if err != nil {
		return 0, err
	}
	lo, hi := bounds[I]()
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s is %d %s, outside [%d, %d]", measure.ErrOverflow, q, n, u, lo, hi)
	}
	return I(n), nil
}

func toInt64[N Number](q Quantity[N], u unit.Unit) (int64, error) {
	if integral, ok := any(q).(Quantity[int64]); ok {
		return integral.ConvertTo(u)
	}

	f, err := arithmeticFor[N]().float(q.value)
	if err != nil {
		return 0, err
	}
	if !q.unit.Equal(u) {
		c, err := q.unit.ConverterTo(u)
		if err != nil {
			return 0, err
		}
		f = c.Convert(f)
	}
	n, err := exact.FromFloat(f)
	if err != nil {
		return 0, fmt.Errorf("convert %s to %s: %w", q, u, err)
	}
	return n, nil
}

// ToInt64 is ToIntegral[int64].
func (q Quantity[N]) ToInt64(u unit.Unit) (int64, error) {
	return ToIntegral[int64](q, u)
}
