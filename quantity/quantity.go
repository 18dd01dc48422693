// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package quantity implements Quantity, an immutable (value, unit) pair with
// dimension-checked arithmetic.
//
// Addition, subtraction, comparison and conversion require compatible units; the
// second operand is converted into the first operand's unit, once, before the values
// are combined. Multiplication and division accept any units and derive the result
// unit from the operands.
//
// The same operations exist for every representation:
//
//   - float64, float32: IEEE-754 arithmetic; float32 conversions beyond its range overflow.
//   - int64: exact addition, subtraction and multiplication with overflow errors;
//     division, inverse and conversion round half away from zero, and conversion through
//     an exact ratio never passes through a float.
package quantity

import (
	"fmt"

	"measure/unit"
)

type Quantity[N Number] struct {
	value N
	unit  unit.Unit
}

// Of returns the quantity value in u.
func Of[N Number](value N, u unit.Unit) Quantity[N] {
	return Quantity[N]{value: value, unit: u}
}

func (q Quantity[N]) Value() N        { return q.value }
func (q Quantity[N]) Unit() unit.Unit { return q.unit }

func (q Quantity[N]) String() string {
	if q.unit.Symbol() == "" {
		return fmt.Sprintf("%v", q.value)
	}
	return fmt.Sprintf("%v %s", q.value, q.unit.Symbol())
}

// Add converts other into q's unit and sums the values.
func (q Quantity[N]) Add(other Quantity[N]) (Quantity[N], error) {
	return q.combine("add", other, arithmeticFor[N]().add)
}

// Subtract converts other into q's unit and subtracts its value.
func (q Quantity[N]) Subtract(other Quantity[N]) (Quantity[N], error) {
	return q.combine("subtract", other, arithmeticFor[N]().subtract)
}

func (q Quantity[N]) combine(op string, other Quantity[N], f func(a, b N) (N, error)) (Quantity[N], error) {
	v, err := other.ConvertTo(q.unit)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("%s %s to %s: %w", op, other, q, err)
	}
	result, err := f(q.value, v)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("%s %s to %s: %w", op, other, q, err)
	}
	return Of(result, q.unit), nil
}

// Multiply multiplies the raw values; the result unit is q.Unit()·other.Unit().
func (q Quantity[N]) Multiply(other Quantity[N]) (Quantity[N], error) {
	v, err := arithmeticFor[N]().multiply(q.value, other.value)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("multiply %s by %s: %w", q, other, err)
	}
	return Of(v, q.unit.Multiply(other.unit)), nil
}

// Divide divides the raw values; the result unit is q.Unit()/other.Unit().
func (q Quantity[N]) Divide(other Quantity[N]) (Quantity[N], error) {
	u, err := q.unit.Divide(other.unit)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("divide %s by %s: %w", q, other, err)
	}
	v, err := arithmeticFor[N]().divide(q.value, other.value)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("divide %s by %s: %w", q, other, err)
	}
	return Of(v, u), nil
}

// MultiplyScalar scales the value, keeping the unit.
func (q Quantity[N]) MultiplyScalar(factor N) (Quantity[N], error) {
	v, err := arithmeticFor[N]().multiply(q.value, factor)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("multiply %s by %v: %w", q, factor, err)
	}
	return Of(v, q.unit), nil
}

// DivideScalar divides the value, keeping the unit.
func (q Quantity[N]) DivideScalar(divisor N) (Quantity[N], error) {
	v, err := arithmeticFor[N]().divide(q.value, divisor)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("divide %s by %v: %w", q, divisor, err)
	}
	return Of(v, q.unit), nil
}

// Inverse returns 1/value in the inverse unit.
func (q Quantity[N]) Inverse() (Quantity[N], error) {
	u, err := q.unit.Inverse()
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("inverse of %s: %w", q, err)
	}
	a := arithmeticFor[N]()
	v, err := a.divide(a.one(), q.value)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("inverse of %s: %w", q, err)
	}
	return Of(v, u), nil
}

func (q Quantity[N]) Negate() (Quantity[N], error) {
	v, err := arithmeticFor[N]().negate(q.value)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("negate %s: %w", q, err)
	}
	return Of(v, q.unit), nil
}

func (q Quantity[N]) Abs() (Quantity[N], error) {
	if q.value < 0 {
		return q.Negate()
	}
	return q, nil
}

// ConvertTo returns q's value expressed in u. When u is q's own unit the value is
// returned untouched.
func (q Quantity[N]) ConvertTo(u unit.Unit) (N, error) {
	if q.unit.Equal(u) {
		return q.value, nil
	}
	c, err := q.unit.ConverterTo(u)
	if err != nil {
		return q.value, err
	}
	v, err := arithmeticFor[N]().convert(c, q.value)
	if err != nil {
		return q.value, fmt.Errorf("convert %s to %s: %w", q, u, err)
	}
	return v, nil
}

// To returns q expressed in u.
func (q Quantity[N]) To(u unit.Unit) (Quantity[N], error) {
	v, err := q.ConvertTo(u)
	if err != nil {
		return Quantity[N]{}, err
	}
	return Of(v, u), nil
}

// Compare orders q against other expressed in q's unit and returns -1, 0 or +1. The
// conversion is not rounded, so int64 quantities compare exactly. A float NaN orders
// before every other value.
func (q Quantity[N]) Compare(other Quantity[N]) (int, error) {
	c, err := other.unit.ConverterTo(q.unit)
	if err != nil {
		return 0, fmt.Errorf("compare %s to %s: %w", q, other, err)
	}
	result, err := arithmeticFor[N]().compare(c, q.value, other.value)
	if err != nil {
		return 0, fmt.Errorf("compare %s to %s: %w", q, other, err)
	}
	return result, nil
}

// Equal reports whether the units are compatible and the values agree in a common
// unit. As with ==, a NaN value is equal to nothing.
func (q Quantity[N]) Equal(other Quantity[N]) bool {
	a := arithmeticFor[N]()
	if !a.ordered(q.value) || !a.ordered(other.value) {
		return false
	}
	c, err := q.Compare(other)
	return err == nil && c == 0
}
