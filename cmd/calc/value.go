// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"measure/quantity"
	"measure/unit"
)

// Value is either an integer or a float quantity
type Value struct {
	i *quantity.Quantity[int64]
	f *quantity.Quantity[float64]
}

func intValue(q quantity.Quantity[int64]) Value {
	return Value{i: &q}
}

func floatValue(q quantity.Quantity[float64]) Value {
	return Value{f: &q}
}

func parseValue(input string) (Value, bool) {
	if i, err := strconv.ParseInt(input, 0, 64); err == nil {
		return intValue(quantity.Of(i, unit.One)), true
	} else if f, err := strconv.ParseFloat(input, 64); err == nil {
		return floatValue(quantity.Of(f, unit.One)), true
	} else {
		return Value{}, false
	}
}

func (v Value) isInt() bool {
	return v.i != nil
}

func (v Value) unit() unit.Unit {
	if v.isInt() {
		return v.i.Unit()
	}
	return v.f.Unit()
}

func (v Value) float() quantity.Quantity[float64] {
	if v.isInt() {
		return quantity.Of(float64(v.i.Value()), v.i.Unit())
	}
	return *v.f
}

// convertInt converts an integer quantity, falling back to float when the result is not integral
func convertInt(q quantity.Quantity[int64], u unit.Unit) (Value, error) {
	f, err := quantity.Of(float64(q.Value()), q.Unit()).To(u)
	if err != nil {
		return Value{}, err
	}
	if i, err := q.To(u); err == nil && float64(i.Value()) == f.Value() {
		return intValue(i), nil
	}
	return floatValue(f), nil
}

func (v Value) convert(u unit.Unit) (Value, error) {
	if v.isInt() {
		return convertInt(*v.i, u)
	}
	f, err := v.f.To(u)
	if err != nil {
		return Value{}, err
	}
	return floatValue(f), nil
}

// apply attaches u to a unitless value, otherwise converts the value to u
func (v Value) apply(u unit.Unit) (Value, error) {
	if v.unit().Symbol() != "" || !v.unit().Dimension().IsDimensionless() {
		return v.convert(u)
	}
	if v.isInt() {
		return intValue(quantity.Of(v.i.Value(), u)), nil
	}
	return floatValue(quantity.Of(v.f.Value(), u)), nil
}

func (v Value) binaryOp(op string, right Value) (Value, error) {
	left := v
	if left.isInt() && right.isInt() && (op == "+" || op == "-") && !left.unit().Equal(right.unit()) {
		// keep integers only when the right side converts exactly
		converted, err := right.convert(left.unit())
		if err != nil {
			return Value{}, err
		}
		right = converted
	}
	if left.isInt() && right.isInt() && op == "/" && right.i.Value() != 0 && left.i.Value()%right.i.Value() != 0 {
		left = floatValue(left.float())
	}

	if left.isInt() && right.isInt() {
		var result quantity.Quantity[int64]
		var err error
		switch op {
		case "+":
			result, err = left.i.Add(*right.i)
		case "-":
			result, err = left.i.Subtract(*right.i)
		case "*", ".", DOT:
			result, err = left.i.Multiply(*right.i)
		case "/":
			result, err = left.i.Divide(*right.i)
		default:
			panic(fmt.Sprintf("Unimplemented binary op: '%s'", op))
		}
		return intValue(result), err
	}

	l, r := left.float(), right.float()
	var result quantity.Quantity[float64]
	var err error
	switch op {
	case "+":
		result, err = l.Add(r)
	case "-":
		result, err = l.Subtract(r)
	case "*", ".", DOT:
		result, err = l.Multiply(r)
	case "/":
		result, err = l.Divide(r)
	default:
		panic(fmt.Sprintf("Unimplemented binary op: '%s'", op))
	}
	return floatValue(result), err
}

func (v Value) unaryOp(op string) (Value, error) {
	switch op {
	case "chs":
		if v.isInt() {
			q, err := v.i.Negate()
			return intValue(q), err
		}
		q, err := v.f.Negate()
		return floatValue(q), err
	case "r":
		if v.isInt() && (v.i.Value() == 1 || v.i.Value() == -1) {
			q, err := v.i.Inverse()
			return intValue(q), err
		}
		q, err := v.float().Inverse()
		return floatValue(q), err
	case "n":
		if v.isInt() {
			return intValue(quantity.Of(v.i.Value(), unit.One)), nil
		}
		return floatValue(quantity.Of(v.f.Value(), unit.One)), nil
	case "round":
		i, err := quantity.ToIntegral[int64](v.float(), v.unit())
		return intValue(quantity.Of(i, v.unit())), err
	default:
		panic(fmt.Sprintf("Unimplemented unary op: '%s'", op))
	}
}

var grouped = message.NewPrinter(language.English)

// number formats the value alone, trailing zeros of floats removed
func (v Value) number() string {
	if v.isInt() {
		if options.group {
			return grouped.Sprintf("%d", v.i.Value())
		}
		return strconv.FormatInt(v.i.Value(), 10)
	}

	f := v.f.Value()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	var s string
	if options.group {
		s = grouped.Sprintf(fmt.Sprintf("%%.%df", options.precision), f)
	} else {
		s = strconv.FormatFloat(f, 'f', options.precision, 64)
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (v Value) String() string {
	if symbol := v.unit().Symbol(); symbol != "" {
		return v.number() + " " + symbol
	}
	return v.number()
}
