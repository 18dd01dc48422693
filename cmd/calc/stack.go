// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"strings"

	"measure/internal/enumerable"
	"measure/unit"
)

// DOT is the product operator, also used between unit symbols
const DOT = "•"

type Stack struct {
	values []Value
}

func newStack() *Stack {
	return &Stack{values: []Value{}}
}

var stackAlias = map[string]string{
	"dup": "d",
	"pop": "p",
}

var stackOp = map[string]func(*Stack) error{
	"x": (*Stack).exchange,
	"d": (*Stack).dup,
	"p": func(s *Stack) error {
		if _, err := s.pop(); err != nil {
			return fmt.Errorf("stack is empty for 'pop'")
		}
		return nil
	},
}

func (s *Stack) binaryOp(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for binary operation '%s'", op)
	}
	right, _ := s.pop()
	left, _ := s.pop()

	result, err := left.binaryOp(op, right)
	if err != nil {
		return err
	}
	s.push(result)
	return nil
}

func (s *Stack) unaryOp(op string) error {
	value, err := s.pop()
	if err != nil {
		return fmt.Errorf("not enough arguments for unary operation '%s'", op)
	}

	result, err := value.unaryOp(op)
	if err != nil {
		return err
	}
	s.push(result)
	return nil
}

func (s *Stack) apply(u unit.Unit) error {
	value, err := s.pop()
	if err != nil {
		return fmt.Errorf("not enough arguments for '%s'", u)
	}

	result, err := value.apply(u)
	if err != nil {
		return err
	}
	s.push(result)
	return nil
}

// reduce folds the whole stack left to right, bottom value first
func (s *Stack) reduce(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for reduction operation '@%s'", op)
	}

	result, err := enumerable.Reduce(s.values[1:], s.values[0], func(acc, v Value) (Value, error) {
		return acc.binaryOp(op, v)
	})
	if err != nil {
		return err
	}
	s.values = []Value{result}
	return nil
}

func (s *Stack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, fmt.Errorf("stack is empty")
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) peek() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, fmt.Errorf("stack is empty")
	}

	return s.values[len(s.values)-1], nil
}

// Quantities are immutable so the duplicate may share the top value
func (s *Stack) dup() error {
	top, err := s.peek()
	if err != nil {
		return fmt.Errorf("stack is empty for 'duplicate'")
	}
	s.push(top)
	return nil
}

func (s *Stack) exchange() error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for 'exchange'")
	}

	n := len(s.values)
	s.values[n-1], s.values[n-2] = s.values[n-2], s.values[n-1]
	return nil
}

func (s *Stack) size() int {
	return len(s.values)
}

// ColumnWidths tracks integer and fractional part widths for alignment
type ColumnWidths struct {
	integerWidth    int // width of integer part (before decimal point)
	fractionalWidth int // width of fractional part (including decimal point)
}

func maxWidths(values []Value) ColumnWidths {
	var widths ColumnWidths
	for _, value := range values {
		intPart, fracPart := splitNumber(value.number())
		widths.integerWidth = max(widths.integerWidth, len(intPart))
		widths.fractionalWidth = max(widths.fractionalWidth, len(fracPart))
	}
	return widths
}

// splitNumber splits a number string at the decimal point, which stays with the fractional part
func splitNumber(str string) (string, string) {
	if intPart, fracPart, found := strings.Cut(str, "."); found {
		return intPart, "." + fracPart
	}
	return str, ""
}

// print writes the stack top first with the units digits aligned
func (s *Stack) print(w io.Writer) {
	widths := maxWidths(s.values)

	for i := len(s.values) - 1; i >= 0; i-- {
		value := s.values[i]
		intPart, fracPart := splitNumber(value.number())

		line := fmt.Sprintf("%*s%-*s", widths.integerWidth, intPart, widths.fractionalWidth, fracPart)
		if symbol := value.unit().Symbol(); symbol != "" {
			line += " " + symbol
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
