// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measure/quantity"
	"measure/unit"
)

func runCalc(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return strings.TrimSpace(stdout.String()), stderr.String(), code
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default precision", []string{"1", "3", "/"}, "0.3333"},
		{"custom precision", []string{"-p", "2", "1", "3", "/"}, "0.33"},
		{"exact integer division", []string{"6", "3", "/"}, "2"},
		{"pi", []string{"pi"}, "3.1416"},
		{"hexadecimal", []string{"0x10", "1", "+"}, "17"},
		{"negative after separator", []string{"--", "-5", "2", "*"}, "-10"},
		{"grouping", []string{"-g", "1234567", "1000", "*"}, "1,234,567,000"},
		{"reduce", []string{"1", "2", "3", "@+"}, "6"},
		{"reduce product", []string{"2", "3", "4", "@*"}, "24"},
		{"exchange", []string{"1", "2", "x", "-"}, "1"},
		{"duplicate", []string{"3", "dup", "*"}, "9"},
		{"pop", []string{"1", "2", "p"}, "1"},
		{"change sign", []string{"5", "chs"}, "-5"},
		{"round", []string{"2.5", "round"}, "3"},
		{"attach unit", []string{"5", "kg"}, "5 kg"},
		{"add with conversion", []string{"5", "kg", "2000", "g", "+"}, "7 kg"},
		{"subtract with conversion", []string{"1", "km", "1", "m", "-"}, "0.999 km"},
		{"convert to larger unit", []string{"1500", "g", "kg"}, "1.5 kg"},
		{"convert inexact", []string{"1", "m", "ft"}, "3.2808 ft"},
		{"temperature", []string{"100", "C", "F"}, "212 °F"},
		{"angle", []string{"90", "deg", "rad"}, "1.5708 rad"},
		{"velocity", []string{"5", "m", "2", "s", "/"}, "2.5 m/s"},
		{"product", []string{"2", "m", "3", "s", DOT}, "6 m·s"},
		{"reciprocal", []string{"4", "s", "r"}, "0.25 1/s"},
		{"reciprocal of one", []string{"1", "s", "r"}, "1 1/s"},
		{"strip units", []string{"5", "kg", "n"}, "5"},
		{"stack order", []string{"1", "2"}, "2\n1"},
		{"alignment", []string{"1.5", "10"}, "10\n 1.5"},
		{"unicode symbol", []string{"3", "㎞", "m"}, "3000 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, stderr, code := runCalc(tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"incompatible add", []string{"5", "kg", "3", "s", "+"}, "incompatible dimensions"},
		{"incompatible conversion", []string{"5", "kg", "m"}, "incompatible dimensions"},
		{"division by zero", []string{"1", "0", "/"}, "division by zero"},
		{"overflow", []string{"9223372036854775807", "1", "+"}, "overflow"},
		{"binary underflow", []string{"1", "+"}, "not enough arguments"},
		{"reduce underflow", []string{"1", "@+"}, "not enough arguments"},
		{"exchange underflow", []string{"1", "x"}, "not enough arguments"},
		{"pop empty", []string{"p"}, "stack is empty"},
		{"unrecognized", []string{"bogus"}, "unrecognized argument 'bogus'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, stderr, code := runCalc(tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, output)
			assert.Contains(t, stderr, tt.message)
			assert.True(t, strings.HasSuffix(strings.TrimSpace(stderr), ", exiting"))
		})
	}
}

func TestNoArguments(t *testing.T) {
	_, stderr, code := runCalc()
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage: calc")
}

func TestHelpAndUnits(t *testing.T) {
	output, _, code := runCalc("-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, output, "Binary operations")
	assert.Contains(t, output, "kilometers (km)")

	output, _, code = runCalc("-u")
	assert.Equal(t, 0, code)
	assert.Contains(t, output, "celsius (°C)")
	assert.NotContains(t, output, "Binary operations")
}

func TestTrace(t *testing.T) {
	output, stderr, code := runCalc("-t", "2", "3", "+")
	require.Equal(t, 0, code)
	assert.Equal(t, "5", output)
	assert.Contains(t, stderr, "evaluated")
	assert.Contains(t, stderr, `"arg": "+"`)
}

func TestConvertIntKeepsIntegers(t *testing.T) {
	v, err := convertInt(quantity.Of[int64](3, unit.Kilometer), unit.Meter)
	require.NoError(t, err)
	assert.True(t, v.isInt())
	assert.Equal(t, "3000 m", v.String())

	v, err = convertInt(quantity.Of[int64](1, unit.Foot), unit.Inch)
	require.NoError(t, err)
	assert.True(t, v.isInt())

	v, err = convertInt(quantity.Of[int64](1, unit.Inch), unit.Foot)
	require.NoError(t, err)
	assert.False(t, v.isInt())
}

func TestSplitNumber(t *testing.T) {
	intPart, fracPart := splitNumber("100.5")
	assert.Equal(t, "100", intPart)
	assert.Equal(t, ".5", fracPart)

	intPart, fracPart = splitNumber("42")
	assert.Equal(t, "42", intPart)
	assert.Empty(t, fracPart)
}

func TestHeredoc(t *testing.T) {
	text := heredoc(`
        first
          indented
        last
    `)
	assert.Equal(t, "first\n  indented\nlast", text)
}
