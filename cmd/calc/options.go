// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"measure/internal/enumerable"
	"measure/unit"
)

type Options struct {
	group     bool
	trace     bool
	precision int
	units     bool
	help      bool
}

var options Options

// heredoc removes the first line's indentation from every line
func heredoc(text string) string {
	body := strings.TrimLeft(text, "\n")
	indent := body[:len(body)-len(strings.TrimLeft(body, " "))]

	lines := strings.Split(strings.TrimRight(body, " \t\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n")
}

func newFlagSet(w io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("calc", pflag.ContinueOnError)
	fs.SetOutput(w)
	fs.SetInterspersed(false) // operators such as '-' follow the options
	fs.BoolVarP(&options.trace, "trace", "t", false, "Trace operations")
	fs.BoolVarP(&options.group, "group", "g", false, "Use ',' to group decimal numbers")
	fs.IntVarP(&options.precision, "precision", "p", 4, "Set display precision for floating point numbers")
	fs.BoolVarP(&options.units, "units", "u", false, "List the known units")
	fs.BoolVarP(&options.help, "help", "h", false, "Show extended help")
	fs.Usage = func() { usage(w, fs) }
	return fs
}

// parseOptions sets options and returns the remaining arguments
func parseOptions(args []string, w io.Writer) ([]string, error) {
	options = Options{}
	fs := newFlagSet(w)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: calc [OPTIONS] ARGUMENTS")
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
}

func doHelp(w io.Writer) {
	usage(w, newFlagSet(w))

	fmt.Fprintf(w, "\n%s\n", heredoc(`
        Constants:
          pi

        Numbers:
          Decimal, hexadecimal (0x), octal (0o) and binary (0b) integers
          Decimal floating point numbers (with optional exponent: [eE][-+]?[0-9]+)
          Negative numbers must follow '--' or another argument, or use chs

        Stack Operations:
          x: exchange top 2 elements of the stack
          d: duplicate top element of the stack (aliased as dup)
          p: pop top element off of the stack (aliased as pop)

        Binary operations (prepend with '@' to reduce the stack):
          + - * /
          *   (aliased as . and •)

        Unary operations:
          n     (number: remove any units)
          chs   (change sign)
          r     (reciprocal)
          round (round to integer)
    `))

	fmt.Fprintf(w, "\n%s\n", heredoc(`
        Units:
          Units are applied if current top of stack does not have any units
          Otherwise the current top of stack is converted to the units
    `))
	listUnits(w)
}

// listUnits prints the catalog one dimension per line
func listUnits(w io.Writer) {
	var dimensions []unit.Dimension
	for _, entry := range unit.Catalog() {
		d := entry.Unit.Dimension()
		if !enumerable.Any(dimensions, func(seen unit.Dimension) bool { return seen == d }) {
			dimensions = append(dimensions, d)
		}
	}

	for _, d := range dimensions {
		described := enumerable.Map(unit.ByDimension(d), func(e unit.Entry) string {
			return fmt.Sprintf("%s (%s)", e.Description, e.Unit.Symbol())
		})
		fmt.Fprintf(w, "  %s\n    %s\n", d, strings.Join(described, ", "))
	}
}
