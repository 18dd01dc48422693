// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"measure/quantity"
	"measure/unit"
)

// newLogger traces each argument to w when -t is given
func newLogger(w io.Writer) *zap.Logger {
	if !options.trace {
		return zap.NewNop()
	}
	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core)
}

// evaluate applies one argument to the stack
func evaluate(stack *Stack, arg string) error {
	if value, ok := parseValue(arg); ok {
		stack.push(value)
		return nil
	}
	if alias, ok := stackAlias[arg]; ok {
		arg = alias
	}
	if op, ok := stackOp[arg]; ok {
		return op(stack)
	}

	switch arg {
	case "pi":
		stack.push(floatValue(quantity.Of(math.Pi, unit.One)))
		return nil
	case "+", "-", "*", DOT, ".", "/":
		return stack.binaryOp(arg)
	case "chs", "r", "n", "round":
		return stack.unaryOp(arg)
	}

	if op, ok := strings.CutPrefix(arg, "@"); ok {
		switch op {
		case "+", "-", "*", DOT, ".", "/":
			return stack.reduce(op)
		}
	}

	if u, ok := unit.Lookup(arg); ok {
		return stack.apply(u)
	}
	return fmt.Errorf("unrecognized argument '%s'", arg)
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr, newFlagSet(stderr))
		return 1
	}

	args, err := parseOptions(args, stderr)
	if err != nil {
		return 1
	}
	if options.help {
		doHelp(stdout)
		return 0
	}
	if options.units {
		listUnits(stdout)
		return 0
	}

	logger := newLogger(stderr)
	defer logger.Sync()

	stack := newStack()
	for _, arg := range args {
		if err := evaluate(stack, arg); err != nil {
			logger.Debug("failed", zap.String("arg", arg), zap.Error(err))
			fmt.Fprintf(stderr, "Error: %v, exiting\n", err)
			return 1
		}
		top := ""
		if value, err := stack.peek(); err == nil {
			top = value.String()
		}
		logger.Debug("evaluated", zap.String("arg", arg), zap.Int("depth", stack.size()), zap.String("top", top))
	}

	stack.print(stdout)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
