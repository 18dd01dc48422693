// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package measure

import "errors"

var (
	// ErrConstruction reports invalid converter parameters, e.g. a non-positive divisor.
	ErrConstruction = errors.New("invalid converter")

	// ErrOverflow reports a result that cannot be represented: negating the minimum int64,
	// or a converted value outside the range of an integral type.
	ErrOverflow = errors.New("overflow")

	// ErrIncompatibleDimension reports an add, subtract or conversion between units of different dimensions.
	ErrIncompatibleDimension = errors.New("incompatible dimensions")

	// ErrUnsupportedRepresentation reports a numeric type with no defined arithmetic.
	ErrUnsupportedRepresentation = errors.New("unsupported numeric representation")

	// ErrDivisionByZero reports an integer division by zero.
	ErrDivisionByZero = errors.New("division by zero")
)
