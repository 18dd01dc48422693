// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

/*
Package measure represents physical quantities as a (value, unit) pair and combines
them with dimension checks, rebasing operands through exact or approximate conversions.

# Packages

  - [measure/converter]: the converter algebra. A converter maps a value in one unit to
    the equivalent value in another; converters compose, invert and simplify.
  - [measure/unit]: units tagged with a [unit.Dimension], composed with Multiply, Divide
    and Inverse, and a catalog of common units.
  - [measure/quantity]: the immutable generic Quantity over float64, float32 and int64.

# Errors

All failures are synchronous and reported as wrapped sentinels, to be matched with
[errors.Is]:

  - [ErrConstruction]: invalid converter parameters.
  - [ErrOverflow]: int64 negation overflow, or a conversion outside an integral range.
  - [ErrIncompatibleDimension]: add, subtract or convert across dimensions.
  - [ErrUnsupportedRepresentation]: a numeric type without defined arithmetic.
  - [ErrDivisionByZero]: integer division by zero.

Every value is immutable; converters, units and quantities may be shared freely
between goroutines.
*/
package measure
