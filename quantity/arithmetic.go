// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantity

import (
	"cmp"
	"fmt"
	"math"
	"math/big"

	"measure"
	"measure/converter"
	"measure/internal/exact"
)

// Number is the set of value representations a Quantity can hold.
type Number interface {
	~float64 | ~float32 | ~int64
}

// arithmetic is the complete set of value operations a representation must supply.
type arithmetic[N Number] interface {
	add(a, b N) (N, error)
	subtract(a, b N) (N, error)
	multiply(a, b N) (N, error)
	divide(a, b N) (N, error)
	negate(a N) (N, error)
	convert(c converter.Converter, v N) (N, error)
	float(v N) (float64, error)
	// compare orders a against b converted by c, without rounding the conversion
	compare(c converter.Converter, a, b N) (int, error)
	ordered(v N) bool
	one() N
}

// arithmeticFor selects the operations for N. Types outside float64, float32 and
// int64 themselves, e.g. a named `type Meters float64`, have none.
func arithmeticFor[N Number]() arithmetic[N] {
	var zero N
	var a any
	switch any(zero).(type) {
	case float64:
		a = float64Arithmetic{}
	case float32:
		a = float32Arithmetic{}
	case int64:
		a = int64Arithmetic{}
	default:
		return unsupported[N]{}
	}
	return a.(arithmetic[N])
}

type float64Arithmetic struct{}

func (float64Arithmetic) add(a, b float64) (float64, error)      { return a + b, nil }
func (float64Arithmetic) subtract(a, b float64) (float64, error) { return a - b, nil }
func (float64Arithmetic) multiply(a, b float64) (float64, error) { return a * b, nil }
func (float64Arithmetic) divide(a, b float64) (float64, error)   { return a / b, nil }
func (float64Arithmetic) negate(a float64) (float64, error)      { return -a, nil }
func (float64Arithmetic) float(v float64) (float64, error)       { return v, nil }
func (float64Arithmetic) ordered(v float64) bool                 { return !math.IsNaN(v) }
func (float64Arithmetic) one() float64                           { return 1 }

func (float64Arithmetic) compare(c converter.Converter, a, b float64) (int, error) {
	return cmp.Compare(a, c.Convert(b)), nil
}

func (float64Arithmetic) convert(c converter.Converter, v float64) (float64, error) {
	return c.Convert(v), nil
}

type float32Arithmetic struct{}

func (float32Arithmetic) add(a, b float32) (float32, error)      { return a + b, nil }
func (float32Arithmetic) subtract(a, b float32) (float32, error) { return a - b, nil }
func (float32Arithmetic) multiply(a, b float32) (float32, error) { return a * b, nil }
func (float32Arithmetic) divide(a, b float32) (float32, error)   { return a / b, nil }
func (float32Arithmetic) negate(a float32) (float32, error)      { return -a, nil }
func (float32Arithmetic) float(v float32) (float64, error)       { return float64(v), nil }
func (float32Arithmetic) ordered(v float32) bool                 { return !math.IsNaN(float64(v)) }
func (float32Arithmetic) one() float32                           { return 1 }

func (float32Arithmetic) compare(c converter.Converter, a, b float32) (int, error) {
	return cmp.Compare(float64(a), c.Convert(float64(b))), nil
}

// convert works in float64 and narrows; finite results beyond float32 overflow.
func (float32Arithmetic) convert(c converter.Converter, v float32) (float32, error) {
	f := c.Convert(float64(v))
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %g outside float32 range", measure.ErrOverflow, f)
	}
	return float32(f), nil
}

// int64Arithmetic is exact where the result is an integer, and rounds half away from
// zero where it is not (division, inverse, conversion). Overflow is an error.
type int64Arithmetic struct{}

func (int64Arithmetic) add(a, b int64) (int64, error)      { return exact.Add(a, b) }
func (int64Arithmetic) subtract(a, b int64) (int64, error) { return exact.Subtract(a, b) }
func (int64Arithmetic) multiply(a, b int64) (int64, error) { return exact.Multiply(a, b) }
func (int64Arithmetic) divide(a, b int64) (int64, error)   { return exact.DivideRound(a, b) }
func (int64Arithmetic) negate(a int64) (int64, error)      { return exact.Negate(a) }
func (int64Arithmetic) float(v int64) (float64, error)     { return float64(v), nil }
func (int64Arithmetic) ordered(int64) bool                 { return true }
func (int64Arithmetic) one() int64                         { return 1 }

// compare cross-multiplies exact ratios: a against b * dividend / divisor.
func (int64Arithmetic) compare(c converter.Converter, a, b int64) (int, error) {
	dividend, divisor, ok := converter.Ratio(c)
	if !ok {
		return cmp.Compare(float64(a), c.Convert(float64(b))), nil
	}
	left := new(big.Int).Mul(big.NewInt(a), big.NewInt(divisor))
	right := new(big.Int).Mul(big.NewInt(b), big.NewInt(dividend))
	return left.Cmp(right), nil
}

func (int64Arithmetic) convert(c converter.Converter, v int64) (int64, error) {
	dividend, divisor, ok := converter.Ratio(c)
	if !ok {
		return exact.FromFloat(c.Convert(float64(v)))
	}
	if divisor == 1 {
		return exact.Multiply(v, dividend)
	}

	// v * dividend / divisor, rounded half away from zero
	n := new(big.Int).Mul(big.NewInt(v), big.NewInt(dividend))
	d := big.NewInt(divisor)
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() != 0 && new(big.Int).Lsh(r.Abs(r), 1).Cmp(d) >= 0 {
		if n.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	if !q.IsInt64() {
		return 0, fmt.Errorf("%w: %d * %d/%d outside int64 range", measure.ErrOverflow, v, dividend, divisor)
	}
	return q.Int64(), nil
}

type unsupported[N Number] struct{}

func (unsupported[N]) err() error {
	var zero N
	return fmt.Errorf("%w: %T", measure.ErrUnsupportedRepresentation, zero)
}

func (u unsupported[N]) add(a, _ N) (N, error)                          { return a, u.err() }
func (u unsupported[N]) subtract(a, _ N) (N, error)                     { return a, u.err() }
func (u unsupported[N]) multiply(a, _ N) (N, error)                     { return a, u.err() }
func (u unsupported[N]) divide(a, _ N) (N, error)                       { return a, u.err() }
func (u unsupported[N]) negate(a N) (N, error)                          { return a, u.err() }
func (u unsupported[N]) convert(_ converter.Converter, v N) (N, error)  { return v, u.err() }
func (u unsupported[N]) float(N) (float64, error)                       { return math.NaN(), u.err() }
func (u unsupported[N]) compare(converter.Converter, N, N) (int, error) { return 0, u.err() }
func (unsupported[N]) ordered(N) bool                                   { return false }
func (unsupported[N]) one() N                                           { return 1 }
