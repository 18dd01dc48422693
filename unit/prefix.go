// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import "measure/converter"

// Prefix scales a unit by an exact factor and prepends its symbol, e.g. Kilo.Of(Meter) is km.
type Prefix struct {
	symbol string
	factor converter.Converter
}

func decimal(symbol string, exponent int) Prefix {
	c, err := converter.PowerOfTen(exponent)
	if err != nil {
		panic(err)
	}
	return Prefix{symbol: symbol, factor: c}
}

func binary(symbol string, exponent int) Prefix {
	return Prefix{symbol: symbol, factor: converter.MustRational(1<<exponent, 1)}
}

var (
	Nano  = decimal("n", -9)
	Micro = decimal("μ", -6)
	Milli = decimal("m", -3)
	Centi = decimal("c", -2)
	Deci  = decimal("d", -1)
	Kilo  = decimal("k", 3)
	Mega  = decimal("M", 6)
	Giga  = decimal("G", 9)
	Tera  = decimal("T", 12)

	Kibi = binary("Ki", 10)
	Mebi = binary("Mi", 20)
	Gibi = binary("Gi", 30)
	Tebi = binary("Ti", 40)
)

func (p Prefix) Symbol() string { return p.symbol }

// Of returns u scaled by p.
func (p Prefix) Of(u Unit) Unit {
	return u.Transform(p.symbol+u.symbol, p.factor)
}
