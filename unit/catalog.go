// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"golang.org/x/text/unicode/norm"

	"measure/converter"
	"measure/internal/enumerable"
)

func must(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

var ratio = converter.MustRational

// System units
var (
	Meter    = New("m", Length.Dimension())
	Kilogram = New("kg", Mass.Dimension())
	Second   = New("s", Time.Dimension())
	Ampere   = New("A", Current.Dimension())
	Kelvin   = New("K", Temperature.Dimension())
	Mole     = New("mol", Amount.Dimension())
	Candela  = New("cd", Luminosity.Dimension())
	Radian   = New("rad", Angle.Dimension())
	Bit      = New("bit", Information.Dimension())
)

// Length
var (
	Nanometer  = Nano.Of(Meter)
	Micrometer = Micro.Of(Meter)
	Millimeter = Milli.Of(Meter)
	Centimeter = Centi.Of(Meter)
	Kilometer  = Kilo.Of(Meter)

	Inch = Meter.Transform("in", ratio(254, 10000)) // by definition
	Foot = Inch.Transform("ft", ratio(12, 1))
	Yard = Foot.Transform("yd", ratio(3, 1))
	Mile = Foot.Transform("mi", ratio(5280, 1))
)

// Mass
var (
	Gram      = Kilogram.Transform("g", ratio(1, 1000))
	Microgram = Micro.Of(Gram)
	Milligram = Milli.Of(Gram)
	Pound     = Kilogram.Transform("lb", ratio(45359237, 100000000)) // by definition
	Ounce     = Pound.Transform("oz", ratio(1, 16))
)

// Volume
var (
	CubicMeter = must(Meter.Pow(3))
	Liter      = CubicMeter.Transform("l", ratio(1, 1000))
	Milliliter = Milli.Of(Liter)
	Centiliter = Centi.Of(Liter)
	Deciliter  = Deci.Of(Liter)

	Gallon     = Liter.Transform("gal", ratio(3785411784, 1000000000)) // 231 cubic inches by definition
	Quart      = Gallon.Transform("qt", ratio(1, 4))
	Pint       = Gallon.Transform("pt", ratio(1, 8))
	Cup        = Gallon.Transform("cup", ratio(1, 16))
	FluidOunce = Gallon.Transform("foz", ratio(1, 128))
)

// Time
var (
	Millisecond = Milli.Of(Second)
	Minute      = Second.Transform("min", ratio(60, 1))
	Hour        = Minute.Transform("hr", ratio(60, 1))
	Day         = Hour.Transform("day", ratio(24, 1))
)

// Temperature. Δ units measure differences and carry no offset.
var (
	Celsius    = Kelvin.Transform("°C", converter.MustAffine(273.15))
	Fahrenheit = Kelvin.Transform("°F", ratio(5, 9).Concatenate(converter.MustAffine(459.67)))

	DeltaCelsius    = Kelvin.WithSymbol("°CΔ")
	DeltaFahrenheit = Kelvin.Transform("°FΔ", ratio(5, 9))
)

// Angle
var (
	Degree = Radian.Transform("deg", converter.Pi.Concatenate(ratio(1, 180)))
	Turn   = Radian.Transform("turn", converter.Pi.Concatenate(ratio(2, 1)))
)

// Information
var (
	Byte     = Bit.Transform("B", ratio(8, 1))
	Kibibyte = Kibi.Of(Byte)
	Mebibyte = Mebi.Of(Byte)
	Gibibyte = Gibi.Of(Byte)
	Tebibyte = Tebi.Of(Byte)
)

// Derived
var (
	Percent = One.Transform("%", ratio(1, 100))

	Hertz            = must(Second.Inverse()).WithSymbol("Hz")
	Newton           = must(Kilogram.Multiply(Meter).Divide(must(Second.Pow(2)))).WithSymbol("N")
	Joule            = Newton.Multiply(Meter).WithSymbol("J")
	Watt             = must(Joule.Divide(Second)).WithSymbol("W")
	Pascal           = must(Newton.Divide(must(Meter.Pow(2)))).WithSymbol("Pa")
	KilometerPerHour = must(Kilometer.Divide(Hour))
	MeterPerSecond   = must(Meter.Divide(Second))
)

// Entry describes a catalog unit.
type Entry struct {
	Unit        Unit
	Description string
	Aliases     []string
}

var catalog = []Entry{
	{Nanometer, "nanometers", nil},
	{Micrometer, "micrometers", []string{"um"}},
	{Millimeter, "millimeters", nil},
	{Centimeter, "centimeters", nil},
	{Meter, "meters", nil},
	{Kilometer, "kilometers", nil},
	{Inch, "inches", nil},
	{Foot, "feet", nil},
	{Yard, "yards", nil},
	{Mile, "miles", nil},

	{Microgram, "micrograms", []string{"ug"}},
	{Milligram, "milligrams", nil},
	{Gram, "grams", nil},
	{Kilogram, "kilograms", nil},
	{Ounce, "ounces", nil},
	{Pound, "pounds", nil},

	{CubicMeter, "cubic meters", nil},
	{Milliliter, "milliliters", nil},
	{Centiliter, "centiliters", nil},
	{Deciliter, "deciliters", nil},
	{Liter, "liters", []string{"L"}},
	{FluidOunce, "fl. ounces", nil},
	{Cup, "cups", nil},
	{Pint, "pints", nil},
	{Quart, "quarts", nil},
	{Gallon, "us gallons", nil},

	{Millisecond, "milliseconds", nil},
	{Second, "seconds", nil},
	{Minute, "minutes", nil},
	{Hour, "hours", []string{"h"}},
	{Day, "days", nil},

	{Kelvin, "kelvin", nil},
	{Celsius, "celsius", []string{"C"}},
	{Fahrenheit, "fahrenheit", []string{"F"}},
	{DeltaCelsius, "delta celsius", []string{"dC"}},
	{DeltaFahrenheit, "delta fahrenheit", []string{"dF"}},

	{Radian, "radians", nil},
	{Degree, "degrees", nil},
	{Turn, "turns", nil},

	{Bit, "bits", nil},
	{Byte, "bytes", nil},
	{Kibibyte, "kibibytes", nil},
	{Mebibyte, "mebibytes", nil},
	{Gibibyte, "gibibytes", nil},
	{Tebibyte, "tebibytes", nil},

	{Ampere, "amperes", nil},
	{Mole, "moles", nil},
	{Candela, "candelas", nil},

	{Percent, "percent", nil},
	{Hertz, "hertz", nil},
	{Newton, "newtons", nil},
	{Joule, "joules", nil},
	{Watt, "watts", nil},
	{Pascal, "pascals", nil},
	{KilometerPerHour, "kilometers per hour", []string{"kph"}},
	{MeterPerSecond, "meters per second", nil},
}

var bySymbol = func() map[string]Unit {
	m := make(map[string]Unit, 2*len(catalog))
	for _, entry := range catalog {
		m[norm.NFKC.String(entry.Unit.Symbol())] = entry.Unit
		for _, alias := range entry.Aliases {
			m[norm.NFKC.String(alias)] = entry.Unit
		}
	}
	return m
}()

// Lookup finds a catalog unit by symbol or alias. Symbols are compared in NFKC form,
// so compatibility characters such as µ (micro sign), ℃ or ㎞ match μ, °C and km.
func Lookup(symbol string) (Unit, bool) {
	u, ok := bySymbol[norm.NFKC.String(symbol)]
	return u, ok
}

// Catalog lists every catalog entry in declaration order.
func Catalog() []Entry {
	entries := make([]Entry, len(catalog))
	copy(entries, catalog)
	return entries
}

// ByDimension lists the catalog entries of dimension d.
func ByDimension(d Dimension) []Entry {
	return enumerable.Filter(Catalog(), func(e Entry) bool { return e.Unit.Dimension() == d })
}

// Symbols returns the symbols of the given entries.
func Symbols(entries []Entry) []string {
	return enumerable.Map(entries, func(e Entry) string { return e.Unit.Symbol() })
}
