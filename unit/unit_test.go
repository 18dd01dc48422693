// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measure"
	"measure/converter"
)

func TestDimensionString(t *testing.T) {
	tests := []struct {
		dimension Dimension
		expected  string
	}{
		{Dimensionless, "1"},
		{Length.Dimension(), "L"},
		{Newton.Dimension(), "L·M/T^2"},
		{Hertz.Dimension(), "1/T"},
		{CubicMeter.Dimension(), "L^3"},
		{Temperature.Dimension().Multiply(Information.Dimension()), "Θ·B"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.dimension.String())
		})
	}
}

func TestDimensionAlgebra(t *testing.T) {
	velocity := Length.Dimension().Divide(Time.Dimension())
	assert.Equal(t, MeterPerSecond.Dimension(), velocity)
	assert.True(t, velocity.Multiply(velocity.Inverse()).IsDimensionless())
	assert.Equal(t, Length.Dimension().Pow(3), CubicMeter.Dimension())
	assert.Equal(t, "Base(12)", Base(12).String())
}

func TestCompatible(t *testing.T) {
	assert.True(t, Kilometer.IsCompatible(Mile))
	assert.True(t, Celsius.IsCompatible(Fahrenheit))
	assert.True(t, Gallon.IsCompatible(CubicMeter))
	assert.False(t, Meter.IsCompatible(Second))
	assert.False(t, Meter.IsCompatible(One))
	assert.True(t, Percent.IsCompatible(One))
}

func TestConverterTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to Unit
		input    float64
		expected float64
	}{
		{"km to m", Kilometer, Meter, 1, 1000},
		{"g to kg", Gram, Kilogram, 2000, 2},
		{"mg to g", Milligram, Gram, 1500, 1.5},
		{"mi to km", Mile, Kilometer, 1, 1.609344},
		{"ft to in", Foot, Inch, 3, 36},
		{"lb to oz", Pound, Ounce, 2, 32},
		{"gal to l", Gallon, Liter, 1, 3.785411784},
		{"m3 to l", CubicMeter, Liter, 1, 1000},
		{"hr to s", Hour, Second, 2, 7200},
		{"day to min", Day, Minute, 1, 1440},
		{"°C to K", Celsius, Kelvin, 0, 273.15},
		{"°C to °F", Celsius, Fahrenheit, 100, 212},
		{"°F to °C", Fahrenheit, Celsius, -40, -40},
		{"°FΔ to °CΔ", DeltaFahrenheit, DeltaCelsius, 9, 5},
		{"deg to rad", Degree, Radian, 180, math.Pi},
		{"turn to deg", Turn, Degree, 1, 360},
		{"KiB to bit", Kibibyte, Bit, 1, 8192},
		{"kph to m/s", KilometerPerHour, MeterPerSecond, 36, 10},
		{"% to one", Percent, One, 50, 0.5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := test.from.ConverterTo(test.to)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, c.Convert(test.input), 1e-9)
		})
	}
}

func TestConverterToIsExactForRationalUnits(t *testing.T) {
	c, err := Kilometer.ConverterTo(Millimeter)
	require.NoError(t, err)

	dividend, divisor, ok := converter.Ratio(c)
	require.True(t, ok)
	assert.Equal(t, int64(1000000), dividend)
	assert.Equal(t, int64(1), divisor)

	c, err = Turn.ConverterTo(Degree)
	require.NoError(t, err)
	assert.Equal(t, converter.MustRational(360, 1), c, "π cancels between turn and degree")
}

func TestConverterToSameUnit(t *testing.T) {
	c, err := Celsius.ConverterTo(Celsius)
	require.NoError(t, err)
	assert.True(t, c.IsIdentity())

	c, err = DeltaCelsius.ConverterTo(Kelvin)
	require.NoError(t, err)
	assert.True(t, c.IsIdentity())
}

func TestConverterToIncompatible(t *testing.T) {
	_, err := Meter.ConverterTo(Second)
	assert.ErrorIs(t, err, measure.ErrIncompatibleDimension)
	assert.Contains(t, err.Error(), "m [L] to s [T]")
}

func TestComposition(t *testing.T) {
	tests := []struct {
		name      string
		unit      Unit
		symbol    string
		dimension Dimension
	}{
		{"product", Meter.Multiply(Second), "m·s", Length.Dimension().Multiply(Time.Dimension())},
		{"quotient", MeterPerSecond, "m/s", Length.Dimension().Divide(Time.Dimension())},
		{"compound quotient", must(Meter.Divide(Meter.Multiply(Second))), "m/(m·s)", Time.Dimension().Inverse()},
		{"inverse", must(Second.Inverse()), "1/s", Time.Dimension().Inverse()},
		{"one over", must(One.Divide(Second)), "1/s", Time.Dimension().Inverse()},
		{"times one", Meter.Multiply(One), "m", Length.Dimension()},
		{"square", must(Meter.Pow(2)), "m^2", Length.Dimension().Pow(2)},
		{"negative power", must(Second.Pow(-2)), "1/s^2", Time.Dimension().Pow(-2)},
		{"zero power", must(Second.Pow(0)), "", Dimensionless},
		{"named", Newton, "N", Newton.Dimension()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.symbol, test.unit.Symbol())
			assert.Equal(t, test.dimension, test.unit.Dimension())
		})
	}
}

func TestPow(t *testing.T) {
	c, err := must(Kilometer.Pow(5)).ConverterTo(must(Meter.Pow(5)))
	require.NoError(t, err)
	dividend, divisor, ok := converter.Ratio(c)
	require.True(t, ok)
	assert.Equal(t, int64(1e15), dividend)
	assert.Equal(t, int64(1), divisor)

	c, err = must(Centimeter.Pow(-3)).ConverterTo(must(Meter.Pow(-3)))
	require.NoError(t, err)
	assert.Equal(t, 1e6, c.Convert(1))

	highest, err := Meter.Pow(maxPower)
	require.NoError(t, err)
	assert.Equal(t, Length.Dimension().Pow(maxPower), highest.Dimension())

	for _, n := range []int{maxPower + 1, -maxPower - 1, math.MinInt, math.MaxInt} {
		_, err := Meter.Pow(n)
		assert.ErrorIs(t, err, measure.ErrOverflow, "exponent %d", n)
	}
}

func TestCompositionScales(t *testing.T) {
	squareKm := must(Kilometer.Pow(2))
	c, err := squareKm.ConverterTo(must(Meter.Pow(2)))
	require.NoError(t, err)
	assert.Equal(t, 1e6, c.Convert(1))

	perHour := must(Hour.Inverse())
	c, err = perHour.ConverterTo(Hertz)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3600, c.Convert(1), 1e-15)

	// offsets do not take part in products
	c, err = Celsius.Multiply(Meter).ConverterTo(Kelvin.Multiply(Meter))
	require.NoError(t, err)
	assert.True(t, c.IsIdentity())

	kJ := Kilo.Of(Joule)
	c, err = kJ.ConverterTo(must(Kilogram.Multiply(must(Meter.Pow(2))).Divide(must(Second.Pow(2)))))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, c.Convert(1))
}

func TestInverseOverflow(t *testing.T) {
	odd := Meter.Transform("odd", converter.MustRational(math.MinInt64, 1))

	_, err := odd.Inverse()
	assert.ErrorIs(t, err, measure.ErrOverflow)

	_, err = Meter.Divide(odd)
	assert.ErrorIs(t, err, measure.ErrOverflow)

	_, err = Meter.ConverterTo(odd)
	assert.ErrorIs(t, err, measure.ErrOverflow)
}

func TestEqual(t *testing.T) {
	assert.True(t, Meter.Equal(New("m", Length.Dimension())))
	assert.True(t, One.Equal(Unit{}))
	assert.False(t, DeltaCelsius.Equal(Kelvin))
	assert.False(t, Kilometer.Equal(Meter))
	assert.True(t, Kilo.Of(Meter).Equal(Kilometer))
}

func TestPrefixes(t *testing.T) {
	assert.Equal(t, "μm", Micrometer.Symbol())
	assert.Equal(t, "KiB", Kibibyte.Symbol())
	assert.Equal(t, "k", Kilo.Symbol())

	c, err := Gibibyte.ConverterTo(Mebibyte)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, c.Convert(1))
}
