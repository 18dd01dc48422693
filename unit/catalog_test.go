// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		symbol   string
		expected Unit
	}{
		{"m", Meter},
		{"km", Kilometer},
		{"μm", Micrometer},
		{"µm", Micrometer}, // micro sign
		{"um", Micrometer},
		{"㎞", Kilometer},
		{"°C", Celsius},
		{"℃", Celsius},
		{"C", Celsius},
		{"℉", Fahrenheit},
		{"dF", DeltaFahrenheit},
		{"l", Liter},
		{"L", Liter},
		{"kph", KilometerPerHour},
		{"km/hr", KilometerPerHour},
		{"N", Newton},
	}

	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			u, ok := Lookup(test.symbol)
			assert.True(t, ok)
			assert.True(t, test.expected.Equal(u), "got %s", u)
		})
	}

	_, ok := Lookup("furlong")
	assert.False(t, ok)
}

func TestByDimension(t *testing.T) {
	assert.Equal(t, []string{"μg", "mg", "g", "kg", "oz", "lb"}, Symbols(ByDimension(Mass.Dimension())))
	assert.Equal(t, []string{"K", "°C", "°F", "°CΔ", "°FΔ"}, Symbols(ByDimension(Temperature.Dimension())))
	assert.Empty(t, ByDimension(Luminosity.Dimension().Pow(2)))
}

func TestCatalogSymbolsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range Catalog() {
		assert.False(t, seen[entry.Unit.Symbol()], "duplicate %s", entry.Unit.Symbol())
		seen[entry.Unit.Symbol()] = true
		assert.NotEmpty(t, entry.Description)
	}
}
