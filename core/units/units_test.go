package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fba-cost/core/types"
)

func TestNormalize_Conversions(t *testing.T) {
	tests := []struct {
		name       string
		dims       Dimensions
		dimUnit    types.DimensionUnit
		weight     float64
		weightUnit types.WeightUnit
		expected   Measurement
	}{
		{
			name:       "inches and ounces pass through",
			dims:       Dimensions{Length: 13.8, Width: 9, Height: 0.7},
			dimUnit:    types.Inch,
			weight:     2.88,
			weightUnit: types.Ounce,
			expected:   Measurement{LengthIn: 13.8, WidthIn: 9, HeightIn: 0.7, WeightOz: 2.88},
		},
		{
			name:       "centimeters and grams",
			dims:       Dimensions{Length: 25.4, Width: 5.08, Height: 2.54},
			dimUnit:    types.Centimeter,
			weight:     28.3495,
			weightUnit: types.Gram,
			expected:   Measurement{LengthIn: 10, WidthIn: 2, HeightIn: 1, WeightOz: 1},
		},
		{
			name:       "pounds",
			dims:       Dimensions{Length: 1, Width: 1, Height: 1},
			dimUnit:    types.Inch,
			weight:     7.9,
			weightUnit: types.Pound,
			expected:   Measurement{LengthIn: 1, WidthIn: 1, HeightIn: 1, WeightOz: 126.4},
		},
		{
			name:       "kilograms",
			dims:       Dimensions{},
			dimUnit:    types.Inch,
			weight:     0.0283495,
			weightUnit: types.Kilogram,
			expected:   Measurement{WeightOz: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.dims, tt.dimUnit, tt.weight, tt.weightUnit)
			assert.InDelta(t, tt.expected.LengthIn, got.LengthIn, 1e-9)
			assert.InDelta(t, tt.expected.WidthIn, got.WidthIn, 1e-9)
			assert.InDelta(t, tt.expected.HeightIn, got.HeightIn, 1e-9)
			assert.InDelta(t, tt.expected.WeightOz, got.WeightOz, 1e-9)
		})
	}
}

func TestNormalize_CoercesBadInputToZero(t *testing.T) {
	got := Normalize(Dimensions{Length: -3, Width: math.NaN(), Height: math.Inf(1)}, types.Inch, -1, types.Pound)
	assert.Equal(t, Measurement{}, got)
}

func TestParseOrZero(t *testing.T) {
	assert.Equal(t, 0.0, ParseOrZero(""))
	assert.Equal(t, 0.0, ParseOrZero("abc"))
	assert.Equal(t, 0.0, ParseOrZero("-4"))
	assert.Equal(t, 0.0, ParseOrZero("NaN"))
	assert.Equal(t, 12.5, ParseOrZero(" 12.5 "))
	assert.Equal(t, 1250.0, ParseOrZero("1,250"))
}

func TestParseUnits(t *testing.T) {
	assert.Equal(t, types.Centimeter, ParseDimensionUnit("CM"))
	assert.Equal(t, types.Inch, ParseDimensionUnit("inches"))
	assert.Equal(t, types.Inch, ParseDimensionUnit("furlong"))
	assert.Equal(t, types.Gram, ParseWeightUnit("grams"))
	assert.Equal(t, types.Pound, ParseWeightUnit("LBS"))
	assert.Equal(t, types.Kilogram, ParseWeightUnit("kg"))
	assert.Equal(t, types.Ounce, ParseWeightUnit(""))
}

func TestVolumetricWeight(t *testing.T) {
	m := Measurement{LengthIn: 54, WidthIn: 35, HeightIn: 3.5}
	assert.InDelta(t, 47.59, OuncesToPounds(m.VolumetricWeightOz()), 0.005)

	// thin sides are floored at 2 inches
	thin := Measurement{LengthIn: 8.5, WidthIn: 4.8, HeightIn: 1}
	assert.InDelta(t, 8.5*4.8*2/139*16, thin.VolumetricWeightOz(), 1e-9)

	// side order does not matter
	shuffled := Measurement{LengthIn: 1, WidthIn: 8.5, HeightIn: 4.8}
	assert.InDelta(t, thin.VolumetricWeightOz(), shuffled.VolumetricWeightOz(), 1e-9)
}

func TestSortedAndCubicFeet(t *testing.T) {
	m := Measurement{LengthIn: 6, WidthIn: 24, HeightIn: 7.5}
	l, md, s := m.Sorted()
	assert.Equal(t, []float64{24, 7.5, 6}, []float64{l, md, s})

	cube := Measurement{LengthIn: 12, WidthIn: 12, HeightIn: 12}
	assert.InDelta(t, 1.0, cube.CubicFeet(), 1e-12)
}
