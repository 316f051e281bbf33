// Package units converts caller-supplied dimensions and weights into
// canonical inches and ounces.
//
// All functions are total: malformed input is coerced to zero, never rejected.
package units

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"fba-cost/core/types"
)

const (
	cmPerInch      = 2.54
	gramsPerOunce  = 28.3495
	ouncesPerPound = 16.0

	// DimensionalDivisor converts cubic inches to dimensional pounds
	DimensionalDivisor = 139.0

	// MinDimensionalSide is the floor applied to width and height for volumetric weight
	MinDimensionalSide = 2.0

	cubicInchesPerFoot = 1728.0
)

// Dimensions are raw, caller-ordered package sides
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measurement is a canonicalized package: inches and ounces, all non-negative
type Measurement struct {
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
	WeightOz float64 `json:"weight_oz"`
}

// Normalize converts dims and weight into a Measurement
func Normalize(dims Dimensions, dimUnit types.DimensionUnit, weight float64, weightUnit types.WeightUnit) Measurement {
	return Measurement{
		LengthIn: ToInches(dims.Length, dimUnit),
		WidthIn:  ToInches(dims.Width, dimUnit),
		HeightIn: ToInches(dims.Height, dimUnit),
		WeightOz: ToOunces(weight, weightUnit),
	}
}

// ToInches converts a length to inches
func ToInches(v float64, unit types.DimensionUnit) float64 {
	v = Sanitize(v)
	if unit == types.Centimeter {
		return v / cmPerInch
	}
	return v
}

// ToOunces converts a weight to ounces
func ToOunces(v float64, unit types.WeightUnit) float64 {
	v = Sanitize(v)
	switch unit {
	case types.Gram:
		return v / gramsPerOunce
	case types.Kilogram:
		return v * 1000 / gramsPerOunce
	case types.Pound:
		return v * ouncesPerPound
	default:
		return v
	}
}

// OuncesToPounds converts ounces to pounds
func OuncesToPounds(oz float64) float64 {
	return oz / ouncesPerPound
}

// PoundsToOunces converts pounds to ounces
func PoundsToOunces(lb float64) float64 {
	return lb * ouncesPerPound
}

// Sanitize coerces NaN, infinities and negatives to zero
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseOrZero parses a decimal string, returning 0 for anything unusable
func ParseOrZero(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Sanitize(v)
}

// ParseDimensionUnit accepts common length spellings; anything else is inches
func ParseDimensionUnit(s string) types.DimensionUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm", "cms", "centimeter", "centimeters", "centimetre", "centimetres":
		return types.Centimeter
	default:
		return types.Inch
	}
}

// ParseWeightUnit accepts common weight spellings; anything else is ounces
func ParseWeightUnit(s string) types.WeightUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "gram", "grams", "gr":
		return types.Gram
	case "kg", "kilogram", "kilograms", "kgs":
		return types.Kilogram
	case "lb", "lbs", "pound", "pounds":
		return types.Pound
	default:
		return types.Ounce
	}
}

// Sorted returns the three sides ordered longest, median, shortest
func (m Measurement) Sorted() (longest, median, shortest float64) {
	sides := []float64{Sanitize(m.LengthIn), Sanitize(m.WidthIn), Sanitize(m.HeightIn)}
	sort.Sort(sort.Reverse(sort.Float64Slice(sides)))
	return sides[0], sides[1], sides[2]
}

// VolumetricWeightOz is the dimensional weight in ounces.
// Width and height are floored at two inches.
func (m Measurement) VolumetricWeightOz() float64 {
	longest, median, shortest := m.Sorted()
	lb := longest * math.Max(median, MinDimensionalSide) * math.Max(shortest, MinDimensionalSide) / DimensionalDivisor
	return PoundsToOunces(lb)
}

// CubicFeet is the package volume in cubic feet
func (m Measurement) CubicFeet() float64 {
	longest, median, shortest := m.Sorted()
	return longest * median * shortest / cubicInchesPerFoot
}
