// Package sizetier assigns a fulfillment size tier to a measured package.
//
// Classification is two-pass: the billable weight depends on the tier and the
// tier depends on the billable weight. A provisional tier computed from the
// actual weight decides whether dimensional weight applies; the final tier is
// then recomputed from the billable weight.
package sizetier

import (
	"math"

	"fba-cost/core/types"
	"fba-cost/core/units"
)

// Tier limits. Weights in ounces unless suffixed Lb.
const (
	smallStandardMaxOz       = 16.0
	smallStandardMaxLongest  = 15.0
	smallStandardMaxMedian   = 12.0
	smallStandardMaxShortest = 0.75

	largeStandardMaxOz       = 320.0
	largeStandardMaxLongest  = 18.0
	largeStandardMaxMedian   = 14.0
	largeStandardMaxShortest = 8.0

	specialMinLb      = 150.0
	specialMinLongest = 108.0
	specialMinGirth   = 165.0

	smallOversizeMaxLb      = 70.0
	smallOversizeMaxLongest = 60.0
	smallOversizeMaxMedian  = 30.0
	smallOversizeMaxGirth   = 130.0

	largeOversizeMaxLb      = 50.0
	largeOversizeMaxLongest = 108.0
	largeOversizeMaxGirth   = 165.0

	// DimensionalExemptOz is the actual weight at which special oversize
	// packages stop being billed on dimensional weight.
	DimensionalExemptOz = 2400.0
)

// Result is the outcome of classifying one package
type Result struct {
	// Tier is the final size tier
	Tier types.SizeTier `json:"tier"`

	// ProvisionalTier is the tier implied by the actual weight alone
	ProvisionalTier types.SizeTier `json:"provisional_tier"`

	// BillableWeightOz is the weight used for fee lookup
	BillableWeightOz float64 `json:"billable_weight_oz"`

	// ActualWeightOz is the scale weight
	ActualWeightOz float64 `json:"actual_weight_oz"`

	// VolumetricWeightOz is the dimensional weight
	VolumetricWeightOz float64 `json:"volumetric_weight_oz"`

	// DimensionalApplied is true when volumetric weight exceeded actual weight and was billed
	DimensionalApplied bool `json:"dimensional_applied"`

	Longest  float64 `json:"longest_in"`
	Median   float64 `json:"median_in"`
	Shortest float64 `json:"shortest_in"`
	Girth    float64 `json:"girth_in"`
}

// BillableWeightLb returns the billable weight in pounds
func (r Result) BillableWeightLb() float64 {
	return units.OuncesToPounds(r.BillableWeightOz)
}

// Classify runs the two-pass tier assignment
func Classify(m units.Measurement) Result {
	longest, median, shortest := m.Sorted()
	girth := Girth(longest, median, shortest)
	actual := units.Sanitize(m.WeightOz)
	volumetric := m.VolumetricWeightOz()

	provisional := TierFor(actual, longest, median, shortest, girth)

	billable := actual
	if !exemptFromDimensional(provisional, actual) {
		billable = math.Max(actual, volumetric)
	}

	return Result{
		Tier:               TierFor(billable, longest, median, shortest, girth),
		ProvisionalTier:    provisional,
		BillableWeightOz:   billable,
		ActualWeightOz:     actual,
		VolumetricWeightOz: volumetric,
		DimensionalApplied: billable > actual,
		Longest:            longest,
		Median:             median,
		Shortest:           shortest,
		Girth:              girth,
	}
}

// Girth is longest side plus twice the other two sides
func Girth(longest, median, shortest float64) float64 {
	return longest + 2*median + 2*shortest
}

func exemptFromDimensional(provisional types.SizeTier, actualOz float64) bool {
	if provisional == types.SmallStandard {
		return true
	}
	return provisional == types.SpecialOversize && actualOz >= DimensionalExemptOz
}

// TierFor evaluates the tier predicates in precedence order.
// Sides must already be sorted descending.
func TierFor(weightOz, longest, median, shortest, girth float64) types.SizeTier {
	if weightOz <= smallStandardMaxOz &&
		longest <= smallStandardMaxLongest &&
		median <= smallStandardMaxMedian &&
		shortest <= smallStandardMaxShortest {
		return types.SmallStandard
	}

	if weightOz <= largeStandardMaxOz &&
		longest <= largeStandardMaxLongest &&
		median <= largeStandardMaxMedian &&
		shortest <= largeStandardMaxShortest {
		return types.LargeStandard
	}

	lb := units.OuncesToPounds(weightOz)
	switch {
	case lb > specialMinLb || longest > specialMinLongest || girth > specialMinGirth:
		return types.SpecialOversize
	case lb <= smallOversizeMaxLb && longest <= smallOversizeMaxLongest &&
		median <= smallOversizeMaxMedian && girth <= smallOversizeMaxGirth:
		return types.SmallOversize
	case lb <= largeOversizeMaxLb && longest <= largeOversizeMaxLongest && girth <= largeOversizeMaxGirth:
		return types.LargeOversize
	default:
		return types.SpecialOversize
	}
}
