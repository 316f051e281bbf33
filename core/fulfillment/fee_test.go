package fulfillment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fba-cost/core/types"
	"fba-cost/core/units"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, types.Under10, BandFor(d("9.99")))
	assert.Equal(t, types.Mid10to50, BandFor(d("10")))
	assert.Equal(t, types.Mid10to50, BandFor(d("50")))
	assert.Equal(t, types.Over50, BandFor(d("50.01")))
	assert.Equal(t, types.Under10, BandFor(decimal.Zero))
}

func TestFee_Schedules(t *testing.T) {
	tests := []struct {
		name     string
		tier     types.SizeTier
		oz       float64
		price    string
		category types.Category
		season   types.Season
		lithium  bool
		expected string
	}{
		{"small standard step", types.SmallStandard, 2.88, "15", types.CategoryNormal, types.SeasonNonPeak2025, false, "3.15"},
		{"small standard low price", types.SmallStandard, 2.88, "9.99", types.CategoryNormal, types.SeasonNonPeak2025, false, "2.38"},
		{"small standard high price", types.SmallStandard, 2.88, "60", types.CategoryNormal, types.SeasonNonPeak2025, false, "3.41"},
		{"small standard inclusive breakpoint", types.SmallStandard, 4, "15", types.CategoryNormal, types.SeasonNonPeak2025, false, "3.15"},
		{"small standard above last step", types.SmallStandard, 20, "15", types.CategoryNormal, types.SeasonNonPeak2025, false, "3.65"},
		{"large standard last step", types.LargeStandard, 48, "20", types.CategoryNormal, types.SeasonNonPeak2025, false, "6.36"},
		{"large standard one increment", types.LargeStandard, 49, "20", types.CategoryNormal, types.SeasonNonPeak2025, false, "6.86"},
		{"large standard four pounds", types.LargeStandard, 64, "20", types.CategoryNormal, types.SeasonNonPeak2025, false, "7.10"},
		{"apparel large standard step", types.LargeStandard, 8.5 * 4.8 * 2 / 139 * 16, "20", types.CategoryApparel, types.SeasonNonPeak2025, false, "4.67"},
		{"apparel half pound increment", types.LargeStandard, 49, "20", types.CategoryApparel, types.SeasonNonPeak2025, false, "7.14"},
		{"apparel four pounds", types.LargeStandard, 64, "20", types.CategoryApparel, types.SeasonNonPeak2025, false, "7.30"},
		{"small oversize", types.SmallOversize, units.PoundsToOunces(7.9), "30", types.CategoryNormal, types.SeasonNonPeak2025, false, "12.27"},
		{"small oversize bands collapse", types.SmallOversize, units.PoundsToOunces(7.9), "80", types.CategoryNormal, types.SeasonNonPeak2025, false, "12.27"},
		{"large oversize", types.LargeOversize, units.PoundsToOunces(47.59), "30", types.CategoryNormal, types.SeasonNonPeak2025, false, "36.91"},
		{"special 0-50", types.SpecialOversize, units.PoundsToOunces(30), "30", types.CategoryNormal, types.SeasonNonPeak2025, false, "37.35"},
		{"special 50-70", types.SpecialOversize, units.PoundsToOunces(55), "30", types.CategoryNormal, types.SeasonNonPeak2025, false, "43.12"},
		{"special 50-70 below start", types.SpecialOversize, units.PoundsToOunces(50.5), "30", types.CategoryNormal, types.SeasonNonPeak2025, false, "40.12"},
		{"special 150+", types.SpecialOversize, units.PoundsToOunces(200), "30", types.CategoryNormal, types.SeasonNonPeak2025, false, "204.26"},
		{"lithium surcharge", types.SmallStandard, 2.88, "15", types.CategoryNormal, types.SeasonNonPeak2025, true, "3.26"},
		{"dangerous has no lithium surcharge", types.SmallStandard, 2.88, "15", types.CategoryDangerous, types.SeasonNonPeak2025, true, "4.07"},
		{"peak season", types.SmallStandard, 2.88, "15", types.CategoryNormal, types.SeasonPeak2025, false, "3.34"},
		{"2026 season", types.SmallStandard, 2.88, "15", types.CategoryNormal, types.SeasonNonPeak2026, false, "3.23"},
		{"unknown category falls back", types.SmallStandard, 2.88, "15", "furniture", types.SeasonPeak2025, false, "3.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fee(tt.tier, tt.oz, d(tt.price), tt.category, tt.season, tt.lithium)
			assert.True(t, d(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCalculate_BreakdownParts(t *testing.T) {
	b := NewCalculator(nil).Calculate(Request{
		Tier:             types.LargeStandard,
		BillableWeightOz: 64,
		Price:            d("25"),
		Category:         types.CategoryNormal,
		Season:           types.SeasonNonPeak2025,
		HasLithium:       true,
	})

	assert.Equal(t, types.Mid10to50, b.Band)
	assert.Equal(t, "6.78", b.Base.StringFixed(2))
	assert.Equal(t, "0.32", b.Weight.StringFixed(2))
	assert.Equal(t, "0.11", b.Lithium.StringFixed(2))
	assert.Equal(t, "7.21", b.Total.StringFixed(2))
	assert.False(t, b.Fallback)
	assert.Contains(t, b.Formula, "per 4 oz above 48 oz")
}

func TestCalculate_FallbackFlagged(t *testing.T) {
	b := NewCalculator(nil).Calculate(Request{
		Tier:     types.SmallStandard,
		Price:    d("15"),
		Category: types.CategoryApparel,
		Season:   "nonpeak2019",
	})
	assert.True(t, b.Fallback)
	assert.Equal(t, types.CategoryNormal, b.Schedule.Category)
	assert.Equal(t, types.SeasonNonPeak2025, b.Schedule.Season)
}

func TestFee_NonDecreasingInWeight(t *testing.T) {
	// special oversize restarts its per-pound charge at each band, so it is
	// only monotonic within a band
	tiers := []types.SizeTier{types.LargeStandard, types.SmallOversize, types.LargeOversize}
	for _, tier := range tiers {
		prev := decimal.Zero
		for oz := 0.5; oz <= 3200; oz += 0.5 {
			fee := Fee(tier, oz, d("25"), types.CategoryNormal, types.SeasonNonPeak2025, false)
			if fee.LessThan(prev) {
				t.Fatalf("%s: fee dropped from %s to %s at %.1f oz", tier, prev, fee, oz)
			}
			prev = fee
		}
	}
}
