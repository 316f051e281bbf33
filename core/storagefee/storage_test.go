package storagefee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fba-cost/core/types"
)

var (
	preCutover  = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	postCutover = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
)

func assertMoney(t *testing.T, expected string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(got), "expected %s, got %s", expected, got.String())
}

func baseInput() Input {
	return Input{
		Quantity:         100,
		CubicFeetPerUnit: 0.5,
		Category:         types.CategoryNormal,
		Season:           types.StorageJanSep,
		SizeTier:         types.LargeStandard,
		CalcDate:         preCutover,
	}
}

func TestCalculate_BaseRate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Input)
		expected string
	}{
		{"standard jan-sep", func(in *Input) {}, "39"},
		{"standard oct-dec", func(in *Input) { in.Season = types.StorageOctDec }, "120"},
		{"oversize jan-sep", func(in *Input) { in.SizeTier = types.SmallOversize }, "28"},
		{"dangerous ignores tier", func(in *Input) {
			in.Category = types.CategoryDangerous
			in.Season = types.StorageOctDec
			in.SizeTier = types.LargeOversize
		}, "181.5"},
		{"zero quantity", func(in *Input) { in.Quantity = 0 }, "0"},
		{"negative volume coerced", func(in *Input) { in.CubicFeetPerUnit = -3 }, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)
			r := Fee(in)
			assertMoney(t, tt.expected, r.Base)
		})
	}
}

func TestCalculate_Utilization(t *testing.T) {
	in := baseInput()
	in.UtilizationWeeks = 30
	r := Fee(in)
	assertMoney(t, "38", r.Utilization)
	assertMoney(t, "0.76", r.UtilizationRate)
	assert.Empty(t, r.UtilizationReason)

	in.SizeTier = types.SmallOversize
	assertMoney(t, "23", Fee(in).Utilization)

	// dangerous goods always take the standard rate
	in.Category = types.CategoryDangerous
	assertMoney(t, "38", Fee(in).Utilization)
}

func TestCalculate_UtilizationReasons(t *testing.T) {
	in := baseInput()
	in.UtilizationWeeks = 40
	in.Exempt = true
	r := Fee(in)
	assert.True(t, r.Utilization.IsZero())
	assert.Equal(t, ReasonExempt, r.UtilizationReason)

	in = baseInput()
	in.UtilizationWeeks = 40
	in.CubicFeetPerUnit = 0.249
	r = Fee(in)
	assert.True(t, r.Utilization.IsZero())
	assert.Equal(t, ReasonVolumeFloor, r.UtilizationReason)

	in = baseInput()
	in.UtilizationWeeks = 22
	r = Fee(in)
	assert.True(t, r.Utilization.IsZero())
	assert.Equal(t, ReasonGracePeriod, r.UtilizationReason)

	// exactly at the volume floor is charged
	in = baseInput()
	in.Quantity = 50
	in.UtilizationWeeks = 60
	r = Fee(in)
	assert.Equal(t, 25.0, r.TotalVolume)
	assertMoney(t, "47", r.Utilization)
}

func TestCalculate_UtilizationZeroProperty(t *testing.T) {
	for qty := 0; qty <= 120; qty += 7 {
		for weeks := 0.0; weeks <= 60; weeks += 2.5 {
			for _, exempt := range []bool{false, true} {
				in := baseInput()
				in.Quantity = qty
				in.UtilizationWeeks = weeks
				in.Exempt = exempt
				r := Fee(in)
				if exempt || r.TotalVolume < UtilizationVolumeFloor || weeks <= UtilizationGraceWeeks {
					assert.True(t, r.Utilization.IsZero(), "qty=%d weeks=%.1f exempt=%v", qty, weeks, exempt)
				}
			}
		}
	}
}

func TestCalculate_AgedPinnedRates(t *testing.T) {
	in := baseInput()
	in.Quantity = 10
	in.AgeDays = 366
	r := Fee(in)
	assert.False(t, r.AgedPolicyPost)
	assertMoney(t, "6.9", r.AgedRate)
	assertMoney(t, "34.5", r.Aged)

	in = baseInput()
	in.Quantity = 2
	in.CubicFeetPerUnit = 1
	in.AgeDays = 456
	in.CalcDate = postCutover
	r = Fee(in)
	assert.True(t, r.AgedPolicyPost)
	assertMoney(t, "7.9", r.AgedRate)
	assertMoney(t, "15.8", r.Aged)
}

func TestCalculate_AgedMinimumPerUnit(t *testing.T) {
	in := baseInput()
	in.Quantity = 10
	in.CubicFeetPerUnit = 0.01
	in.AgeDays = 400
	assertMoney(t, "1.5", Fee(in).Aged)

	in.AgeDays = 500
	in.CalcDate = postCutover
	assertMoney(t, "2", Fee(in).Aged)

	// brackets without a floor charge the volume rate only
	in.AgeDays = 200
	assertMoney(t, "0.05", Fee(in).Aged)
}

func TestCalculate_AgedBelowFirstBracket(t *testing.T) {
	in := baseInput()
	in.AgeDays = 180
	r := Fee(in)
	assert.True(t, r.Aged.IsZero())
	assert.Equal(t, ReasonNotAged, r.AgedReason)
}

func TestCalculate_ApparelWaiver(t *testing.T) {
	for _, date := range []time.Time{preCutover, postCutover} {
		for age := 150; age <= 500; age++ {
			in := baseInput()
			in.Category = types.CategoryApparel
			in.AgeDays = age
			in.CalcDate = date
			r := Fee(in)
			if age >= ApparelWaiverMinDays && age <= ApparelWaiverMaxDays {
				assert.True(t, r.Aged.IsZero(), "age %d", age)
				assert.Equal(t, ReasonApparelWaive, r.AgedReason)
			}
		}
	}

	in := baseInput()
	in.Category = types.CategoryApparel
	in.AgeDays = 271
	assertMoney(t, "272.5", Fee(in).Aged)
}

func TestCalculate_Total(t *testing.T) {
	in := baseInput()
	in.UtilizationWeeks = 30
	in.AgeDays = 366
	r := Fee(in)
	// 39 base + 38 utilization + 100 x 3.45 aged
	assertMoney(t, "422", r.Total)
	assertMoney(t, "4.22", r.PerUnit(in.Quantity))
	assert.Contains(t, r.Describe(), "6.90/ft³")
}
