package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fba-cost/core/ratetable"
	"fba-cost/core/referral"
	"fba-cost/core/types"
	"fba-cost/core/units"
)

var fixedNow = time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestEngine(opts ...Option) *Engine {
	return New(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func envelope() ProductInput {
	return ProductInput{
		Name:             "envelope",
		Dimensions:       units.Dimensions{Length: 13.8, Width: 9, Height: 0.7},
		Weight:           2.88,
		WeightUnit:       types.Ounce,
		Price:            d("15"),
		Category:         types.CategoryNormal,
		Season:           types.SeasonNonPeak2025,
		ReferralCategory: "home_kitchen",
		COGS:             d("2"),
		FXRate:           d("1"),
		Quantity:         10,
	}
}

func hasAssumption(q *Quote, category string) bool {
	for _, a := range q.Assumptions {
		if a.Category == category {
			return true
		}
	}
	return false
}

func TestQuote_SmallStandardPipeline(t *testing.T) {
	q := newTestEngine().Quote(envelope())

	assert.Equal(t, "envelope", q.Name)
	assert.Equal(t, types.SmallStandard, q.SizeTier.Tier)
	assert.Equal(t, 2.88, q.SizeTier.BillableWeightOz)
	assert.Equal(t, "3.15", q.Fulfillment.Total.StringFixed(2))
	assert.Equal(t, "2.25", q.Referral.Fee.StringFixed(2))
	assert.True(t, q.Referral.Matched)
	assert.Equal(t, referral.KindFlat, q.Referral.Kind)

	assert.True(t, q.Profit.AmazonPayout.Equal(d("15").Sub(q.Referral.Fee).Sub(q.Fulfillment.Total)))
	assert.True(t, q.StoragePerUnit.IsPositive())
	assert.Equal(t, fixedNow, q.CalcDate)
	assert.Equal(t, ratetable.Default().Snapshot().ShortHash(), q.TableVersion)
	assert.False(t, hasAssumption(q, "billable_weight"))
	assert.False(t, hasAssumption(q, "rate_table"))
}

func TestQuote_VolumetricAssumption(t *testing.T) {
	in := envelope()
	in.Dimensions = units.Dimensions{Length: 17, Width: 13, Height: 7.5}
	in.Weight = 1
	in.WeightUnit = types.Pound

	q := newTestEngine().Quote(in)
	assert.Equal(t, types.LargeStandard, q.SizeTier.Tier)
	assert.True(t, q.SizeTier.DimensionalApplied)
	assert.True(t, hasAssumption(q, "billable_weight"))
}

func TestQuote_FallbackScheduleAssumption(t *testing.T) {
	in := envelope()
	in.Season = "peak2031"
	q := newTestEngine().Quote(in)

	assert.True(t, q.Fulfillment.Fallback)
	assert.Equal(t, ratetable.FallbackKey, q.Fulfillment.Schedule)
	assert.True(t, hasAssumption(q, "rate_table"))
}

func TestQuote_Referral(t *testing.T) {
	e := newTestEngine()

	in := envelope()
	in.ReferralCategory = "spaceships"
	q := e.Quote(in)
	assert.False(t, q.Referral.Matched)
	assert.Equal(t, ratetable.DefaultReferralCategory, q.Referral.Category)
	assert.True(t, hasAssumption(q, "referral"))

	in = envelope()
	in.ReferralRule = referral.Flat{Rate: d("0.10"), Min: decimal.Zero}
	q = e.Quote(in)
	assert.Equal(t, "custom", q.Referral.Category)
	assert.Equal(t, "1.50", q.Referral.Fee.StringFixed(2))

	in = envelope()
	in.Price = d("1")
	q = e.Quote(in)
	assert.Equal(t, "0.30", q.Referral.Fee.StringFixed(2))
	assert.True(t, hasAssumption(q, "referral"))
}

func TestQuote_Defaults(t *testing.T) {
	in := envelope()
	in.Category = ""
	in.Season = ""
	in.ReferralCategory = ""
	in.Quantity = 0

	q := newTestEngine().Quote(in)
	assert.Equal(t, types.CategoryNormal, q.Input.Category)
	assert.Equal(t, types.SeasonNonPeak2025, q.Input.Season)
	assert.Equal(t, ratetable.DefaultReferralCategory, q.Input.ReferralCategory)
	assert.Equal(t, 1, q.Input.Quantity)
	assert.Equal(t, types.StorageJanSep, q.Input.StorageSeason)

	q = newTestEngine(WithDefaults(Defaults{Season: types.SeasonPeak2025})).Quote(in)
	assert.Equal(t, "3.34", q.Fulfillment.Total.StringFixed(2))
}

func TestQuote_CalcDateSelectsAgedPolicy(t *testing.T) {
	in := envelope()
	in.AgeDays = 456
	in.CubicFeetPerUnit = 1

	q := newTestEngine().Quote(in)
	assert.False(t, q.Storage.AgedPolicyPost)
	assert.Equal(t, "6.90", q.Storage.AgedRate.StringFixed(2))

	in.CalcDate = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	q = newTestEngine().Quote(in)
	assert.True(t, q.Storage.AgedPolicyPost)
	assert.Equal(t, "7.90", q.Storage.AgedRate.StringFixed(2))
	assert.Equal(t, 1.0, q.CubicFeetPerUnit)
}

func TestQuote_ApparelWaiverAssumption(t *testing.T) {
	in := envelope()
	in.Category = types.CategoryApparel
	in.AgeDays = 200
	q := newTestEngine().Quote(in)
	assert.True(t, q.Storage.Aged.IsZero())
	assert.True(t, hasAssumption(q, "storage"))
}

func TestQuote_ROISentinelAssumption(t *testing.T) {
	in := envelope()
	in.COGS = decimal.Zero
	q := newTestEngine().Quote(in)
	require.True(t, q.Profit.ROIIsSentinel)
	assert.True(t, hasAssumption(q, "profit"))
}

func TestQuoteBatch_PreservesOrderAndSummarizes(t *testing.T) {
	loss := envelope()
	loss.Name = "loss-leader"
	loss.Price = d("5")
	loss.COGS = d("10")

	quotes := newTestEngine().QuoteBatch([]ProductInput{envelope(), loss})
	require.Len(t, quotes, 2)
	assert.Equal(t, "envelope", quotes[0].Name)
	assert.Equal(t, "loss-leader", quotes[1].Name)

	s := Summarize(quotes)
	assert.Equal(t, 2, s.Products)
	assert.Equal(t, 20, s.Units)
	assert.Equal(t, "200.00", s.Revenue.StringFixed(2))
	assert.Equal(t, []string{"loss-leader"}, s.Unprofitable)
	assert.True(t, s.TotalNetProfit.Equal(quotes[0].Profit.BatchNetProfit.Add(quotes[1].Profit.BatchNetProfit)))
	assert.Equal(t, "120.00", s.TotalInvestment.StringFixed(2))
}

func TestQuote_ConcurrentUse(t *testing.T) {
	e := newTestEngine()
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- e.Quote(envelope()).Fulfillment.Total.StringFixed(2)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, "3.15", <-done)
	}
}

func TestQuote_NegativeAmountsPriceAsZero(t *testing.T) {
	e := newTestEngine()

	zero := envelope()
	zero.COGS = decimal.Zero
	zero.AdSpend = decimal.Zero
	zero.ReturnRate = decimal.Zero

	negative := envelope()
	negative.COGS = d("-100")
	negative.AdSpend = d("-50")
	negative.ReturnRate = d("-0.2")

	want := e.Quote(zero).Profit
	got := e.Quote(negative).Profit
	assert.True(t, want.NetProfit.Equal(got.NetProfit), "net %s vs %s", want.NetProfit, got.NetProfit)
	assert.True(t, want.ReturnLoss.Equal(got.ReturnLoss))
	assert.True(t, got.ACoS.IsZero())
}

func TestQuote_NegativePriceIsZero(t *testing.T) {
	in := envelope()
	in.Price = d("-10")
	q := newTestEngine().Quote(in)

	assert.True(t, q.Input.Price.IsZero())
	assert.True(t, q.Referral.Fee.IsZero())
	assert.True(t, q.Profit.AmazonPayout.Equal(q.Fulfillment.Total.Neg()),
		"payout %s", q.Profit.AmazonPayout)
}

func TestQuoteBatch_CallsHookPerQuote(t *testing.T) {
	second := envelope()
	second.Name = "second"

	var seen []string
	quotes := newTestEngine().QuoteBatch([]ProductInput{envelope(), second}, func(q *Quote) {
		seen = append(seen, q.Name)
	}, nil)
	require.Len(t, quotes, 2)
	assert.Equal(t, []string{"envelope", "second"}, seen)
}
