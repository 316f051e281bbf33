// Package fulfillment computes per-unit fulfillment (pick, pack and ship) fees
// from a size tier, billable weight, price band and rate schedule.
package fulfillment

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"fba-cost/core/ratetable"
	"fba-cost/core/types"
	"fba-cost/core/units"
)

// LithiumSurcharge is added per unit for lithium batteries outside the
// dangerous goods schedule
var LithiumSurcharge = decimal.RequireFromString("0.11")

var (
	ten   = decimal.NewFromInt(10)
	fifty = decimal.NewFromInt(50)
)

// Breakdown itemizes a fulfillment fee
type Breakdown struct {
	Band     types.PriceBand `json:"band"`
	Base     decimal.Decimal `json:"base"`
	Weight   decimal.Decimal `json:"weight"`
	Lithium  decimal.Decimal `json:"lithium"`
	Total    decimal.Decimal `json:"total"`
	Formula  string          `json:"formula"`
	Schedule ratetable.Key   `json:"schedule"`
	Fallback bool            `json:"fallback"`
	BillOz   float64         `json:"billable_weight_oz"`
	SizeTier types.SizeTier  `json:"size_tier"`
}

// Request is the input to Calculate
type Request struct {
	Tier             types.SizeTier
	BillableWeightOz float64
	Price            decimal.Decimal
	Category         types.Category
	Season           types.Season
	HasLithium       bool
}

// Calculator prices fulfillment against a repository
type Calculator struct {
	repo *ratetable.Repository
}

// NewCalculator creates a calculator. A nil repository uses ratetable.Default().
func NewCalculator(repo *ratetable.Repository) *Calculator {
	if repo == nil {
		repo = ratetable.Default()
	}
	return &Calculator{repo: repo}
}

// Fee returns the total fulfillment fee using the default repository
func Fee(tier types.SizeTier, billableWeightOz float64, price decimal.Decimal, category types.Category, season types.Season, hasLithium bool) decimal.Decimal {
	return NewCalculator(nil).Calculate(Request{
		Tier:             tier,
		BillableWeightOz: billableWeightOz,
		Price:            price,
		Category:         category,
		Season:           season,
		HasLithium:       hasLithium,
	}).Total
}

// BandFor buckets a price: under $10, $10 to $50 inclusive, over $50
func BandFor(price decimal.Decimal) types.PriceBand {
	switch {
	case price.LessThan(ten):
		return types.Under10
	case price.LessThanOrEqual(fifty):
		return types.Mid10to50
	default:
		return types.Over50
	}
}

// Calculate prices a single unit
func (c *Calculator) Calculate(req Request) Breakdown {
	oz := units.Sanitize(req.BillableWeightOz)
	band := BandFor(req.Price)
	schedule, fallback := c.repo.Schedule(req.Category, req.Season)

	b := Breakdown{
		Band:     band,
		Base:     decimal.Zero,
		Weight:   decimal.Zero,
		Lithium:  decimal.Zero,
		Schedule: schedule.Key,
		Fallback: fallback,
		BillOz:   oz,
		SizeTier: req.Tier,
	}

	switch req.Tier {
	case types.SmallStandard:
		fee, ok := ratetable.LookupStep(schedule.SmallStandard, oz, band)
		if !ok {
			last := schedule.SmallStandard[len(schedule.SmallStandard)-1]
			fee = last.Fee.At(band)
		}
		b.Base = fee
		b.Formula = fmt.Sprintf("small standard step <= %s", stepLabel(schedule.SmallStandard, oz))

	case types.LargeStandard:
		if fee, ok := ratetable.LookupStep(schedule.LargeStandard, oz, band); ok {
			b.Base = fee
			b.Formula = fmt.Sprintf("large standard step <= %s", stepLabel(schedule.LargeStandard, oz))
			break
		}
		over := schedule.LargeStandardOver
		steps := math.Ceil((oz - over.FromOz) / over.UnitOz)
		b.Base = over.Base.At(band)
		b.Weight = over.Fee.Mul(decimal.NewFromFloat(steps))
		b.Formula = fmt.Sprintf("%s + %.0f x %s per %.0f oz above %.0f oz",
			b.Base.StringFixed(2), steps, over.Fee.StringFixed(2), over.UnitOz, over.FromOz)

	case types.SmallOversize:
		b.Base, b.Weight, b.Formula = perPound(schedule.SmallOversize, oz, band)

	case types.LargeOversize:
		b.Base, b.Weight, b.Formula = perPound(schedule.LargeOversize, oz, band)

	case types.SpecialOversize:
		wb := schedule.SpecialBand(units.OuncesToPounds(oz))
		b.Base, b.Weight, b.Formula = perPound(wb.PerPound, oz, band)
	}

	if req.HasLithium && req.Category != types.CategoryDangerous {
		b.Lithium = LithiumSurcharge
	}

	b.Total = b.Base.Add(b.Weight).Add(b.Lithium)
	return b
}

// perPound charges whole pounds above StartLb, rounded up
func perPound(p ratetable.PerPound, oz float64, band types.PriceBand) (base, weight decimal.Decimal, formula string) {
	lb := units.OuncesToPounds(oz)
	pounds := math.Ceil(math.Max(0, lb-p.StartLb))
	base = p.Base.At(band)
	weight = p.PerLb.Mul(decimal.NewFromFloat(pounds))
	formula = fmt.Sprintf("%s + %.0f lb x %s above %.0f lb", base.StringFixed(2), pounds, p.PerLb.StringFixed(2), p.StartLb)
	return base, weight, formula
}

func stepLabel(steps []ratetable.Step, oz float64) string {
	for _, s := range steps {
		if oz <= s.MaxOz {
			return fmt.Sprintf("%g oz", s.MaxOz)
		}
	}
	if len(steps) == 0 {
		return "?"
	}
	return fmt.Sprintf("%g oz", steps[len(steps)-1].MaxOz)
}
