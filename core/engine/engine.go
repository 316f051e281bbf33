// Package engine provides the quote engine.
// CLI and batch runners are thin wrappers around this engine.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"fba-cost/core/fulfillment"
	"fba-cost/core/profit"
	"fba-cost/core/ratetable"
	"fba-cost/core/referral"
	"fba-cost/core/sizetier"
	"fba-cost/core/storagefee"
	"fba-cost/core/types"
	"fba-cost/core/units"
)

// Engine chains normalization, classification, fee calculation and
// profitability for a product. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	repo        *ratetable.Repository
	fulfillment *fulfillment.Calculator
	storage     *storagefee.Calculator
	defaults    Defaults
	now         func() time.Time
}

// Defaults fill blank product fields
type Defaults struct {
	Category         types.Category
	Season           types.Season
	StorageSeason    types.StorageSeason
	ReferralCategory string
}

// Option configures an Engine
type Option func(*Engine)

// WithRepository prices against repo instead of the built-in tables
func WithRepository(repo *ratetable.Repository) Option {
	return func(e *Engine) {
		if repo != nil {
			e.repo = repo
		}
	}
}

// WithDefaults sets the values used for blank product fields
func WithDefaults(d Defaults) Option {
	return func(e *Engine) {
		if d.Category != "" {
			e.defaults.Category = d.Category
		}
		if d.Season != "" {
			e.defaults.Season = d.Season
		}
		if d.StorageSeason != "" {
			e.defaults.StorageSeason = d.StorageSeason
		}
		if d.ReferralCategory != "" {
			e.defaults.ReferralCategory = d.ReferralCategory
		}
	}
}

// WithClock sets the source of the calculation date for products without one
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an engine over the process-wide default tables
func New(opts ...Option) *Engine {
	e := &Engine{
		repo: ratetable.Default(),
		defaults: Defaults{
			Category:         types.CategoryNormal,
			Season:           types.SeasonNonPeak2025,
			StorageSeason:    types.StorageJanSep,
			ReferralCategory: ratetable.DefaultReferralCategory,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.fulfillment = fulfillment.NewCalculator(e.repo)
	e.storage = storagefee.NewCalculator(e.repo)
	return e
}

// Repository returns the tables the engine prices against
func (e *Engine) Repository() *ratetable.Repository {
	return e.repo
}

// Quote prices a single product
func (e *Engine) Quote(in ProductInput) *Quote {
	in = e.applyDefaults(in)

	q := &Quote{
		Name:         in.Name,
		Input:        in,
		CalcDate:     in.CalcDate,
		TableVersion: e.repo.Snapshot().ShortHash(),
	}

	q.Measurement = units.Normalize(in.Dimensions, in.DimensionUnit, in.Weight, in.WeightUnit)
	q.SizeTier = sizetier.Classify(q.Measurement)
	if q.SizeTier.DimensionalApplied {
		q.assume("billable_weight", "volumetric weight %.2f oz billed over actual %.2f oz",
			q.SizeTier.VolumetricWeightOz, q.SizeTier.ActualWeightOz)
	}

	q.Fulfillment = e.fulfillment.Calculate(fulfillment.Request{
		Tier:             q.SizeTier.Tier,
		BillableWeightOz: q.SizeTier.BillableWeightOz,
		Price:            in.Price,
		Category:         in.Category,
		Season:           in.Season,
		HasLithium:       in.HasLithium,
	})
	if q.Fulfillment.Fallback {
		q.assume("rate_table", "no fulfillment schedule for %s/%s; priced with %s",
			in.Category, in.Season, q.Fulfillment.Schedule)
	}

	q.Referral = e.referral(in, q)
	q.Storage = e.storageFor(in, q)
	q.StoragePerUnit = q.Storage.PerUnit(in.Quantity)

	q.Profit = profit.Calculate(profit.Input{
		Price:          in.Price,
		ReferralFee:    q.Referral.Fee,
		FulfillmentFee: q.Fulfillment.Total,
		StorageFee:     q.StoragePerUnit,
		COGS:           in.COGS,
		InboundFreight: in.InboundFreight,
		FXRate:         in.FXRate,
		AdSpend:        in.AdSpend,
		PromoCost:      in.PromoCost,
		OtherFee:       in.OtherFee,
		ReturnRate:     in.ReturnRate,
		UnsellableRate: in.UnsellableRate,
		Quantity:       in.Quantity,
	})
	if q.Profit.ROIIsSentinel {
		q.assume("profit", "no landed cost supplied; ROI reported as %s", profit.ROISentinel)
	}

	return q
}

// QuoteBatch prices products in order. Each non-nil hook is called with
// every quote as soon as it is priced.
func (e *Engine) QuoteBatch(products []ProductInput, hooks ...func(*Quote)) []*Quote {
	quotes := make([]*Quote, 0, len(products))
	for _, p := range products {
		q := e.Quote(p)
		for _, hook := range hooks {
			if hook != nil {
				hook(q)
			}
		}
		quotes = append(quotes, q)
	}
	return quotes
}

func (e *Engine) applyDefaults(in ProductInput) ProductInput {
	if in.Category == "" {
		in.Category = e.defaults.Category
	}
	if in.Season == "" {
		in.Season = e.defaults.Season
	}
	if in.StorageSeason == "" {
		in.StorageSeason = e.defaults.StorageSeason
	}
	if in.ReferralCategory == "" && in.ReferralRule == nil {
		in.ReferralCategory = e.defaults.ReferralCategory
	}
	if in.DimensionUnit == "" {
		in.DimensionUnit = types.Inch
	}
	if in.WeightUnit == "" {
		in.WeightUnit = types.Ounce
	}
	if in.CalcDate.IsZero() {
		in.CalcDate = e.now()
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if in.AgeDays < 0 {
		in.AgeDays = 0
	}

	// Negative amounts and rates price as zero. FXRate is left alone:
	// profit treats a non-positive rate as 1.
	for _, v := range []*decimal.Decimal{
		&in.Price, &in.COGS, &in.InboundFreight, &in.AdSpend, &in.PromoCost,
		&in.OtherFee, &in.ReturnRate, &in.UnsellableRate,
	} {
		if v.IsNegative() {
			*v = decimal.Zero
		}
	}
	in.Weight = units.Sanitize(in.Weight)
	in.CubicFeetPerUnit = units.Sanitize(in.CubicFeetPerUnit)
	in.UtilizationWeeks = units.Sanitize(in.UtilizationWeeks)
	return in
}

func (e *Engine) referral(in ProductInput, q *Quote) ReferralQuote {
	rule := in.ReferralRule
	rq := ReferralQuote{Category: in.ReferralCategory, Matched: true}
	if rule == nil {
		rule, rq.Matched = e.repo.ReferralRule(in.ReferralCategory)
		if !rq.Matched {
			rq.Category = ratetable.DefaultReferralCategory
			q.assume("referral", "unknown referral category %q; charged as %s",
				in.ReferralCategory, ratetable.DefaultReferralCategory)
		}
	} else {
		rq.Category = "custom"
	}

	rq.Kind = rule.Kind()
	rq.Minimum = rule.Minimum()
	rq.Fee = referral.Fee(in.Price, rule)
	rq.EffectiveRate = referral.EffectiveRate(in.Price, rule)
	if in.Price.IsPositive() && rq.Minimum.IsPositive() && rq.Fee.Equal(rq.Minimum) {
		q.assume("referral", "referral minimum %s applied", rq.Minimum.StringFixed(2))
	}
	return rq
}

func (e *Engine) storageFor(in ProductInput, q *Quote) storagefee.Result {
	cubicFeet := units.Sanitize(in.CubicFeetPerUnit)
	if cubicFeet == 0 {
		cubicFeet = q.Measurement.CubicFeet()
	}
	q.CubicFeetPerUnit = cubicFeet

	r := e.storage.Calculate(storagefee.Input{
		Quantity:         in.Quantity,
		CubicFeetPerUnit: cubicFeet,
		Category:         in.Category,
		Season:           in.StorageSeason,
		SizeTier:         q.SizeTier.Tier,
		AgeDays:          in.AgeDays,
		UtilizationWeeks: in.UtilizationWeeks,
		Exempt:           in.StorageExempt,
		CalcDate:         in.CalcDate,
	})
	if r.AgedReason == storagefee.ReasonApparelWaive {
		q.assume("storage", "aged-inventory surcharge waived for apparel at %d days", in.AgeDays)
	}
	if r.UtilizationReason == storagefee.ReasonExempt && in.UtilizationWeeks > storagefee.UtilizationGraceWeeks {
		q.assume("storage", "utilization surcharge skipped: account exempt")
	}
	return r
}

// Summary totals a batch of quotes
type Summary struct {
	Products        int             `json:"products"`
	Units           int             `json:"units"`
	Revenue         decimal.Decimal `json:"revenue"`
	TotalFees       decimal.Decimal `json:"total_fees"`
	TotalNetProfit  decimal.Decimal `json:"total_net_profit"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	ROI             decimal.Decimal `json:"roi"`
	Unprofitable    []string        `json:"unprofitable,omitempty"`
}

// Summarize totals quotes; ROI follows the same guards as a single batch
func Summarize(quotes []*Quote) Summary {
	s := Summary{
		Revenue:         decimal.Zero,
		TotalFees:       decimal.Zero,
		TotalNetProfit:  decimal.Zero,
		TotalInvestment: decimal.Zero,
		ROI:             decimal.Zero,
	}
	for _, q := range quotes {
		qty := decimal.NewFromInt(int64(q.Profit.Quantity))
		s.Products++
		s.Units += q.Profit.Quantity
		s.Revenue = s.Revenue.Add(q.Input.Price.Mul(qty))
		s.TotalFees = s.TotalFees.Add(q.UnitFees().Mul(qty))
		s.TotalNetProfit = s.TotalNetProfit.Add(q.Profit.BatchNetProfit)
		s.TotalInvestment = s.TotalInvestment.Add(q.Profit.BatchInvestment)
		if q.Profit.NetProfit.IsNegative() {
			s.Unprofitable = append(s.Unprofitable, q.Name)
		}
	}
	switch {
	case s.TotalInvestment.IsPositive():
		s.ROI = s.TotalNetProfit.Div(s.TotalInvestment)
	case s.TotalNetProfit.IsPositive():
		s.ROI = profit.ROISentinel
	}
	return s
}
