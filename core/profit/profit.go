// Package profit aggregates fees and costs into per-unit and batch
// profitability figures.
package profit

import (
	"github.com/shopspring/decimal"
)

// ROISentinel is reported instead of infinity when a profitable batch
// required no investment
var ROISentinel = decimal.NewFromInt(9999)

var (
	returnReferralShare = decimal.RequireFromString("0.20")
	returnReferralCap   = decimal.NewFromInt(5)
)

// Input is one unit's price, fees and costs. Rates are fractions (0.05 = 5%).
type Input struct {
	Price          decimal.Decimal
	ReferralFee    decimal.Decimal
	FulfillmentFee decimal.Decimal

	// StorageFee is the monthly storage charge per unit
	StorageFee decimal.Decimal

	// COGS and InboundFreight are in the sourcing currency
	COGS           decimal.Decimal
	InboundFreight decimal.Decimal

	// FXRate converts sourcing currency to the marketplace currency by division.
	// Zero or negative is treated as 1.
	FXRate decimal.Decimal

	AdSpend   decimal.Decimal
	PromoCost decimal.Decimal
	OtherFee  decimal.Decimal

	ReturnRate     decimal.Decimal
	UnsellableRate decimal.Decimal

	// Quantity scales batch figures. Zero or negative is treated as 1.
	Quantity int
}

// Result holds derived profitability figures
type Result struct {
	AmazonPayout       decimal.Decimal `json:"amazon_payout"`
	ReturnLoss         decimal.Decimal `json:"return_loss"`
	LandedCost         decimal.Decimal `json:"landed_cost"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	TotalOperatingCost decimal.Decimal `json:"total_operating_cost"`
	NetProfit          decimal.Decimal `json:"net_profit"`

	// NetMargin is NetProfit / Price
	NetMargin decimal.Decimal `json:"net_margin"`

	// BreakEvenACoS is the share of price ad spend may take before the
	// unit stops being profitable
	BreakEvenACoS decimal.Decimal `json:"break_even_acos"`

	// ACoS is AdSpend / Price
	ACoS decimal.Decimal `json:"acos"`

	Quantity        int             `json:"quantity"`
	BatchNetProfit  decimal.Decimal `json:"batch_net_profit"`
	BatchInvestment decimal.Decimal `json:"batch_investment"`
	ROI             decimal.Decimal `json:"roi"`

	// ROIIsSentinel marks ROI as ROISentinel rather than a ratio
	ROIIsSentinel bool `json:"roi_is_sentinel,omitempty"`
}

// Calculate computes profitability for one unit and its batch
func Calculate(in Input) Result {
	fx := in.FXRate
	if !fx.IsPositive() {
		fx = decimal.NewFromInt(1)
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	q := decimal.NewFromInt(int64(qty))

	r := Result{Quantity: qty}

	r.AmazonPayout = in.Price.Sub(in.ReferralFee).Sub(in.FulfillmentFee)

	unsellable := in.Price.Add(in.FulfillmentFee).Mul(in.ReturnRate).Mul(in.UnsellableRate)
	refundAdmin := decimal.Min(returnReferralCap, in.ReferralFee.Mul(returnReferralShare)).Mul(in.ReturnRate)
	r.ReturnLoss = unsellable.Add(refundAdmin)

	r.LandedCost = in.COGS.Add(in.InboundFreight).Div(fx)
	r.GrossProfit = r.AmazonPayout.Sub(r.LandedCost)

	r.TotalOperatingCost = in.AdSpend.
		Add(in.PromoCost).
		Add(in.StorageFee).
		Add(r.ReturnLoss).
		Add(in.OtherFee)
	r.NetProfit = r.GrossProfit.Sub(r.TotalOperatingCost)

	r.NetMargin = ratio(r.NetProfit, in.Price)
	r.BreakEvenACoS = ratio(r.GrossProfit, in.Price)
	r.ACoS = ratio(in.AdSpend, in.Price)

	r.BatchNetProfit = r.NetProfit.Mul(q)
	// Investment is the unconverted purchase outlay (cogs + freight) x qty
	r.BatchInvestment = in.COGS.Add(in.InboundFreight).Mul(q)
	switch {
	case r.BatchInvestment.IsPositive():
		r.ROI = r.BatchNetProfit.Div(r.BatchInvestment)
	case r.BatchNetProfit.IsPositive():
		r.ROI = ROISentinel
		r.ROIIsSentinel = true
	default:
		r.ROI = decimal.Zero
	}

	return r
}

// ratio divides, returning zero for a non-positive denominator
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}
