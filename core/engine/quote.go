package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fba-cost/core/fulfillment"
	"fba-cost/core/profit"
	"fba-cost/core/referral"
	"fba-cost/core/sizetier"
	"fba-cost/core/storagefee"
	"fba-cost/core/types"
	"fba-cost/core/units"
)

// ProductInput is everything known about one product listing.
// Blank enum fields take the engine defaults; money fields left zero are zero.
type ProductInput struct {
	// Name identifies the product in batches and history
	Name string `json:"name"`

	Dimensions    units.Dimensions    `json:"dimensions"`
	DimensionUnit types.DimensionUnit `json:"dimension_unit"`
	Weight        float64             `json:"weight"`
	WeightUnit    types.WeightUnit    `json:"weight_unit"`

	Price      decimal.Decimal `json:"price"`
	Category   types.Category  `json:"category"`
	Season     types.Season    `json:"season"`
	HasLithium bool            `json:"has_lithium,omitempty"`

	// ReferralCategory is looked up in the repository catalog
	ReferralCategory string `json:"referral_category,omitempty"`

	// ReferralRule overrides the catalog when set
	ReferralRule referral.Rule `json:"-"`

	COGS           decimal.Decimal `json:"cogs"`
	InboundFreight decimal.Decimal `json:"inbound_freight"`
	FXRate         decimal.Decimal `json:"fx_rate"`
	AdSpend        decimal.Decimal `json:"ad_spend"`
	PromoCost      decimal.Decimal `json:"promo_cost"`
	OtherFee       decimal.Decimal `json:"other_fee"`
	ReturnRate     decimal.Decimal `json:"return_rate"`
	UnsellableRate decimal.Decimal `json:"unsellable_rate"`
	Quantity       int             `json:"quantity"`

	StorageSeason types.StorageSeason `json:"storage_season"`

	// CubicFeetPerUnit overrides the volume derived from dimensions
	CubicFeetPerUnit float64 `json:"cubic_feet_per_unit,omitempty"`

	AgeDays          int     `json:"age_days,omitempty"`
	UtilizationWeeks float64 `json:"utilization_weeks,omitempty"`
	StorageExempt    bool    `json:"storage_exempt,omitempty"`

	// CalcDate selects the policy tables; zero means now
	CalcDate time.Time `json:"calc_date"`
}

// ReferralQuote is the referral fee and the rule that produced it
type ReferralQuote struct {
	Category      string          `json:"category"`
	Matched       bool            `json:"matched"`
	Kind          referral.Kind   `json:"kind"`
	Fee           decimal.Decimal `json:"fee"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	Minimum       decimal.Decimal `json:"minimum"`
}

// Assumption documents a quoting assumption
type Assumption struct {
	// Category is the assumption category
	Category string `json:"category"`

	// Description explains the assumption
	Description string `json:"description"`
}

// Quote is the full pricing of one product with every intermediate value
type Quote struct {
	Name  string       `json:"name"`
	Input ProductInput `json:"input"`

	Measurement      units.Measurement `json:"measurement"`
	SizeTier         sizetier.Result   `json:"size_tier"`
	CubicFeetPerUnit float64           `json:"cubic_feet_per_unit"`

	Fulfillment fulfillment.Breakdown `json:"fulfillment"`
	Referral    ReferralQuote         `json:"referral"`

	// Storage is the monthly charge for the whole quantity
	Storage        storagefee.Result `json:"storage"`
	StoragePerUnit decimal.Decimal   `json:"storage_per_unit"`

	Profit profit.Result `json:"profit"`

	Assumptions []Assumption `json:"assumptions,omitempty"`

	// TableVersion is the short content hash of the rate tables used
	TableVersion string    `json:"table_version"`
	CalcDate     time.Time `json:"calc_date"`
}

// UnitFees is referral + fulfillment + storage per unit
func (q *Quote) UnitFees() decimal.Decimal {
	return q.Referral.Fee.Add(q.Fulfillment.Total).Add(q.StoragePerUnit)
}

func (q *Quote) assume(category, format string, args ...interface{}) {
	q.Assumptions = append(q.Assumptions, Assumption{
		Category:    category,
		Description: fmt.Sprintf(format, args...),
	})
}
