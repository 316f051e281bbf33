// Package storagefee computes monthly storage charges: the base volumetric
// rate, the utilization surcharge and the aged-inventory surcharge.
package storagefee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fba-cost/core/ratetable"
	"fba-cost/core/types"
	"fba-cost/core/units"
)

const (
	// UtilizationVolumeFloor is the total volume in cubic feet below which
	// no utilization surcharge applies
	UtilizationVolumeFloor = 25.0

	// UtilizationGraceWeeks is the weeks of supply covered without surcharge
	UtilizationGraceWeeks = 22.0

	// ApparelWaiverMinDays and ApparelWaiverMaxDays bound the aged-inventory
	// window waived for apparel
	ApparelWaiverMinDays = 181
	ApparelWaiverMaxDays = 270
)

// Reasons a surcharge is zero
const (
	ReasonExempt       = "exempt"
	ReasonVolumeFloor  = "below 25 ft³ volume floor"
	ReasonGracePeriod  = "within 22-week grace period"
	ReasonApparelWaive = "apparel aged 181-270 days waived"
	ReasonNotAged      = "under 181 days"
)

// Input describes the inventory being stored
type Input struct {
	// Quantity is the number of units on hand
	Quantity int

	// CubicFeetPerUnit is the storage volume of one unit
	CubicFeetPerUnit float64

	Category types.Category
	Season   types.StorageSeason
	SizeTier types.SizeTier

	// AgeDays is the age of the oldest units
	AgeDays int

	// UtilizationWeeks is the account weeks of supply
	UtilizationWeeks float64

	// Exempt skips the utilization surcharge
	Exempt bool

	// CalcDate selects the aged-inventory policy. The zero time uses the
	// pre cut-over table.
	CalcDate time.Time
}

// Result itemizes a monthly storage charge
type Result struct {
	Base        decimal.Decimal `json:"base"`
	Utilization decimal.Decimal `json:"utilization"`
	Aged        decimal.Decimal `json:"aged"`
	Total       decimal.Decimal `json:"total"`

	// TotalVolume is Quantity x CubicFeetPerUnit
	TotalVolume float64 `json:"total_volume_cu_ft"`

	BaseRate        decimal.Decimal `json:"base_rate"`
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
	AgedRate        decimal.Decimal `json:"aged_rate"`

	// AgedPolicyPost is set when the post cut-over aged table was used
	AgedPolicyPost bool `json:"aged_policy_post"`

	// UtilizationReason explains a zero utilization surcharge
	UtilizationReason string `json:"utilization_reason,omitempty"`

	// AgedReason explains a zero aged surcharge
	AgedReason string `json:"aged_reason,omitempty"`
}

// PerUnit spreads the total across the quantity
func (r Result) PerUnit(quantity int) decimal.Decimal {
	if quantity <= 0 {
		return r.Total
	}
	return r.Total.Div(decimal.NewFromInt(int64(quantity)))
}

// Calculator prices storage against a repository
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

// Fee computes storage using the default repository
func Fee(in Input) Result {
	return NewCalculator(nil).Calculate(in)
}

// Calculate computes the three storage components
func (c *Calculator) Calculate(in Input) Result {
	qty := in.Quantity
	if qty < 0 {
		qty = 0
	}
	perUnit := units.Sanitize(in.CubicFeetPerUnit)
	volume := float64(qty) * perUnit
	vol := decimal.NewFromFloat(volume)

	r := Result{
		Utilization:     decimal.Zero,
		Aged:            decimal.Zero,
		TotalVolume:     volume,
		UtilizationRate: decimal.Zero,
		AgedRate:        decimal.Zero,
	}

	r.BaseRate = c.repo.BaseStorageRate(in.Category, in.Season, in.SizeTier)
	r.Base = vol.Mul(r.BaseRate)

	c.utilization(in, vol, &r)
	c.aged(in, qty, perUnit, &r)

	r.Total = r.Base.Add(r.Utilization).Add(r.Aged)
	return r
}

func (c *Calculator) utilization(in Input, vol decimal.Decimal, r *Result) {
	switch {
	case in.Exempt:
		r.UtilizationReason = ReasonExempt
		return
	case r.TotalVolume < UtilizationVolumeFloor:
		r.UtilizationReason = ReasonVolumeFloor
		return
	case in.UtilizationWeeks <= UtilizationGraceWeeks:
		r.UtilizationReason = ReasonGracePeriod
		return
	}

	tier, ok := c.repo.UtilizationTier(in.UtilizationWeeks)
	if !ok {
		r.UtilizationReason = ReasonGracePeriod
		return
	}

	rate := tier.OversizeRate
	if in.SizeTier.IsStandard() || in.Category == types.CategoryDangerous {
		rate = tier.StandardRate
	}
	r.UtilizationRate = rate
	r.Utilization = vol.Mul(rate)
}

func (c *Calculator) aged(in Input, qty int, cubicFeet float64, r *Result) {
	tier, post, ok := c.repo.AgedTier(in.CalcDate, in.AgeDays)
	r.AgedPolicyPost = post
	if !ok {
		r.AgedReason = ReasonNotAged
		return
	}

	if in.Category == types.CategoryApparel && in.AgeDays >= ApparelWaiverMinDays && in.AgeDays <= ApparelWaiverMaxDays {
		r.AgedReason = ReasonApparelWaive
		return
	}

	r.AgedRate = tier.FeePerCubicFoot
	feePerUnit := decimal.NewFromFloat(cubicFeet).Mul(tier.FeePerCubicFoot)
	if tier.MinFeePerUnit != nil {
		feePerUnit = decimal.Max(feePerUnit, *tier.MinFeePerUnit)
	}
	r.Aged = feePerUnit.Mul(decimal.NewFromInt(int64(qty)))
}

// Describe renders the aged bracket used, for explanations
func (r Result) Describe() string {
	policy := "pre-2026"
	if r.AgedPolicyPost {
		policy = "post-2026"
	}
	if r.AgedReason != "" {
		return fmt.Sprintf("aged surcharge none (%s, %s table)", r.AgedReason, policy)
	}
	return fmt.Sprintf("aged surcharge %s/ft³ (%s table)", r.AgedRate.StringFixed(2), policy)
}
