package ratetable

import (
	"time"

	"github.com/shopspring/decimal"

	"fba-cost/core/types"
)

// AgedPolicyCutover is the first calendar day priced with the post-2026
// aged-inventory table
var AgedPolicyCutover = time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC)

// StorageRate is the monthly per-cubic-foot base rate for one storage season
type StorageRate struct {
	Standard decimal.Decimal `json:"standard"`
	Oversize decimal.Decimal `json:"oversize"`
}

// UtilizationTier is a weeks-of-supply surcharge bracket: MinWeeks < w <= MaxWeeks.
// MaxWeeks of zero is open-ended.
type UtilizationTier struct {
	MinWeeks     float64         `json:"min_weeks"`
	MaxWeeks     float64         `json:"max_weeks"`
	StandardRate decimal.Decimal `json:"standard_rate"`
	OversizeRate decimal.Decimal `json:"oversize_rate"`
}

// Contains reports whether weeks falls inside the tier
func (t UtilizationTier) Contains(weeks float64) bool {
	return weeks > t.MinWeeks && (t.MaxWeeks == 0 || weeks <= t.MaxWeeks)
}

// AgedInventoryTier is an age bracket MinDays <= age <= MaxDays.
// MaxDays of zero is open-ended.
type AgedInventoryTier struct {
	MinDays         int              `json:"min_days"`
	MaxDays         int              `json:"max_days"`
	FeePerCubicFoot decimal.Decimal  `json:"fee_per_cubic_foot"`
	MinFeePerUnit   *decimal.Decimal `json:"min_fee_per_unit,omitempty"`
}

// Contains reports whether ageDays falls inside the tier
func (t AgedInventoryTier) Contains(ageDays int) bool {
	return ageDays >= t.MinDays && (t.MaxDays == 0 || ageDays <= t.MaxDays)
}

func perUnitFloor(s string) *decimal.Decimal {
	v := money(s)
	return &v
}

// storageRates covers non-dangerous goods, split standard/oversize
var storageRates = map[types.StorageSeason]StorageRate{
	types.StorageJanSep: {Standard: money("0.78"), Oversize: money("0.56")},
	types.StorageOctDec: {Standard: money("2.40"), Oversize: money("1.40")},
}

// dangerousStorageRates is flat regardless of size tier
var dangerousStorageRates = map[types.StorageSeason]decimal.Decimal{
	types.StorageJanSep: money("0.99"),
	types.StorageOctDec: money("3.63"),
}

var utilizationTiers = []UtilizationTier{
	{MinWeeks: 22, MaxWeeks: 28, StandardRate: money("0.44"), OversizeRate: money("0.23")},
	{MinWeeks: 28, MaxWeeks: 36, StandardRate: money("0.76"), OversizeRate: money("0.46")},
	{MinWeeks: 36, MaxWeeks: 44, StandardRate: money("1.16"), OversizeRate: money("0.63")},
	{MinWeeks: 44, MaxWeeks: 52, StandardRate: money("1.58"), OversizeRate: money("0.76")},
	{MinWeeks: 52, StandardRate: money("1.88"), OversizeRate: money("1.26")},
}

var agedTiersPre2026 = []AgedInventoryTier{
	{MinDays: 181, MaxDays: 210, FeePerCubicFoot: money("0.50")},
	{MinDays: 211, MaxDays: 240, FeePerCubicFoot: money("1.00")},
	{MinDays: 241, MaxDays: 270, FeePerCubicFoot: money("1.50")},
	{MinDays: 271, MaxDays: 300, FeePerCubicFoot: money("5.45")},
	{MinDays: 301, MaxDays: 330, FeePerCubicFoot: money("5.70")},
	{MinDays: 331, MaxDays: 365, FeePerCubicFoot: money("5.90")},
	{MinDays: 366, FeePerCubicFoot: money("6.90"), MinFeePerUnit: perUnitFloor("0.15")},
}

// The 456+ bracket is $7.90. A rendered $10.00 for this bracket elsewhere
// disagrees with the computed rate; the computed rate is kept.
var agedTiersPost2026 = []AgedInventoryTier{
	{MinDays: 181, MaxDays: 210, FeePerCubicFoot: money("0.50")},
	{MinDays: 211, MaxDays: 240, FeePerCubicFoot: money("1.00")},
	{MinDays: 241, MaxDays: 270, FeePerCubicFoot: money("1.50")},
	{MinDays: 271, MaxDays: 300, FeePerCubicFoot: money("5.45")},
	{MinDays: 301, MaxDays: 330, FeePerCubicFoot: money("5.70")},
	{MinDays: 331, MaxDays: 365, FeePerCubicFoot: money("5.90")},
	{MinDays: 366, MaxDays: 455, FeePerCubicFoot: money("6.90"), MinFeePerUnit: perUnitFloor("0.15")},
	{MinDays: 456, FeePerCubicFoot: money("7.90"), MinFeePerUnit: perUnitFloor("0.20")},
}
