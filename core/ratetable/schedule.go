// Package ratetable is the immutable, versioned repository of marketplace
// rate data: fulfillment fee schedules, the referral rule catalog, and the
// monthly storage, utilization and aged-inventory tables.
//
// Tables are built once at package init and never mutated. Every accessor
// returns values, not pointers into the tables.
package ratetable

import (
	"github.com/shopspring/decimal"

	"fba-cost/core/types"
)

// Key identifies a fulfillment schedule
type Key struct {
	Category types.Category `json:"category"`
	Season   types.Season   `json:"season"`
}

// String returns category/season
func (k Key) String() string {
	return string(k.Category) + "/" + string(k.Season)
}

// Bands holds one amount per price band: under $10, $10-$50, over $50
type Bands [3]decimal.Decimal

// At returns the amount for a band
func (b Bands) At(band types.PriceBand) decimal.Decimal {
	if band < types.Under10 || band > types.Over50 {
		return b[types.Mid10to50]
	}
	return b[band]
}

// Step is one weight breakpoint of a step table
type Step struct {
	// MaxOz is the inclusive upper weight bound
	MaxOz float64 `json:"max_oz"`
	Fee   Bands   `json:"fee"`
}

// Increment prices weight above the last step of a table
type Increment struct {
	Base Bands `json:"base"`

	// FromOz is the weight already covered by Base
	FromOz float64 `json:"from_oz"`

	// UnitOz is the size of one increment
	UnitOz float64         `json:"unit_oz"`
	Fee    decimal.Decimal `json:"fee"`
}

// PerPound is a base fee plus a per-pound charge above StartLb
type PerPound struct {
	Base    Bands           `json:"base"`
	StartLb float64         `json:"start_lb"`
	PerLb   decimal.Decimal `json:"per_lb"`
}

// WeightBand is one special oversize weight band
type WeightBand struct {
	// MaxLb is the inclusive upper bound; zero is open-ended
	MaxLb float64 `json:"max_lb"`
	PerPound
}

// FulfillmentSchedule is the complete fee schedule for one Key
type FulfillmentSchedule struct {
	Key Key `json:"key"`

	SmallStandard     []Step       `json:"small_standard"`
	LargeStandard     []Step       `json:"large_standard"`
	LargeStandardOver Increment    `json:"large_standard_over"`
	SmallOversize     PerPound     `json:"small_oversize"`
	LargeOversize     PerPound     `json:"large_oversize"`
	SpecialOversize   []WeightBand `json:"special_oversize"`
}

// LookupStep returns the fee of the first step whose MaxOz is at least oz.
// ok is false when oz is above the last step.
func LookupStep(steps []Step, oz float64, band types.PriceBand) (fee decimal.Decimal, ok bool) {
	for _, s := range steps {
		if oz <= s.MaxOz {
			return s.Fee.At(band), true
		}
	}
	return decimal.Zero, false
}

// SpecialBand returns the weight band covering lb
func (s FulfillmentSchedule) SpecialBand(lb float64) WeightBand {
	for _, b := range s.SpecialOversize {
		if b.MaxLb == 0 || lb <= b.MaxLb {
			return b
		}
	}
	if n := len(s.SpecialOversize); n > 0 {
		return s.SpecialOversize[n-1]
	}
	return WeightBand{}
}

// clone deep-copies the slices so callers cannot reach the shared tables
func (s FulfillmentSchedule) clone() FulfillmentSchedule {
	out := s
	out.SmallStandard = append([]Step(nil), s.SmallStandard...)
	out.LargeStandard = append([]Step(nil), s.LargeStandard...)
	out.SpecialOversize = append([]WeightBand(nil), s.SpecialOversize...)
	return out
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bands(under, mid, over string) Bands {
	return Bands{money(under), money(mid), money(over)}
}
