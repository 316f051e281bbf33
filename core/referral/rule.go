// Package referral computes marketplace referral (commission) fees.
//
// A category's commission is described by one of five rule shapes. Threshold
// rules apply a single rate to the whole price; tiered rules are marginal and
// consume the price bracket by bracket.
package referral

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind names a rule shape
type Kind string

const (
	KindFlat           Kind = "flat"
	KindThreshold      Kind = "threshold"
	KindThresholdMulti Kind = "threshold_multi"
	KindTiered         Kind = "tiered"
	KindTieredMulti    Kind = "tiered_multi"
)

// Rule is the closed set of commission shapes.
// Implementations live in this package only.
type Rule interface {
	Kind() Kind
	Minimum() decimal.Decimal
	Validate() error
	isRule()
}

// Flat charges price * Rate
type Flat struct {
	Rate decimal.Decimal `json:"rate"`
	Min  decimal.Decimal `json:"min"`
}

// Threshold charges the whole price at LowRate up to and including
// Threshold, and the whole price at HighRate above it
type Threshold struct {
	Threshold decimal.Decimal `json:"threshold"`
	LowRate   decimal.Decimal `json:"low_rate"`
	HighRate  decimal.Decimal `json:"high_rate"`
	Min       decimal.Decimal `json:"min"`
}

// Range is a non-marginal price ceiling. Max of zero is open-ended.
type Range struct {
	Max  decimal.Decimal `json:"max"`
	Rate decimal.Decimal `json:"rate"`
}

// ThresholdMulti charges the whole price at the rate of the first range
// whose Max is at least the price
type ThresholdMulti struct {
	Ranges []Range         `json:"ranges"`
	Min    decimal.Decimal `json:"min"`
}

// Tiered charges Rate1 on the price up to Threshold and Rate2 on the remainder
type Tiered struct {
	Threshold decimal.Decimal `json:"threshold"`
	Rate1     decimal.Decimal `json:"rate1"`
	Rate2     decimal.Decimal `json:"rate2"`
	Min       decimal.Decimal `json:"min"`
}

// Bracket is a marginal bracket upper bound. Limit of zero is open-ended.
type Bracket struct {
	Limit decimal.Decimal `json:"limit"`
	Rate  decimal.Decimal `json:"rate"`
}

// TieredMulti is progressive across N brackets
type TieredMulti struct {
	Ranges []Bracket       `json:"ranges"`
	Min    decimal.Decimal `json:"min"`
}

func (Flat) Kind() Kind           { return KindFlat }
func (Threshold) Kind() Kind      { return KindThreshold }
func (ThresholdMulti) Kind() Kind { return KindThresholdMulti }
func (Tiered) Kind() Kind         { return KindTiered }
func (TieredMulti) Kind() Kind    { return KindTieredMulti }

func (r Flat) Minimum() decimal.Decimal           { return r.Min }
func (r Threshold) Minimum() decimal.Decimal      { return r.Min }
func (r ThresholdMulti) Minimum() decimal.Decimal { return r.Min }
func (r Tiered) Minimum() decimal.Decimal         { return r.Min }
func (r TieredMulti) Minimum() decimal.Decimal    { return r.Min }

func (Flat) isRule()           {}
func (Threshold) isRule()      {}
func (ThresholdMulti) isRule() {}
func (Tiered) isRule()         {}
func (TieredMulti) isRule()    {}

// Validate checks rate and minimum signs
func (r Flat) Validate() error {
	return checkNonNegative(r.Rate, r.Min)
}

// Validate checks the threshold and rates
func (r Threshold) Validate() error {
	if !r.Threshold.IsPositive() {
		return fmt.Errorf("threshold rule: threshold must be positive")
	}
	return checkNonNegative(r.LowRate, r.HighRate, r.Min)
}

// Validate checks that range ceilings ascend and only the last is open
func (r ThresholdMulti) Validate() error {
	if len(r.Ranges) == 0 {
		return fmt.Errorf("threshold_multi rule: no ranges")
	}
	prev := decimal.Zero
	for i, rg := range r.Ranges {
		if err := checkNonNegative(rg.Rate); err != nil {
			return fmt.Errorf("threshold_multi range %d: %w", i, err)
		}
		if rg.Max.IsZero() {
			if i != len(r.Ranges)-1 {
				return fmt.Errorf("threshold_multi range %d: open range must be last", i)
			}
			continue
		}
		if !rg.Max.GreaterThan(prev) {
			return fmt.Errorf("threshold_multi range %d: max %s not above %s", i, rg.Max, prev)
		}
		prev = rg.Max
	}
	return checkNonNegative(r.Min)
}

// Validate checks the threshold and rates
func (r Tiered) Validate() error {
	if !r.Threshold.IsPositive() {
		return fmt.Errorf("tiered rule: threshold must be positive")
	}
	return checkNonNegative(r.Rate1, r.Rate2, r.Min)
}

// Validate checks that bracket limits ascend and only the last is open
func (r TieredMulti) Validate() error {
	if len(r.Ranges) == 0 {
		return fmt.Errorf("tiered_multi rule: no brackets")
	}
	prev := decimal.Zero
	for i, b := range r.Ranges {
		if err := checkNonNegative(b.Rate); err != nil {
			return fmt.Errorf("tiered_multi bracket %d: %w", i, err)
		}
		if b.Limit.IsZero() {
			if i != len(r.Ranges)-1 {
				return fmt.Errorf("tiered_multi bracket %d: open bracket must be last", i)
			}
			continue
		}
		if !b.Limit.GreaterThan(prev) {
			return fmt.Errorf("tiered_multi bracket %d: limit %s not above %s", i, b.Limit, prev)
		}
		prev = b.Limit
	}
	return checkNonNegative(r.Min)
}

func checkNonNegative(values ...decimal.Decimal) error {
	for _, v := range values {
		if v.IsNegative() {
			return fmt.Errorf("negative value %s", v)
		}
	}
	return nil
}
