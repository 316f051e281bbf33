package referral

import "github.com/shopspring/decimal"

// Fee computes the referral fee for price under rule.
// A positive price is never charged less than the rule minimum; a
// non-positive price or a nil rule costs nothing.
func Fee(price decimal.Decimal, rule Rule) decimal.Decimal {
	if rule == nil || !price.IsPositive() {
		return decimal.Zero
	}

	var fee decimal.Decimal
	switch r := rule.(type) {
	case Flat:
		fee = price.Mul(r.Rate)
	case Threshold:
		if price.LessThanOrEqual(r.Threshold) {
			fee = price.Mul(r.LowRate)
		} else {
			fee = price.Mul(r.HighRate)
		}
	case ThresholdMulti:
		fee = price.Mul(thresholdRate(price, r.Ranges))
	case Tiered:
		if price.GreaterThan(r.Threshold) {
			fee = r.Threshold.Mul(r.Rate1).Add(price.Sub(r.Threshold).Mul(r.Rate2))
		} else {
			fee = price.Mul(r.Rate1)
		}
	case TieredMulti:
		fee = CalculateTieredCost(price, r.Ranges)
	}

	return decimal.Max(fee, rule.Minimum())
}

// EffectiveRate is fee / price, zero for a non-positive price
func EffectiveRate(price decimal.Decimal, rule Rule) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}
	return Fee(price, rule).Div(price)
}

// thresholdRate picks the rate of the first range covering price.
// Prices above every closed range fall into the last range.
func thresholdRate(price decimal.Decimal, ranges []Range) decimal.Decimal {
	if len(ranges) == 0 {
		return decimal.Zero
	}
	for _, rg := range ranges {
		if rg.Max.IsZero() || rg.Max.GreaterThanOrEqual(price) {
			return rg.Rate
		}
	}
	return ranges[len(ranges)-1].Rate
}

// CalculateTieredCost consumes quantity bracket by bracket, charging each
// chunk at its bracket rate. Anything above the last closed limit is charged
// at the last bracket rate.
func CalculateTieredCost(quantity decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if !quantity.IsPositive() || len(brackets) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := quantity
	previousLimit := decimal.Zero

	for _, b := range brackets {
		if !remaining.IsPositive() {
			break
		}

		if b.Limit.IsZero() {
			total = total.Add(remaining.Mul(b.Rate))
			remaining = decimal.Zero
			break
		}

		size := b.Limit.Sub(previousLimit)
		chunk := decimal.Min(remaining, size)
		total = total.Add(chunk.Mul(b.Rate))
		remaining = remaining.Sub(chunk)
		previousLimit = b.Limit
	}

	if remaining.IsPositive() {
		total = total.Add(remaining.Mul(brackets[len(brackets)-1].Rate))
	}

	return total
}
