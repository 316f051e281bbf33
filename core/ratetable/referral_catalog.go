package ratetable

import (
	"github.com/shopspring/decimal"

	"fba-cost/core/referral"
)

// DefaultReferralCategory is charged when a referral category is unknown
const DefaultReferralCategory = "everything_else"

var standardMin = money("0.30")

func flat(rate string, minFee decimal.Decimal) referral.Rule {
	return referral.Flat{Rate: money(rate), Min: minFee}
}

func threshold(at, low, high string, minFee decimal.Decimal) referral.Rule {
	return referral.Threshold{Threshold: money(at), LowRate: money(low), HighRate: money(high), Min: minFee}
}

func tiered(at, rate1, rate2 string, minFee decimal.Decimal) referral.Rule {
	return referral.Tiered{Threshold: money(at), Rate1: money(rate1), Rate2: money(rate2), Min: minFee}
}

// referralCatalog maps a referral category to its commission rule
var referralCatalog = map[string]referral.Rule{
	"amazon_device_accessories": flat("0.45", standardMin),
	"automotive":                flat("0.12", standardMin),
	"baby":                      threshold("10", "0.08", "0.15", standardMin),
	"beauty":                    threshold("10", "0.08", "0.15", standardMin),
	"books":                     flat("0.15", decimal.Zero),
	"camera":                    flat("0.08", standardMin),
	"clothing": referral.ThresholdMulti{
		Ranges: []referral.Range{
			{Max: money("15"), Rate: money("0.05")},
			{Max: money("20"), Rate: money("0.10")},
			{Rate: money("0.17")},
		},
		Min: standardMin,
	},
	"computers":               flat("0.08", standardMin),
	"consumer_electronics":    flat("0.08", standardMin),
	"electronics_accessories": tiered("100", "0.15", "0.08", standardMin),
	"fine_art": referral.TieredMulti{
		Ranges: []referral.Bracket{
			{Limit: money("100"), Rate: money("0.20")},
			{Limit: money("1000"), Rate: money("0.15")},
			{Limit: money("5000"), Rate: money("0.10")},
			{Rate: money("0.05")},
		},
		Min: decimal.Zero,
	},
	"furniture":            tiered("200", "0.15", "0.10", standardMin),
	"grocery":              threshold("15", "0.08", "0.15", decimal.Zero),
	"health_personal_care": threshold("10", "0.08", "0.15", standardMin),
	"home_kitchen":         flat("0.15", standardMin),
	"jewelry":              tiered("250", "0.20", "0.05", standardMin),
	"luggage":              flat("0.15", standardMin),
	"shoes_handbags":       flat("0.15", standardMin),
	"sports_outdoors":      flat("0.15", standardMin),
	"toys_games":           flat("0.15", standardMin),
	"watches":              tiered("1500", "0.16", "0.03", standardMin),
	DefaultReferralCategory: flat("0.15", standardMin),
}
