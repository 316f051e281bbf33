package cmd

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"fba-cost/core/engine"
	"fba-cost/core/referral"
	"fba-cost/core/types"
	"fba-cost/core/units"
	"fba-cost/internal/errors"
)

// Numeric product flags are strings parsed with the parse-or-zero
// convention, so a typo prices as zero rather than aborting a quote.
// Thousands separators are accepted everywhere.

// packageFlags describe the physical package
type packageFlags struct {
	length, width, height string
	dimensionUnit         string
	weight                string
	weightUnit            string
}

func (p *packageFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&p.length, "length", "0", "package length")
	fs.StringVar(&p.width, "width", "0", "package width")
	fs.StringVar(&p.height, "height", "0", "package height")
	fs.StringVar(&p.dimensionUnit, "dimension-unit", "in", "dimension unit (in, cm)")
	fs.StringVar(&p.weight, "weight", "0", "unit weight")
	fs.StringVar(&p.weightUnit, "weight-unit", "oz", "weight unit (oz, lb, g, kg)")
}

func (p *packageFlags) dimensions() units.Dimensions {
	return units.Dimensions{
		Length: units.ParseOrZero(p.length),
		Width:  units.ParseOrZero(p.width),
		Height: units.ParseOrZero(p.height),
	}
}

func (p *packageFlags) measurement() units.Measurement {
	return units.Normalize(p.dimensions(), units.ParseDimensionUnit(p.dimensionUnit),
		units.ParseOrZero(p.weight), units.ParseWeightUnit(p.weightUnit))
}

// ruleFlags build a custom referral rule
type ruleFlags struct {
	kind      string
	rate      string
	threshold string
	lowRate   string
	highRate  string
	minimum   string
}

func (r *ruleFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&r.kind, "rule", "", "custom referral rule (flat, threshold, tiered); overrides --referral-category")
	fs.StringVar(&r.rate, "rate", "0", "flat rule rate, e.g. 0.15")
	fs.StringVar(&r.threshold, "threshold", "0", "threshold or tier boundary price")
	fs.StringVar(&r.lowRate, "low-rate", "0", "rate at or below the threshold")
	fs.StringVar(&r.highRate, "high-rate", "0", "rate above the threshold")
	fs.StringVar(&r.minimum, "min-fee", "0.30", "minimum referral fee")
}

// rule returns nil when no custom rule was requested
func (r *ruleFlags) rule() (referral.Rule, error) {
	var rule referral.Rule
	switch strings.ToLower(strings.TrimSpace(r.kind)) {
	case "":
		return nil, nil
	case "flat":
		rule = referral.Flat{Rate: parseMoney(r.rate), Min: parseMoney(r.minimum)}
	case "threshold":
		rule = referral.Threshold{
			Threshold: parseMoney(r.threshold),
			LowRate:   parseMoney(r.lowRate),
			HighRate:  parseMoney(r.highRate),
			Min:       parseMoney(r.minimum),
		}
	case "tiered":
		rule = referral.Tiered{
			Threshold: parseMoney(r.threshold),
			Rate1:     parseMoney(r.lowRate),
			Rate2:     parseMoney(r.highRate),
			Min:       parseMoney(r.minimum),
		}
	default:
		return nil, errors.Inputf("unknown referral rule %q (flat, threshold, tiered)", r.kind)
	}
	if err := rule.Validate(); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid referral rule", err)
	}
	return rule, nil
}

// productFlags are everything the quote command accepts
type productFlags struct {
	packageFlags
	ruleFlags

	name             string
	price            string
	category         string
	season           string
	hasLithium       bool
	referralCategory string

	cogs           string
	inboundFreight string
	fxRate         string
	adSpend        string
	promoCost      string
	otherFee       string
	returnRate     string
	unsellableRate string
	quantity       string

	storageSeason    string
	cubicFeet        string
	ageDays          string
	utilizationWeeks string
	storageExempt    bool
	calcDate         string
}

func (p *productFlags) register(fs *pflag.FlagSet) {
	p.packageFlags.register(fs)
	p.ruleFlags.register(fs)

	fs.StringVar(&p.name, "name", "", "product name")
	fs.StringVar(&p.price, "price", "0", "selling price")
	fs.StringVar(&p.category, "category", "", "fulfillment category (normal, apparel, dangerous)")
	fs.StringVar(&p.season, "season", "", "fulfillment rate table (nonpeak2025, peak2025, nonpeak2026)")
	fs.BoolVar(&p.hasLithium, "lithium", false, "product contains lithium batteries")
	fs.StringVar(&p.referralCategory, "referral-category", "", "referral catalog category")

	fs.StringVar(&p.cogs, "cogs", "0", "unit cost of goods in supplier currency")
	fs.StringVar(&p.inboundFreight, "freight", "0", "inbound freight per unit in supplier currency")
	fs.StringVar(&p.fxRate, "fx-rate", "1", "supplier currency units per marketplace currency unit")
	fs.StringVar(&p.adSpend, "ad-spend", "0", "advertising cost per unit")
	fs.StringVar(&p.promoCost, "promo", "0", "promotion cost per unit")
	fs.StringVar(&p.otherFee, "other-fee", "0", "other fees per unit")
	fs.StringVar(&p.returnRate, "return-rate", "0", "fraction of units returned")
	fs.StringVar(&p.unsellableRate, "unsellable-rate", "0", "fraction of returns that cannot be resold")
	fs.StringVar(&p.quantity, "quantity", "1", "units in the batch")

	p.registerStorage(fs)
}

// registerStorage adds the storage flags shared with the storage command
func (p *productFlags) registerStorage(fs *pflag.FlagSet) {
	fs.StringVar(&p.storageSeason, "storage-season", "", "storage period (jansep, octdec)")
	fs.StringVar(&p.cubicFeet, "cubic-feet", "0", "cubic feet per unit (default derived from dimensions)")
	fs.StringVar(&p.ageDays, "age-days", "0", "age of the oldest units in days")
	fs.StringVar(&p.utilizationWeeks, "utilization-weeks", "0", "account weeks of supply")
	fs.BoolVar(&p.storageExempt, "storage-exempt", false, "account is exempt from the utilization surcharge")
	fs.StringVar(&p.calcDate, "date", "", "calculation date YYYY-MM-DD (default today)")
}

func (p *productFlags) input() (engine.ProductInput, error) {
	rule, err := p.rule()
	if err != nil {
		return engine.ProductInput{}, err
	}

	in := engine.ProductInput{
		Name:             p.name,
		Dimensions:       p.dimensions(),
		DimensionUnit:    units.ParseDimensionUnit(p.dimensionUnit),
		Weight:           units.ParseOrZero(p.weight),
		WeightUnit:       units.ParseWeightUnit(p.weightUnit),
		Price:            parseMoney(p.price),
		HasLithium:       p.hasLithium,
		ReferralCategory: p.referralCategory,
		ReferralRule:     rule,
		COGS:             parseMoney(p.cogs),
		InboundFreight:   parseMoney(p.inboundFreight),
		FXRate:           parseMoney(p.fxRate),
		AdSpend:          parseMoney(p.adSpend),
		PromoCost:        parseMoney(p.promoCost),
		OtherFee:         parseMoney(p.otherFee),
		ReturnRate:       parseMoney(p.returnRate),
		UnsellableRate:   parseMoney(p.unsellableRate),
		Quantity:         parseCount(p.quantity),
		CubicFeetPerUnit: units.ParseOrZero(p.cubicFeet),
		AgeDays:          parseCount(p.ageDays),
		UtilizationWeeks: units.ParseOrZero(p.utilizationWeeks),
		StorageExempt:    p.storageExempt,
	}
	if p.category != "" {
		in.Category = types.ParseCategory(p.category)
	}
	if p.season != "" {
		in.Season = types.ParseSeason(p.season)
	}
	if p.storageSeason != "" {
		in.StorageSeason = types.ParseStorageSeason(p.storageSeason)
	}
	if in.CalcDate, err = parseDate(p.calcDate); err != nil {
		return in, err
	}
	return in, nil
}

// parseMoney parses a decimal, ignoring thousands separators; unparseable
// or negative values are zero
func parseMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(s, ",", "")))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseCount parses a whole count the same way, dropping any fraction
func parseCount(s string) int {
	return int(units.ParseOrZero(s))
}

// parseDate parses YYYY-MM-DD; empty is the zero time
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.Inputf("date must be YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
