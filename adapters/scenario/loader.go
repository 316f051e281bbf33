// Package scenario loads HCL product scenario files for batch quoting.
package scenario

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"fba-cost/core/engine"
	"fba-cost/core/types"
	"fba-cost/core/units"
	"fba-cost/internal/errors"
)

// Scenario is a parsed scenario file
type Scenario struct {
	// Path is the source file
	Path string

	// Products are the product blocks in file order, defaults applied
	Products []engine.ProductInput
}

// attributes are the settable fields of a defaults or product block
type attributes struct {
	Length        *float64 `hcl:"length,optional"`
	Width         *float64 `hcl:"width,optional"`
	Height        *float64 `hcl:"height,optional"`
	DimensionUnit *string  `hcl:"dimension_unit,optional"`
	Weight        *float64 `hcl:"weight,optional"`
	WeightUnit    *string  `hcl:"weight_unit,optional"`

	Price            *float64 `hcl:"price,optional"`
	Category         *string  `hcl:"category,optional"`
	Season           *string  `hcl:"season,optional"`
	HasLithium       *bool    `hcl:"has_lithium,optional"`
	ReferralCategory *string  `hcl:"referral_category,optional"`

	COGS           *float64 `hcl:"cogs,optional"`
	InboundFreight *float64 `hcl:"inbound_freight,optional"`
	FXRate         *float64 `hcl:"fx_rate,optional"`
	AdSpend        *float64 `hcl:"ad_spend,optional"`
	PromoCost      *float64 `hcl:"promo_cost,optional"`
	OtherFee       *float64 `hcl:"other_fee,optional"`
	ReturnRate     *float64 `hcl:"return_rate,optional"`
	UnsellableRate *float64 `hcl:"unsellable_rate,optional"`
	Quantity       *int     `hcl:"quantity,optional"`

	StorageSeason    *string  `hcl:"storage_season,optional"`
	CubicFeetPerUnit *float64 `hcl:"cubic_feet_per_unit,optional"`
	AgeDays          *int     `hcl:"age_days,optional"`
	UtilizationWeeks *float64 `hcl:"utilization_weeks,optional"`
	StorageExempt    *bool    `hcl:"storage_exempt,optional"`

	// CalcDate is YYYY-MM-DD
	CalcDate *string `hcl:"calc_date,optional"`
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "defaults"},
		{Type: "product", LabelNames: []string{"name"}},
	},
}

// Loader parses scenario files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads and parses the scenario file at path
func (l *Loader) Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("scenario file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read scenario file %s", path)
	}
	return l.Parse(src, path)
}

// Parse parses scenario source; filename is used in diagnostics
func (l *Loader) Parse(src []byte, filename string) (*Scenario, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	var defaults attributes
	seenDefaults := false
	for _, block := range content.Blocks.OfType("defaults") {
		if seenDefaults {
			return nil, errors.Newf(errors.TypeParsing, "%s: only one defaults block is allowed", rangeOf(block))
		}
		seenDefaults = true
		if diags := gohcl.DecodeBody(block.Body, nil, &defaults); diags.HasErrors() {
			return nil, diagnosticsError(filename, diags)
		}
	}

	s := &Scenario{Path: filename}
	names := make(map[string]hcl.Range)
	for _, block := range content.Blocks.OfType("product") {
		name := block.Labels[0]
		if prev, dup := names[name]; dup {
			return nil, errors.Newf(errors.TypeParsing, "%s: duplicate product %q, first defined at %s", rangeOf(block), name, prev)
		}
		names[name] = block.DefRange

		var attrs attributes
		if diags := gohcl.DecodeBody(block.Body, nil, &attrs); diags.HasErrors() {
			return nil, diagnosticsError(filename, diags)
		}

		input, err := merge(defaults, attrs).toInput(name)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "%s: product %q", rangeOf(block), name)
		}
		s.Products = append(s.Products, input)
	}

	if len(s.Products) == 0 {
		return nil, errors.Newf(errors.TypeInput, "%s: no product blocks", filename)
	}
	return s, nil
}

// merge overlays product attributes on defaults
func merge(defaults, product attributes) attributes {
	out := defaults
	overlay(&out.Length, product.Length)
	overlay(&out.Width, product.Width)
	overlay(&out.Height, product.Height)
	overlay(&out.DimensionUnit, product.DimensionUnit)
	overlay(&out.Weight, product.Weight)
	overlay(&out.WeightUnit, product.WeightUnit)
	overlay(&out.Price, product.Price)
	overlay(&out.Category, product.Category)
	overlay(&out.Season, product.Season)
	overlay(&out.HasLithium, product.HasLithium)
	overlay(&out.ReferralCategory, product.ReferralCategory)
	overlay(&out.COGS, product.COGS)
	overlay(&out.InboundFreight, product.InboundFreight)
	overlay(&out.FXRate, product.FXRate)
	overlay(&out.AdSpend, product.AdSpend)
	overlay(&out.PromoCost, product.PromoCost)
	overlay(&out.OtherFee, product.OtherFee)
	overlay(&out.ReturnRate, product.ReturnRate)
	overlay(&out.UnsellableRate, product.UnsellableRate)
	overlay(&out.Quantity, product.Quantity)
	overlay(&out.StorageSeason, product.StorageSeason)
	overlay(&out.CubicFeetPerUnit, product.CubicFeetPerUnit)
	overlay(&out.AgeDays, product.AgeDays)
	overlay(&out.UtilizationWeeks, product.UtilizationWeeks)
	overlay(&out.StorageExempt, product.StorageExempt)
	overlay(&out.CalcDate, product.CalcDate)
	return out
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func (a attributes) toInput(name string) (engine.ProductInput, error) {
	in := engine.ProductInput{
		Name: name,
		Dimensions: units.Dimensions{
			Length: num(a.Length),
			Width:  num(a.Width),
			Height: num(a.Height),
		},
		DimensionUnit:    units.ParseDimensionUnit(str(a.DimensionUnit)),
		Weight:           num(a.Weight),
		WeightUnit:       units.ParseWeightUnit(str(a.WeightUnit)),
		Price:            money(a.Price),
		HasLithium:       flag(a.HasLithium),
		ReferralCategory: str(a.ReferralCategory),
		COGS:             money(a.COGS),
		InboundFreight:   money(a.InboundFreight),
		FXRate:           money(a.FXRate),
		AdSpend:          money(a.AdSpend),
		PromoCost:        money(a.PromoCost),
		OtherFee:         money(a.OtherFee),
		ReturnRate:       money(a.ReturnRate),
		UnsellableRate:   money(a.UnsellableRate),
		CubicFeetPerUnit: num(a.CubicFeetPerUnit),
		UtilizationWeeks: num(a.UtilizationWeeks),
		StorageExempt:    flag(a.StorageExempt),
	}
	if a.Category != nil {
		in.Category = types.ParseCategory(*a.Category)
	}
	if a.Season != nil {
		in.Season = types.ParseSeason(*a.Season)
	}
	if a.StorageSeason != nil {
		in.StorageSeason = types.ParseStorageSeason(*a.StorageSeason)
	}
	if a.Quantity != nil {
		in.Quantity = *a.Quantity
	}
	if a.AgeDays != nil {
		in.AgeDays = *a.AgeDays
	}
	if a.CalcDate != nil {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*a.CalcDate))
		if err != nil {
			return in, fmt.Errorf("calc_date must be YYYY-MM-DD: %w", err)
		}
		in.CalcDate = d
	}
	return in, nil
}

func num(v *float64) float64 {
	if v == nil {
		return 0
	}
	return units.Sanitize(*v)
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func flag(v *bool) bool {
	return v != nil && *v
}

// money keeps the shortest decimal spelling of the literal, so 19.99 stays 19.99
func money(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(units.Sanitize(*v))
}

func rangeOf(block *hcl.Block) string {
	return block.DefRange.String()
}

func diagnosticsError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		loc := filename
		if diag.Subject != nil {
			loc = fmt.Sprintf("%s:%d", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s: %s", loc, diag.Summary, diag.Detail))
	}
	return errors.Parsing("invalid scenario file", fmt.Errorf("%s", strings.Join(msgs, "; ")))
}
