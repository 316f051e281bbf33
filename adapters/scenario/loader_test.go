package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fba-cost/core/types"
	"fba-cost/internal/errors"
)

const sample = `
defaults {
  season            = "nonpeak2026"
  category          = "normal"
  referral_category = "home_kitchen"
  fx_rate           = 1
  quantity          = 100
}

product "mug" {
  length = 6
  width  = 4
  height = 4
  weight = 14
  price  = 19.99
  cogs   = 3.5

  inbound_freight   = 0.4
  ad_spend          = 2
  return_rate       = 0.05
  unsellable_rate   = 0.5
  storage_season    = "jansep"
  age_days          = 200
  utilization_weeks = 10
}

product "hoodie" {
  length          = 30
  width           = 25
  height          = 4
  dimension_unit  = "cm"
  weight          = 650
  weight_unit     = "g"
  price           = 39.5
  category        = "apparel"
  season          = "peak2025"
  quantity        = 40
  calc_date       = "2026-02-01"
  storage_exempt  = true
  has_lithium     = false
}
`

func TestParse_DefaultsAndOverrides(t *testing.T) {
	s, err := NewLoader().Parse([]byte(sample), "catalog.hcl")
	require.NoError(t, err)
	require.Len(t, s.Products, 2)

	mug := s.Products[0]
	assert.Equal(t, "mug", mug.Name)
	assert.Equal(t, types.SeasonNonPeak2026, mug.Season)
	assert.Equal(t, types.CategoryNormal, mug.Category)
	assert.Equal(t, "home_kitchen", mug.ReferralCategory)
	assert.Equal(t, types.Inch, mug.DimensionUnit)
	assert.Equal(t, types.Ounce, mug.WeightUnit)
	assert.Equal(t, "19.99", mug.Price.String())
	assert.Equal(t, "3.5", mug.COGS.String())
	assert.Equal(t, 100, mug.Quantity)
	assert.Equal(t, 200, mug.AgeDays)
	assert.Equal(t, 6.0, mug.Dimensions.Length)
	assert.True(t, mug.CalcDate.IsZero())

	hoodie := s.Products[1]
	assert.Equal(t, types.CategoryApparel, hoodie.Category)
	assert.Equal(t, types.SeasonPeak2025, hoodie.Season)
	assert.Equal(t, types.Centimeter, hoodie.DimensionUnit)
	assert.Equal(t, types.Gram, hoodie.WeightUnit)
	assert.Equal(t, 40, hoodie.Quantity)
	assert.Equal(t, "home_kitchen", hoodie.ReferralCategory)
	assert.True(t, hoodie.StorageExempt)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), hoodie.CalcDate)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		errType  errors.Type
		contains string
	}{
		{"syntax", `product "a" {`, errors.TypeParsing, "bad.hcl:1"},
		{"unknown attribute", `product "a" { colour = "red" }`, errors.TypeParsing, "colour"},
		{"wrong type", `product "a" { price = "cheap" }`, errors.TypeParsing, "bad.hcl:1"},
		{"fractional quantity", `product "a" { quantity = 1.5 }`, errors.TypeParsing, "bad.hcl:1"},
		{"duplicate product", "product \"a\" {}\nproduct \"a\" {}", errors.TypeParsing, "duplicate product"},
		{"two defaults", "defaults {}\ndefaults {}\nproduct \"a\" {}", errors.TypeParsing, "only one defaults"},
		{"bad date", `product "a" { calc_date = "01/02/2026" }`, errors.TypeParsing, "calc_date"},
		{"no products", `defaults { price = 10 }`, errors.TypeInput, "no product blocks"},
		{"unknown block", `widget "a" {}`, errors.TypeParsing, "widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_NegativeNumbersCoerced(t *testing.T) {
	s, err := NewLoader().Parse([]byte(`product "a" {
  weight = -4
  price  = -10
}`), "neg.hcl")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Products[0].Weight)
	assert.True(t, s.Products[0].Price.IsZero())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	s, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path)
	assert.Len(t, s.Products, 2)

	_, err = NewLoader().Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}
