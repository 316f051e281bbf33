// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// Category selects the fulfillment rate family
type Category string

const (
	CategoryNormal    Category = "normal"
	CategoryApparel   Category = "apparel"
	CategoryDangerous Category = "dangerous"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryNormal, CategoryApparel, CategoryDangerous:
		return true
	default:
		return false
	}
}

// ParseCategory maps user spellings onto a category.
// Unknown values are returned as-is so the repository can apply its fallback.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "standard", "non-apparel":
		return CategoryNormal
	case "apparel", "clothing", "shoes":
		return CategoryApparel
	case "dangerous", "hazmat", "dg":
		return CategoryDangerous
	default:
		return Category(strings.ToLower(strings.TrimSpace(s)))
	}
}

// Season identifies a fulfillment rate-table version
type Season string

const (
	SeasonNonPeak2025 Season = "nonpeak2025"
	SeasonPeak2025    Season = "peak2025"
	SeasonNonPeak2026 Season = "nonpeak2026"
)

// String returns the string representation of the season
func (s Season) String() string {
	return string(s)
}

// IsValid checks if the season is a published rate-table version
func (s Season) IsValid() bool {
	switch s {
	case SeasonNonPeak2025, SeasonPeak2025, SeasonNonPeak2026:
		return true
	default:
		return false
	}
}

// ParseSeason normalizes a season spelling ("2026", "peak-2025", ...)
func ParseSeason(s string) Season {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "", "_", "", " ", "").Replace(v)
	switch v {
	case "", "nonpeak2025", "2025":
		return SeasonNonPeak2025
	case "peak2025", "peak":
		return SeasonPeak2025
	case "nonpeak2026", "2026":
		return SeasonNonPeak2026
	default:
		return Season(v)
	}
}

// StorageSeason selects the monthly storage rate period
type StorageSeason string

const (
	StorageJanSep StorageSeason = "jansep"
	StorageOctDec StorageSeason = "octdec"
)

// ParseStorageSeason normalizes a storage season spelling
func ParseStorageSeason(s string) StorageSeason {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "", "_", "", " ", "").Replace(v)
	switch v {
	case "octdec", "q4", "peak":
		return StorageOctDec
	default:
		return StorageJanSep
	}
}

// SizeTier is the fulfillment size classification
type SizeTier int

const (
	SmallStandard SizeTier = iota
	LargeStandard
	SmallOversize
	LargeOversize
	SpecialOversize
)

// String returns the tier name
func (t SizeTier) String() string {
	switch t {
	case SmallStandard:
		return "small_standard"
	case LargeStandard:
		return "large_standard"
	case SmallOversize:
		return "small_oversize"
	case LargeOversize:
		return "large_oversize"
	case SpecialOversize:
		return "special_oversize"
	default:
		return "unknown"
	}
}

// IsStandard reports whether the tier is one of the standard-size tiers
func (t SizeTier) IsStandard() bool {
	return t == SmallStandard || t == LargeStandard
}

// MarshalText implements encoding.TextMarshaler
func (t SizeTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *SizeTier) UnmarshalText(text []byte) error {
	*t = ParseSizeTier(string(text))
	return nil
}

// ParseSizeTier parses a tier name; unknown names map to SmallStandard
func ParseSizeTier(s string) SizeTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "large_standard":
		return LargeStandard
	case "small_oversize":
		return SmallOversize
	case "large_oversize":
		return LargeOversize
	case "special_oversize":
		return SpecialOversize
	default:
		return SmallStandard
	}
}

// PriceBand buckets the selling price for fulfillment fee lookup
type PriceBand int

const (
	Under10 PriceBand = iota
	Mid10to50
	Over50
)

// String returns the band label
func (b PriceBand) String() string {
	switch b {
	case Under10:
		return "under_10"
	case Mid10to50:
		return "10_to_50"
	case Over50:
		return "over_50"
	default:
		return "unknown"
	}
}

// DimensionUnit is a length unit accepted by the normalizer
type DimensionUnit string

const (
	Inch       DimensionUnit = "in"
	Centimeter DimensionUnit = "cm"
)

// WeightUnit is a mass unit accepted by the normalizer
type WeightUnit string

const (
	Ounce    WeightUnit = "oz"
	Pound    WeightUnit = "lb"
	Gram     WeightUnit = "g"
	Kilogram WeightUnit = "kg"
)
