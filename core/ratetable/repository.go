package ratetable

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"fba-cost/core/referral"
	"fba-cost/core/types"
)

// FallbackKey is used when a category/season pair has no schedule
var FallbackKey = Key{Category: types.CategoryNormal, Season: types.SeasonNonPeak2025}

var (
	allCategories = []types.Category{types.CategoryNormal, types.CategoryApparel, types.CategoryDangerous}
	allSeasons    = []types.Season{types.SeasonNonPeak2025, types.SeasonPeak2025, types.SeasonNonPeak2026}
)

// Tables is the raw input to a Repository
type Tables struct {
	Fulfillment      []FulfillmentSchedule
	Referral         map[string]referral.Rule
	Storage          map[types.StorageSeason]StorageRate
	DangerousStorage map[types.StorageSeason]decimal.Decimal
	Utilization      []UtilizationTier
	AgedPre          []AgedInventoryTier
	AgedPost         []AgedInventoryTier
	AgedCutover      time.Time
}

// Builtin returns a copy of the published tables
func Builtin() Tables {
	t := Tables{
		Fulfillment:      make([]FulfillmentSchedule, 0, len(fulfillmentSchedules)),
		Referral:         make(map[string]referral.Rule, len(referralCatalog)),
		Storage:          make(map[types.StorageSeason]StorageRate, len(storageRates)),
		DangerousStorage: make(map[types.StorageSeason]decimal.Decimal, len(dangerousStorageRates)),
		Utilization:      append([]UtilizationTier(nil), utilizationTiers...),
		AgedPre:          append([]AgedInventoryTier(nil), agedTiersPre2026...),
		AgedPost:         append([]AgedInventoryTier(nil), agedTiersPost2026...),
		AgedCutover:      AgedPolicyCutover,
	}
	for _, s := range fulfillmentSchedules {
		t.Fulfillment = append(t.Fulfillment, s.clone())
	}
	for k, v := range referralCatalog {
		t.Referral[k] = v
	}
	for k, v := range storageRates {
		t.Storage[k] = v
	}
	for k, v := range dangerousStorageRates {
		t.DangerousStorage[k] = v
	}
	return t
}

// Repository is a read-only, total view over a set of Tables
type Repository struct {
	schedules        map[Key]FulfillmentSchedule
	referral         map[string]referral.Rule
	storage          map[types.StorageSeason]StorageRate
	dangerousStorage map[types.StorageSeason]decimal.Decimal
	utilization      []UtilizationTier
	agedPre          []AgedInventoryTier
	agedPost         []AgedInventoryTier
	agedCutover      time.Time
	snapshot         Snapshot
}

// New validates tables and builds a repository.
// Every category/season pair must have a schedule.
func New(t Tables) (*Repository, error) {
	r := &Repository{
		schedules:        make(map[Key]FulfillmentSchedule, len(t.Fulfillment)),
		referral:         make(map[string]referral.Rule, len(t.Referral)),
		storage:          make(map[types.StorageSeason]StorageRate, len(t.Storage)),
		dangerousStorage: make(map[types.StorageSeason]decimal.Decimal, len(t.DangerousStorage)),
		utilization:      append([]UtilizationTier(nil), t.Utilization...),
		agedPre:          append([]AgedInventoryTier(nil), t.AgedPre...),
		agedPost:         append([]AgedInventoryTier(nil), t.AgedPost...),
		agedCutover:      t.AgedCutover,
	}

	for _, s := range t.Fulfillment {
		if _, dup := r.schedules[s.Key]; dup {
			return nil, fmt.Errorf("duplicate fulfillment schedule %s", s.Key)
		}
		if err := validateSchedule(s); err != nil {
			return nil, err
		}
		r.schedules[s.Key] = s.clone()
	}
	for _, c := range allCategories {
		for _, season := range allSeasons {
			k := Key{Category: c, Season: season}
			if _, ok := r.schedules[k]; !ok {
				return nil, fmt.Errorf("missing fulfillment schedule %s", k)
			}
		}
	}

	for name, rule := range t.Referral {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("referral category %s: %w", name, err)
		}
		r.referral[name] = rule
	}
	if _, ok := r.referral[DefaultReferralCategory]; !ok {
		return nil, fmt.Errorf("referral catalog has no %s rule", DefaultReferralCategory)
	}

	for k, v := range t.Storage {
		r.storage[k] = v
	}
	for k, v := range t.DangerousStorage {
		r.dangerousStorage[k] = v
	}
	if r.agedCutover.IsZero() {
		r.agedCutover = AgedPolicyCutover
	}

	snap, err := buildSnapshot(r)
	if err != nil {
		return nil, err
	}
	r.snapshot = snap

	return r, nil
}

func validateSchedule(s FulfillmentSchedule) error {
	for name, steps := range map[string][]Step{"small_standard": s.SmallStandard, "large_standard": s.LargeStandard} {
		if len(steps) == 0 {
			return fmt.Errorf("schedule %s: %s has no steps", s.Key, name)
		}
		for i := 1; i < len(steps); i++ {
			if steps[i].MaxOz <= steps[i-1].MaxOz {
				return fmt.Errorf("schedule %s: %s breakpoints not ascending at %d", s.Key, name, i)
			}
		}
	}
	if s.LargeStandardOver.UnitOz <= 0 {
		return fmt.Errorf("schedule %s: large standard increment unit must be positive", s.Key)
	}
	if len(s.SpecialOversize) == 0 {
		return fmt.Errorf("schedule %s: no special oversize bands", s.Key)
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultRepo *Repository
)

// Default returns the process-wide repository over the published tables
func Default() *Repository {
	defaultOnce.Do(func() {
		repo, err := New(Builtin())
		if err != nil {
			panic("ratetable: builtin tables invalid: " + err.Error())
		}
		defaultRepo = repo
	})
	return defaultRepo
}

// Schedule returns the fulfillment schedule for a category and season.
// Unknown pairs resolve to FallbackKey with fallback set.
func (r *Repository) Schedule(category types.Category, season types.Season) (schedule FulfillmentSchedule, fallback bool) {
	if s, ok := r.schedules[Key{Category: category, Season: season}]; ok {
		return s.clone(), false
	}
	return r.schedules[FallbackKey].clone(), true
}

// ReferralRule returns the commission rule for a referral category.
// Unknown categories resolve to DefaultReferralCategory with found unset.
func (r *Repository) ReferralRule(category string) (rule referral.Rule, found bool) {
	key := normalizeReferralCategory(category)
	if rule, ok := r.referral[key]; ok {
		return rule, true
	}
	return r.referral[DefaultReferralCategory], false
}

// ReferralCategories lists catalog entries in sorted order
func (r *Repository) ReferralCategories() []string {
	names := make([]string, 0, len(r.referral))
	for k := range r.referral {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func normalizeReferralCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" & ", "_", "&", "_", " ", "_", "-", "_").Replace(s)
	return s
}

// BaseStorageRate is the monthly per-cubic-foot rate.
// Dangerous goods use a flat table that ignores the size tier.
func (r *Repository) BaseStorageRate(category types.Category, season types.StorageSeason, tier types.SizeTier) decimal.Decimal {
	if category == types.CategoryDangerous {
		if rate, ok := r.dangerousStorage[season]; ok {
			return rate
		}
		return r.dangerousStorage[types.StorageJanSep]
	}
	rates, ok := r.storage[season]
	if !ok {
		rates = r.storage[types.StorageJanSep]
	}
	if tier.IsStandard() {
		return rates.Standard
	}
	return rates.Oversize
}

// UtilizationTier returns the surcharge bracket for weeks of supply
func (r *Repository) UtilizationTier(weeks float64) (UtilizationTier, bool) {
	for _, t := range r.utilization {
		if t.Contains(weeks) {
			return t, true
		}
	}
	return UtilizationTier{}, false
}

// UsesPost2026AgedTable reports whether calcDate falls on or after the cut-over day
func (r *Repository) UsesPost2026AgedTable(calcDate time.Time) bool {
	y, m, d := calcDate.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(r.agedCutover)
}

// AgedTier returns the aged-inventory bracket for ageDays under the policy
// in force on calcDate
func (r *Repository) AgedTier(calcDate time.Time, ageDays int) (tier AgedInventoryTier, post bool, ok bool) {
	post = r.UsesPost2026AgedTable(calcDate)
	table := r.agedPre
	if post {
		table = r.agedPost
	}
	for _, t := range table {
		if t.Contains(ageDays) {
			return t, post, true
		}
	}
	return AgedInventoryTier{}, post, false
}

// AgedTable returns a copy of the pre or post cut-over table
func (r *Repository) AgedTable(post bool) []AgedInventoryTier {
	if post {
		return append([]AgedInventoryTier(nil), r.agedPost...)
	}
	return append([]AgedInventoryTier(nil), r.agedPre...)
}

// Snapshot returns the content-hash manifest of the repository
func (r *Repository) Snapshot() Snapshot {
	out := r.snapshot
	out.Entries = append([]SnapshotEntry(nil), r.snapshot.Entries...)
	return out
}
