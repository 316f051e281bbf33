package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fba-cost/core/engine"
	"fba-cost/core/types"
	"fba-cost/core/units"
)

func quotes(t *testing.T) []*engine.Quote {
	t.Helper()
	e := engine.New(engine.WithClock(func() time.Time {
		return time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
	}))
	base := engine.ProductInput{
		Name:             "envelope",
		Dimensions:       units.Dimensions{Length: 13.8, Width: 9, Height: 0.7},
		Weight:           2.88,
		Price:            decimal.NewFromInt(15),
		Category:         types.CategoryNormal,
		Season:           "peak2031",
		ReferralCategory: "home_kitchen",
		COGS:             decimal.NewFromInt(2),
		Quantity:         10,
	}
	loss := base
	loss.Name = "loss-leader"
	loss.Price = decimal.NewFromInt(5)
	loss.COGS = decimal.NewFromInt(10)
	return e.QuoteBatch([]engine.ProductInput{base, loss})
}

func meta() Metadata {
	return Metadata{Timestamp: "2025-05-05T00:00:00Z", TableVersion: "abc123def456", Version: "test"}
}

func TestRegistry_BuiltinFormats(t *testing.T) {
	f, ok := Get(FormatCLI)
	require.True(t, ok)
	assert.Equal(t, FormatCLI, f.Format())

	f, ok = Get(FormatJSON)
	require.True(t, ok)
	assert.Equal(t, FormatJSON, f.Format())

	_, ok = Get("html")
	assert.False(t, ok)

	r := NewRegistry()
	assert.Error(t, r.Register(NewJSONFormatter()))
	assert.Equal(t, []Format{FormatCLI, FormatJSON}, r.Formats())
}

func TestNewResult_SummaryOnlyForBatches(t *testing.T) {
	qs := quotes(t)
	assert.Nil(t, NewResult(qs[:1], meta()).Summary)
	assert.NotNil(t, NewResult(qs, meta()).Summary)
}

func TestCLIFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{NoColor: true}
	require.NoError(t, f.Render(&buf, NewResult(quotes(t), meta())))

	out := buf.String()
	assert.Contains(t, out, "━━━ envelope ━━━")
	assert.Contains(t, out, "small_standard")
	assert.Contains(t, out, "normal/nonpeak2025")
	assert.Contains(t, out, "[rate_table]")
	assert.Contains(t, out, "Profitability Summary")
	assert.Contains(t, out, "loss-leader loses money per unit")
	assert.Contains(t, out, "rate tables abc123def456")
	assert.NotContains(t, out, "\033[")
}

func TestJSONFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Render(&buf, NewResult(quotes(t), meta())))

	var decoded struct {
		Quotes []struct {
			Name     string `json:"name"`
			SizeTier struct {
				Tier string `json:"tier"`
			} `json:"size_tier"`
			Fulfillment struct {
				Total    string `json:"total"`
				Fallback bool   `json:"fallback"`
			} `json:"fulfillment"`
		} `json:"quotes"`
		Summary  *engine.Summary `json:"summary"`
		Metadata Metadata        `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Quotes, 2)
	assert.Equal(t, "envelope", decoded.Quotes[0].Name)
	assert.Equal(t, "small_standard", decoded.Quotes[0].SizeTier.Tier)
	assert.Equal(t, "3.15", decoded.Quotes[0].Fulfillment.Total)
	assert.True(t, decoded.Quotes[0].Fulfillment.Fallback)
	require.NotNil(t, decoded.Summary)
	assert.Equal(t, 2, decoded.Summary.Products)
	assert.Equal(t, "abc123def456", decoded.Metadata.TableVersion)
}

func TestMoneyAndPercent(t *testing.T) {
	assert.Equal(t, "$3.15", Money(decimal.RequireFromString("3.149")))
	assert.Equal(t, "-$4.20", Money(decimal.RequireFromString("-4.2")))
	assert.Equal(t, "44.3%", Percent(decimal.RequireFromString("0.4425")))
	assert.Equal(t, "n/a (no investment)", ROI(decimal.NewFromInt(9999), true))
}
