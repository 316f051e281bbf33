package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"fba-cost/core/engine"
	"fba-cost/core/profit"
	"fba-cost/core/ui"
)

// CLIFormatter renders quotes as terminal tables
type CLIFormatter struct {
	// NoColor disables ANSI colors
	NoColor bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes one block per quote and a summary for batches
func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.NoColor)

	for _, q := range result.Quotes {
		renderQuote(out, q)
	}

	if result.Summary != nil {
		renderSummary(out, result.Summary)
	}

	out.Println("")
	out.Println("rate tables %s, %s", result.Metadata.TableVersion, result.Metadata.Timestamp)
	return nil
}

func renderQuote(out *ui.Writer, q *engine.Quote) {
	title := q.Name
	if title == "" {
		title = "Quote"
	}
	out.Header(title)

	m := q.Measurement
	st := q.SizeTier
	out.SubHeader("Package")
	pkg := out.NewTable("Attribute", "Value")
	pkg.AddRow("Dimensions", fmt.Sprintf("%.2f x %.2f x %.2f in", st.Longest, st.Median, st.Shortest))
	pkg.AddRow("Actual weight", fmt.Sprintf("%.2f oz", m.WeightOz))
	pkg.AddRow("Volumetric weight", fmt.Sprintf("%.2f oz", st.VolumetricWeightOz))
	pkg.AddRow("Billable weight", fmt.Sprintf("%.2f oz (%.2f lb)", st.BillableWeightOz, st.BillableWeightLb()))
	pkg.AddRow("Size tier", st.Tier.String())
	pkg.AddRow("Rate table", q.Fulfillment.Schedule.String())
	pkg.Render()
	out.Println("")

	out.SubHeader("Fees per unit")
	fees := out.NewTable("Fee", "Amount", "Detail").AlignRight(1)
	fees.AddRow("Fulfillment", Money(q.Fulfillment.Total), q.Fulfillment.Formula)
	fees.AddRow("Referral", Money(q.Referral.Fee), fmt.Sprintf("%s %s, %s effective", q.Referral.Category, q.Referral.Kind, Percent(q.Referral.EffectiveRate)))
	fees.AddRow("Storage", Money(q.StoragePerUnit), q.Storage.Describe())
	fees.AddRow("Total", Money(q.UnitFees()), "")
	fees.Render()
	out.Println("")

	p := q.Profit
	out.SubHeader("Profitability")
	prof := out.NewTable("Metric", "Per unit", fmt.Sprintf("x %d", p.Quantity)).AlignRight(1, 2)
	prof.AddRow("Payout", Money(p.AmazonPayout), "")
	prof.AddRow("Landed cost", Money(p.LandedCost), "")
	prof.AddRow("Investment", "", Money(p.BatchInvestment))
	prof.AddRow("Gross profit", Money(p.GrossProfit), "")
	prof.AddRow("Operating cost", Money(p.TotalOperatingCost), "")
	prof.AddRow("Net profit", Money(p.NetProfit), Money(p.BatchNetProfit))
	prof.AddRow("Net margin", Percent(p.NetMargin), "")
	prof.AddRow("Break-even ACoS", Percent(p.BreakEvenACoS), "")
	prof.AddRow("ROI", "", ROI(p.ROI, p.ROIIsSentinel))
	prof.Render()

	if len(q.Assumptions) > 0 {
		out.Println("")
		for _, a := range q.Assumptions {
			out.Warning("[%s] %s", a.Category, a.Description)
		}
	}
}

func renderSummary(out *ui.Writer, s *engine.Summary) {
	margin := 0.0
	if s.Revenue.IsPositive() {
		margin, _ = s.TotalNetProfit.Div(s.Revenue).Float64()
	}
	box := out.NewProfitSummary()
	box.NetProfit = Money(s.TotalNetProfit)
	box.ROI = ROI(s.ROI, s.ROI.Equal(profit.ROISentinel))
	box.Margin = margin
	box.Products = s.Products
	box.Losing = len(s.Unprofitable)
	box.Render()
	for _, name := range s.Unprofitable {
		out.Error("%s loses money per unit", name)
	}
}

// Money formats an amount as dollars and cents
func Money(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-$" + v.Neg().StringFixed(2)
	}
	return "$" + v.StringFixed(2)
}

// Percent formats a fraction as a percentage with one decimal
func Percent(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// ROI formats a return ratio, marking the no-investment sentinel
func ROI(v decimal.Decimal, isSentinel bool) string {
	if isSentinel {
		return "n/a (no investment)"
	}
	return Percent(v)
}
