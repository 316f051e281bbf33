package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fba-cost/core/engine"
	"fba-cost/core/output"
	"fba-cost/core/ui"
	"fba-cost/internal/config"
	"fba-cost/internal/logging"
)

var referralFlags productFlags

// referralCmd prices the referral fee only
var referralCmd = &cobra.Command{
	Use:   "referral",
	Short: "Calculate the referral fee",
	Long: `Calculate the referral fee for a price and catalog category, or for a
custom rule given with --rule. Use "fba-cost tables" to list categories.`,
	Example: `  fba-cost referral --price 19.99 --referral-category home_kitchen
  fba-cost referral --price 120 --rule tiered --threshold 100 --low-rate 0.15 --high-rate 0.08`,
	Args: cobra.NoArgs,
	RunE: runReferral,
}

func init() {
	fs := referralCmd.Flags()
	referralFlags.ruleFlags.register(fs)
	fs.StringVar(&referralFlags.price, "price", "0", "selling price")
	fs.StringVar(&referralFlags.referralCategory, "referral-category", "", "referral catalog category")
	rootCmd.AddCommand(referralCmd)
}

func runReferral(cmd *cobra.Command, args []string) error {
	in, err := referralFlags.input()
	if err != nil {
		return err
	}
	q := newEngine().Quote(in)
	r := q.Referral
	logging.Debug("referral fee",
		zap.String("category", r.Category),
		zap.String("fee", r.Fee.String()))

	if format() == string(output.FormatJSON) {
		return writeJSON(cmd.OutOrStdout(), r)
	}

	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	out.Header("Referral Fee")
	renderReferral(out, in, r)
	for _, a := range q.Assumptions {
		if a.Category == "referral" {
			out.Warning("%s", a.Description)
		}
	}
	return nil
}

func renderReferral(out *ui.Writer, in engine.ProductInput, r engine.ReferralQuote) {
	t := out.NewTable("Item", "Value").AlignRight(1)
	t.AddRow("Category", r.Category)
	t.AddRow("Rule", string(r.Kind))
	t.AddRow("Price", output.Money(in.Price))
	t.AddRow("Fee", output.Money(r.Fee))
	t.AddRow("Effective rate", output.Percent(r.EffectiveRate))
	t.AddRow("Minimum", output.Money(r.Minimum))
	t.Render()
}
