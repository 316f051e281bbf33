package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fba-cost/core/fulfillment"
	"fba-cost/core/output"
	"fba-cost/core/sizetier"
	"fba-cost/core/ui"
	"fba-cost/internal/config"
	"fba-cost/internal/logging"
)

var classifyFlags packageFlags

// classifyCmd assigns a size tier
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a package into a size tier",
	Long: `Classify a package by its dimensions and weight.

Volumetric weight replaces actual weight for tier assignment when it is
heavier, except for small standard packages and special oversize packages
of 150 lb or more.`,
	Example: `  fba-cost classify --length 10 --width 6 --height 3 --weight 1.2 --weight-unit lb
  fba-cost classify --length 60 --width 40 --height 30 --dimension-unit cm --weight 9 --weight-unit kg`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

var feeFlags productFlags

// feeCmd prices fulfillment only
var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "Calculate the FBA fulfillment fee",
	Example: `  fba-cost fee --length 6 --width 4 --height 1 --weight 3 --price 15
  fba-cost fee --length 13 --width 9 --height 2 --weight 2 --weight-unit lb --price 25 --lithium --season peak2025`,
	Args: cobra.NoArgs,
	RunE: runFee,
}

func init() {
	classifyFlags.register(classifyCmd.Flags())
	rootCmd.AddCommand(classifyCmd)

	feeFlags.packageFlags.register(feeCmd.Flags())
	feeCmd.Flags().StringVar(&feeFlags.price, "price", "0", "selling price")
	feeCmd.Flags().StringVar(&feeFlags.category, "category", "", "fulfillment category (normal, apparel, dangerous)")
	feeCmd.Flags().StringVar(&feeFlags.season, "season", "", "fulfillment rate table (nonpeak2025, peak2025, nonpeak2026)")
	feeCmd.Flags().BoolVar(&feeFlags.hasLithium, "lithium", false, "product contains lithium batteries")
	rootCmd.AddCommand(feeCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	r := sizetier.Classify(classifyFlags.measurement())
	logging.Debug("classified package",
		zap.String("tier", r.Tier.String()),
		zap.Float64("billable_oz", r.BillableWeightOz))

	if format() == string(output.FormatJSON) {
		return writeJSON(cmd.OutOrStdout(), r)
	}

	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	out.Header("Size Tier")
	renderTier(out, r)
	return nil
}

func renderTier(out *ui.Writer, r sizetier.Result) {
	t := out.NewTable("Measure", "Value").AlignRight(1)
	t.AddRow("Tier", r.Tier.String())
	t.AddRow("Sides (in)", fmt.Sprintf("%.2f x %.2f x %.2f", r.Longest, r.Median, r.Shortest))
	t.AddRow("Girth (in)", fmt.Sprintf("%.2f", r.Girth))
	t.AddRow("Actual weight (oz)", fmt.Sprintf("%.2f", r.ActualWeightOz))
	t.AddRow("Volumetric weight (oz)", fmt.Sprintf("%.2f", r.VolumetricWeightOz))
	t.AddRow("Billable weight (oz)", fmt.Sprintf("%.2f", r.BillableWeightOz))
	t.Render()
	if r.DimensionalApplied {
		out.Info("volumetric weight billed; provisional tier was %s", r.ProvisionalTier)
	}
}

func runFee(cmd *cobra.Command, args []string) error {
	in, err := feeFlags.input()
	if err != nil {
		return err
	}
	eng := newEngine()
	q := eng.Quote(in)
	logQuote(q)

	if format() == string(output.FormatJSON) {
		return writeJSON(cmd.OutOrStdout(), struct {
			SizeTier    sizetier.Result       `json:"size_tier"`
			Fulfillment fulfillment.Breakdown `json:"fulfillment"`
		}{q.SizeTier, q.Fulfillment})
	}

	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	out.Header("Fulfillment Fee")
	renderTier(out, q.SizeTier)

	f := q.Fulfillment
	t := out.NewTable("Component", "Amount").AlignRight(1)
	t.AddRow("Base", output.Money(f.Base))
	t.AddRow("Weight", output.Money(f.Weight))
	t.AddRow("Lithium", output.Money(f.Lithium))
	t.AddRow("Total", output.Money(f.Total))
	out.Println("")
	t.Render()
	out.Println("%s, %s, price band %s", f.Schedule, f.Formula, f.Band)
	if f.Fallback {
		out.Warning("no schedule for %s/%s; priced with %s", q.Input.Category, q.Input.Season, f.Schedule)
	}
	return nil
}
