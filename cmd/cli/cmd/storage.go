package cmd

import (
	"github.com/spf13/cobra"

	"fba-cost/core/output"
	"fba-cost/core/storagefee"
	"fba-cost/core/ui"
	"fba-cost/internal/config"
)

var storageFlags productFlags

// storageCmd prices monthly storage only
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Calculate monthly storage fees",
	Long: `Calculate the monthly storage charge for a quantity of inventory:
the base rate by size tier and season, the utilization surcharge by weeks of
supply, and the aged-inventory surcharge by age.`,
	Example: `  fba-cost storage --length 12 --width 9 --height 4 --quantity 100 --utilization-weeks 30
  fba-cost storage --cubic-feet 0.25 --quantity 500 --age-days 300 --storage-season octdec`,
	Args: cobra.NoArgs,
	RunE: runStorage,
}

func init() {
	fs := storageCmd.Flags()
	storageFlags.packageFlags.register(fs)
	storageFlags.registerStorage(fs)
	fs.StringVar(&storageFlags.category, "category", "", "fulfillment category (normal, apparel, dangerous)")
	fs.StringVar(&storageFlags.quantity, "quantity", "1", "units on hand")
	rootCmd.AddCommand(storageCmd)
}

func runStorage(cmd *cobra.Command, args []string) error {
	in, err := storageFlags.input()
	if err != nil {
		return err
	}
	q := newEngine().Quote(in)

	if format() == string(output.FormatJSON) {
		return writeJSON(cmd.OutOrStdout(), struct {
			storagefee.Result
			CubicFeetPerUnit float64 `json:"cubic_feet_per_unit"`
			PerUnit          string  `json:"per_unit"`
		}{q.Storage, q.CubicFeetPerUnit, q.StoragePerUnit.StringFixed(4)})
	}

	s := q.Storage
	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	out.Header("Monthly Storage")
	out.Println("%d units x %.4f ft³ = %.2f ft³ (%s)", q.Profit.Quantity, q.CubicFeetPerUnit, s.TotalVolume, q.SizeTier.Tier)

	t := out.NewTable("Component", "Rate", "Amount").AlignRight(1, 2)
	t.AddRow("Base", output.Money(s.BaseRate), output.Money(s.Base))
	t.AddRow("Utilization", output.Money(s.UtilizationRate), output.Money(s.Utilization))
	t.AddRow("Aged", output.Money(s.AgedRate), output.Money(s.Aged))
	t.AddRow("Total", "", output.Money(s.Total))
	t.Render()

	out.Println("per unit %s; %s", output.Money(q.StoragePerUnit), s.Describe())
	if s.UtilizationReason != "" {
		out.Info("no utilization surcharge: %s", s.UtilizationReason)
	}
	return nil
}
