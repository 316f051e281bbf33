package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"fba-cost/core/ratetable"
	"fba-cost/core/ui"
	"fba-cost/internal/config"
)

var tablesCategories bool

// tablesCmd lists the rate tables the engine prices with
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List rate tables and their content hashes",
	Long: `List every rate table with its content hash. Quotes carry the short form
of the combined hash, so two quotes with the same table version were priced
from identical tables.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().BoolVar(&tablesCategories, "categories", false, "also list referral categories")
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	repo := newEngine().Repository()
	snap := repo.Snapshot()

	if format() == "json" {
		return writeJSON(cmd.OutOrStdout(), struct {
			ratetable.Snapshot
			AgedCutover        string   `json:"aged_cutover"`
			ReferralCategories []string `json:"referral_categories,omitempty"`
		}{snap, ratetable.AgedPolicyCutover.Format("2006-01-02"), categories(repo)})
	}

	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	out.Header("Rate Tables " + snap.ShortHash())
	t := out.NewTable("Table", "Hash")
	for _, e := range snap.Entries {
		t.AddRow(e.Name, e.Hash[:12])
	}
	t.Render()
	out.Println("aged-inventory cut-over %s", ratetable.AgedPolicyCutover.Format("2006-01-02"))

	if names := categories(repo); len(names) > 0 {
		out.SubHeader("Referral Categories")
		out.Println("%s", strings.Join(names, "\n"))
	}
	return nil
}

func categories(repo *ratetable.Repository) []string {
	if !tablesCategories {
		return nil
	}
	return repo.ReferralCategories()
}
