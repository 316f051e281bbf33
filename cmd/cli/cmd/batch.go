package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fba-cost/adapters/scenario"
	"fba-cost/core/engine"
	"fba-cost/core/ui"
	"fba-cost/internal/config"
	"fba-cost/internal/logging"
)

var batchSave bool

// batchCmd quotes every product in a scenario file
var batchCmd = &cobra.Command{
	Use:   "batch <file.hcl>",
	Short: "Quote every product in an HCL scenario file",
	Long: `Quote every product block in an HCL scenario file and summarize the batch.

A scenario file has an optional defaults block and one product block per
listing; product attributes override the defaults:

  defaults {
    season   = "nonpeak2026"
    quantity = 500
  }

  product "mug" {
    length = 6
    width  = 4
    height = 4
    weight = 14
    price  = 19.99
    cogs   = 3.5
  }`,
	Example: `  fba-cost batch catalog.hcl
  fba-cost batch catalog.hcl --format json --save`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "record every quote in history")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	logging.Info("loading scenario", zap.String("path", path))

	s, err := scenario.NewLoader().Load(path)
	if err != nil {
		return err
	}

	eng := newEngine()
	progress := ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor).
		NewProgressBar(len(s.Products), "Quoting")

	quotes := eng.QuoteBatch(s.Products, logQuote, func(*engine.Quote) { progress.Increment() })
	progress.Done()

	summary := engine.Summarize(quotes)
	logging.Info("batch quoted",
		zap.String("path", path),
		zap.Int("products", summary.Products),
		zap.Int("units", summary.Units),
		zap.Int("unprofitable", len(summary.Unprofitable)))

	if batchSave {
		if err := saveQuotes(commandContext(cmd), path, quotes...); err != nil {
			return err
		}
	}
	return render(cmd.OutOrStdout(), eng, quotes, path)
}
