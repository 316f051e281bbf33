package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fba-cost/adapters/history"
	"fba-cost/core/engine"
	"fba-cost/core/output"
	"fba-cost/internal/config"
	"fba-cost/internal/errors"
	"fba-cost/internal/logging"
)

var (
	quoteFlags productFlags
	quoteSave  bool
)

// quoteCmd runs the full pipeline for one product
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote fees and profitability for one product",
	Long: `Run the full pricing pipeline for one product: size tier, fulfillment,
referral and storage fees, then landed cost, net profit, margin, ROI and
break-even ACoS.`,
	Example: `  fba-cost quote --name mug --length 6 --width 4 --height 4 --weight 14 \
    --price 19.99 --referral-category home_kitchen --cogs 3.5 --quantity 500
  fba-cost quote --length 30 --width 25 --height 4 --dimension-unit cm --weight 650 --weight-unit g \
    --price 39.50 --category apparel --format json --save`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteFlags.register(quoteCmd.Flags())
	quoteCmd.Flags().BoolVar(&quoteSave, "save", false, "record the quote in history")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	in, err := quoteFlags.input()
	if err != nil {
		return err
	}

	eng := newEngine()
	q := eng.Quote(in)
	logQuote(q)

	if quoteSave {
		if err := saveQuotes(commandContext(cmd), "flags", q); err != nil {
			return err
		}
	}
	return render(cmd.OutOrStdout(), eng, []*engine.Quote{q}, "flags")
}

func logQuote(q *engine.Quote) {
	log := logging.ForQuote(q)
	log.Debug("quote computed",
		zap.String("fulfillment", q.Fulfillment.Total.String()),
		zap.String("referral", q.Referral.Fee.String()),
		zap.String("net_profit", q.Profit.NetProfit.String()),
		zap.Int("assumptions", len(q.Assumptions)))
	if q.Fulfillment.Fallback {
		log.Warn("fulfillment schedule fell back",
			zap.String("category", string(q.Input.Category)),
			zap.String("season", string(q.Input.Season)))
	}
}

// render writes quotes in the selected format
func render(w io.Writer, eng *engine.Engine, quotes []*engine.Quote, source string) error {
	f, err := formatter(format())
	if err != nil {
		return err
	}
	result := output.NewResult(quotes, output.Metadata{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		TableVersion: eng.Repository().Snapshot().ShortHash(),
		Version:      Version,
		Source:       source,
	})
	return f.Render(w, result)
}

func formatter(name string) (output.Formatter, error) {
	if output.Format(name) == output.FormatCLI {
		return &output.CLIFormatter{NoColor: config.Get().Output.NoColor}, nil
	}
	f, ok := output.Get(output.Format(name))
	if !ok {
		return nil, errors.Inputf("unknown output format %q (supported: %v)", name, output.Formats())
	}
	return f, nil
}

// openHistory opens the configured history store
func openHistory() (history.Store, error) {
	cfg := config.Get().History
	store, err := history.Open(cfg)
	if err != nil {
		return nil, err
	}
	logging.Debug("history store opened",
		zap.String("backend", string(cfg.Backend)),
		zap.String("path", cfg.Path))
	return store, nil
}

func saveQuotes(ctx context.Context, source string, quotes ...*engine.Quote) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, q := range quotes {
		rec := history.NewRecord(q, source)
		if err := store.Save(ctx, rec); err != nil {
			return fmt.Errorf("saving %q: %w", q.Name, err)
		}
		logging.ForQuote(q).Info("quote saved", zap.String("id", rec.ID))
	}
	return nil
}
