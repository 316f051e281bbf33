package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fba-cost/adapters/history"
	"fba-cost/core/engine"
	"fba-cost/core/output"
	"fba-cost/core/types"
	"fba-cost/core/ui"
	"fba-cost/internal/config"
	"fba-cost/internal/logging"
)

var historyFilter struct {
	name         string
	tier         string
	since        string
	until        string
	unprofitable bool
	limit        int
	offset       int
}

// historyCmd manages saved quotes
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved quotes",
	Long: `Browse quotes saved with --save. The store backend (memory, file, sqlite)
and its location come from the history section of the config file.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved quotes, newest first",
	Example: `  fba-cost history list --name mug --since 2026-01-01
  fba-cost history list --unprofitable --limit 20`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved quote",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved quote",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	fs := historyListCmd.Flags()
	fs.StringVar(&historyFilter.name, "name", "", "product name contains")
	fs.StringVar(&historyFilter.tier, "tier", "", "size tier (small_standard, large_standard, ...)")
	fs.StringVar(&historyFilter.since, "since", "", "saved on or after YYYY-MM-DD")
	fs.StringVar(&historyFilter.until, "until", "", "saved before YYYY-MM-DD")
	fs.BoolVar(&historyFilter.unprofitable, "unprofitable", false, "only quotes with negative net profit")
	fs.IntVar(&historyFilter.limit, "limit", 50, "maximum records (0 for all)")
	fs.IntVar(&historyFilter.offset, "offset", 0, "records to skip")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func listFilter() (*history.Filter, error) {
	f := &history.Filter{
		Name:         historyFilter.name,
		Unprofitable: historyFilter.unprofitable,
		Limit:        historyFilter.limit,
		Offset:       historyFilter.offset,
	}
	if historyFilter.tier != "" {
		f.SizeTier = types.ParseSizeTier(historyFilter.tier).String()
	}
	var err error
	if f.Since, err = parseDate(historyFilter.since); err != nil {
		return nil, err
	}
	if f.Until, err = parseDate(historyFilter.until); err != nil {
		return nil, err
	}
	return f, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	filter, err := listFilter()
	if err != nil {
		return err
	}
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(commandContext(cmd), filter)
	if err != nil {
		return err
	}
	logging.Debug("history listed", zap.Int("records", len(records)))

	if format() == string(output.FormatJSON) {
		// Summaries only; "history show" returns the full quote
		rows := make([]history.Record, 0, len(records))
		for _, r := range records {
			row := *r
			row.Quote = nil
			rows = append(rows, row)
		}
		return writeJSON(cmd.OutOrStdout(), rows)
	}

	out := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	out.Header("Saved Quotes")
	if len(records) == 0 {
		out.Info("no saved quotes")
		return nil
	}
	t := out.NewTable("ID", "Saved", "Product", "Tier", "Net/unit", "Tables").AlignRight(4)
	for _, r := range records {
		t.AddRow(r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Name, r.SizeTier,
			output.Money(r.NetProfit), r.TableVersion)
	}
	t.Render()
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	f, err := formatter(format())
	if err != nil {
		return err
	}
	return f.Render(cmd.OutOrStdout(), output.NewResult([]*engine.Quote{rec.Quote}, output.Metadata{
		Timestamp:    rec.CreatedAt.Format(time.RFC3339),
		TableVersion: rec.TableVersion,
		Version:      Version,
		Source:       rec.Source,
	}))
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(commandContext(cmd), args[0]); err != nil {
		return err
	}
	logging.Info("quote deleted", zap.String("id", args[0]))
	ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor).Success("deleted %s", args[0])
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
