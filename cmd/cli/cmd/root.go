// Package cmd provides the CLI commands for fba-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fba-cost/core/engine"
	"fba-cost/internal/config"
	"fba-cost/internal/errors"
	"fba-cost/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fba-cost",
	Short: "Estimate Amazon FBA fees and per-unit profitability",
	Long: `fba-cost prices a product listing the way Amazon bills it: size tier,
fulfillment fee, referral fee, monthly storage, and the resulting margin, ROI
and break-even ad spend.

Examples:
  fba-cost classify --length 10 --width 6 --height 3 --weight 1.2 --weight-unit lb
  fba-cost quote --length 6 --width 4 --height 4 --weight 14 --price 19.99 --cogs 3.5
  fba-cost batch catalog.hcl --save
  fba-cost history list --unprofitable`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	logging.Sync()
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch errors.TypeOf(err) {
	case errors.TypeInput, errors.TypeParsing:
		return 2
	case errors.TypeNotFound:
		return 3
	case errors.TypeConfig:
		return 4
	default:
		return 1
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fba-cost/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(4)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	logging.Debug("configuration loaded", zap.String("path", path))
}

// newEngine builds an engine with the configured defaults
func newEngine() *engine.Engine {
	return engine.New(engine.WithDefaults(config.Get().EngineDefaults()))
}

// format is the --format flag, falling back to the configured default
func format() string {
	if outputFormat != "" {
		return outputFormat
	}
	return config.Get().Output.DefaultFormat
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fba-cost version %s\n", Version)
	},
}
