package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adspend/internal/config"
)

// newRootCmd assembles the adspend command tree. Configuration is read from
// the environment once, before any subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		cfg          config.Config
		rateCardFile string
	)
	root := &cobra.Command{
		Use:   "adspend",
		Short: "Compute advertising expenditure from impressions and CPM rate cards",
		Long: `adspend prices ad impressions on Instagram, Facebook and LinkedIn.

Expenditure for each record is impressions * CPM / 1000, with the CPM taken
from the rate card for the record's platform and ad type.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if rateCardFile != "" {
				loaded.RateCard.File = rateCardFile
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&rateCardFile, "ratecard", "", "YAML rate card file (overrides RATECARD_FILE)")

	root.AddCommand(serveCmd(&cfg))
	root.AddCommand(computeCmd(&cfg))
	root.AddCommand(ratesCmd(&cfg))
	root.AddCommand(migrateCmd(&cfg))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
