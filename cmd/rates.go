package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adspend/internal/adapter/file"
	"adspend/internal/config"
)

func ratesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the rate card in effect as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := file.LoadRateCard(cfg.RateCard.File)
			if err != nil {
				return fmt.Errorf("load rate card: %w", err)
			}
			return file.EncodeRateCard(cmd.OutOrStdout(), card.Entries())
		},
	}
}
