package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sd-housing-lab/sdhd/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sdhd",
	Short: "San Diego homelessness data toolkit",
	Long:  "Materializes San Diego homelessness datasets (shelters, point-in-time counts, evictions) to disk and reports descriptive statistics over them.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
