package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toonlab/toonbench/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "toonbench",
	Short: "Measure token and cost savings of TOON vs JSON prompt payloads",
	Long:  "Builds equivalent structured-data payloads in JSON and TOON notation, sends equivalent chat requests to an Azure OpenAI deployment, and reports token-usage and cost reductions of TOON relative to JSON.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		_ = godotenv.Load()

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
