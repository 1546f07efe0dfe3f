package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toonlab/toonbench/internal/compare"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

var (
	compareDataset  string
	compareQuestion string
	compareParallel bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run both variants against the live deployment and report reductions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Fail fast on bad settings before anything touches the network.
		if err := cfg.Validate(); err != nil {
			return err
		}

		calc, err := newCalculator(cfg.Pricing)
		if err != nil {
			return err
		}

		ds, err := loadDataset(compareDataset)
		if err != nil {
			return err
		}

		client := azopenai.NewClient(azopenai.Config{
			Endpoint:   cfg.Azure.Endpoint,
			APIKey:     cfg.Azure.APIKey,
			APIVersion: cfg.Azure.APIVersion,
			Deployment: cfg.Azure.Deployment,
		})

		runner := &compare.Runner{
			Client:       client,
			Calc:         calc,
			Question:     resolveQuestion(compareQuestion),
			PreviewChars: cfg.Prompt.PreviewChars,
			Parallel:     compareParallel,
		}

		zap.L().Info("starting comparison",
			zap.String("deployment", cfg.Azure.Deployment),
			zap.Bool("parallel", compareParallel),
		)

		res, err := runner.Run(ctx, ds)
		if err != nil {
			return eris.Wrap(err, "comparison run")
		}

		compare.Render(os.Stdout, res, fmt.Sprintf("%s on Azure", cfg.Azure.Model))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareDataset, "dataset", "", "path to a JSON or YAML dataset (default: built-in sample)")
	compareCmd.Flags().StringVar(&compareQuestion, "question", "", "analytical question to ask both variants")
	compareCmd.Flags().BoolVar(&compareParallel, "parallel", false, "run the two variants concurrently")
	rootCmd.AddCommand(compareCmd)
}
