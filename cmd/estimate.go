package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toonlab/toonbench/internal/compare"
	"github.com/toonlab/toonbench/internal/encoding"
	"github.com/toonlab/toonbench/internal/prompt"
	"github.com/toonlab/toonbench/internal/tokens"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

var (
	estimateDataset  string
	estimateQuestion string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate prompt-token reduction locally, without any API call",
	Long:  "Tokenizes both full prompts with cl100k_base and reports the estimated prompt-token and input-cost reduction. Counts approximate the service's own tokenizer; use compare for billed numbers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(estimateDataset)
		if err != nil {
			return err
		}

		calc, err := newCalculator(cfg.Pricing)
		if err != nil {
			return err
		}

		counter, err := tokens.NewCounter()
		if err != nil {
			return err
		}

		question := resolveQuestion(estimateQuestion)

		counts := make(map[encoding.Kind]int64, 2)
		costs := make(map[encoding.Kind]float64, 2)
		for _, kind := range []encoding.Kind{encoding.KindJSON, encoding.KindTOON} {
			p, err := encoding.Encode(ds, kind)
			if err != nil {
				return err
			}
			req := prompt.Build(question, p)
			n := int64(counter.Count(req.System) + counter.Count(req.User))
			counts[kind] = n
			costs[kind] = calc.Estimate(azopenai.Usage{PromptTokens: n, TotalTokens: n})
		}

		promptRed := compare.ReductionOf(float64(counts[encoding.KindJSON]), float64(counts[encoding.KindTOON]))
		costRed := compare.ReductionOf(costs[encoding.KindJSON], costs[encoding.KindTOON])

		w := os.Stdout
		fmt.Fprintln(w, "==================== LOCAL ESTIMATE (cl100k_base) ====================")
		fmt.Fprintf(w, "JSON prompt tokens     : %d\n", counts[encoding.KindJSON])
		fmt.Fprintf(w, "TOON prompt tokens     : %d\n", counts[encoding.KindTOON])
		fmt.Fprintf(w, "JSON input cost (est.) : $%.6f\n", costs[encoding.KindJSON])
		fmt.Fprintf(w, "TOON input cost (est.) : $%.6f\n", costs[encoding.KindTOON])
		fmt.Fprintf(w, "Prompt token reduction : %s\n", promptRed)
		fmt.Fprintf(w, "Input cost reduction   : %s\n", costRed)
		fmt.Fprintln(w, "======================================================================")
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVar(&estimateDataset, "dataset", "", "path to a JSON or YAML dataset (default: built-in sample)")
	estimateCmd.Flags().StringVar(&estimateQuestion, "question", "", "analytical question to embed in both prompts")
	rootCmd.AddCommand(estimateCmd)
}
