package main

import (
	"github.com/toonlab/toonbench/internal/config"
	"github.com/toonlab/toonbench/internal/cost"
	"github.com/toonlab/toonbench/internal/dataset"
)

// loadDataset returns the dataset at path, or the built-in sample when no
// path is given.
func loadDataset(path string) (dataset.Dataset, error) {
	if path == "" {
		return dataset.Sample(), nil
	}
	return dataset.Load(path)
}

// newCalculator builds the cost calculator from the pricing configuration.
func newCalculator(p config.PricingConfig) (*cost.Calculator, error) {
	return cost.NewCalculator(cost.Pricing{
		InputPer1K:  p.InputPer1K,
		OutputPer1K: p.OutputPer1K,
	})
}

// resolveQuestion picks the analytical question: flag over config file over
// the built-in default (applied downstream when empty).
func resolveQuestion(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Prompt.Question
}
