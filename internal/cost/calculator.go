// Package cost estimates the monetary cost of completion requests.
package cost

import (
	"fmt"
	"math"

	"github.com/toonlab/toonbench/internal/config"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

// Pricing holds per-1K-token prices in USD. Values come from configuration,
// defaulted but overridable per run.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// DefaultPricing returns demo pricing for a gpt-4o Azure deployment. Actual
// contract pricing varies by region and agreement.
func DefaultPricing() Pricing {
	return Pricing{InputPer1K: 0.00275, OutputPer1K: 0.011}
}

// Calculator computes estimated costs for token usage.
type Calculator struct {
	pricing Pricing
}

// NewCalculator creates a Calculator after validating the pricing. Negative
// or non-finite prices are rejected.
func NewCalculator(p Pricing) (*Calculator, error) {
	if err := validatePrice("pricing.input_per_1k", p.InputPer1K); err != nil {
		return nil, err
	}
	if err := validatePrice("pricing.output_per_1k", p.OutputPer1K); err != nil {
		return nil, err
	}
	return &Calculator{pricing: p}, nil
}

func validatePrice(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &config.ConfigError{Field: field, Reason: fmt.Sprintf("must be finite, got %v", v)}
	}
	if v < 0 {
		return &config.ConfigError{Field: field, Reason: fmt.Sprintf("must be >= 0, got %v", v)}
	}
	return nil
}

// Estimate computes the estimated USD cost of one request. No rounding:
// formatting is left to the report renderer.
func (c *Calculator) Estimate(u azopenai.Usage) float64 {
	return (float64(u.PromptTokens)/1000.0)*c.pricing.InputPer1K +
		(float64(u.CompletionTokens)/1000.0)*c.pricing.OutputPer1K
}
