package cost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonlab/toonbench/internal/config"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

func TestEstimate(t *testing.T) {
	t.Parallel()
	calc, err := NewCalculator(DefaultPricing())
	require.NoError(t, err)

	tests := []struct {
		name       string
		prompt     int64
		completion int64
		want       float64
	}{
		{
			name:   "reference arithmetic",
			prompt: 538, completion: 265,
			// (538/1000)*0.00275 + (265/1000)*0.011
			want: 0.0044945,
		},
		{
			name:   "toon side of reference scenario",
			prompt: 364, completion: 207,
			want: (364.0/1000)*0.00275 + (207.0/1000)*0.011,
		},
		{
			name: "zero tokens cost nothing",
			want: 0,
		},
		{
			name:   "prompt only",
			prompt: 1000,
			want:   0.00275,
		},
		{
			name:       "completion only",
			completion: 1000,
			want:       0.011,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := calc.Estimate(azopenai.Usage{
				PromptTokens:     tt.prompt,
				CompletionTokens: tt.completion,
				TotalTokens:      tt.prompt + tt.completion,
			})
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEstimate_FullPrecision(t *testing.T) {
	t.Parallel()
	calc, err := NewCalculator(Pricing{InputPer1K: 0.0000013, OutputPer1K: 0.0000071})
	require.NoError(t, err)

	got := calc.Estimate(azopenai.Usage{PromptTokens: 7, CompletionTokens: 3})
	want := (7.0/1000)*0.0000013 + (3.0/1000)*0.0000071
	assert.Equal(t, want, got, "estimator must not round internally")
}

func TestNewCalculator_RejectsBadPricing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pricing   Pricing
		wantField string
	}{
		{"negative input", Pricing{InputPer1K: -0.01, OutputPer1K: 0.011}, "pricing.input_per_1k"},
		{"negative output", Pricing{InputPer1K: 0.00275, OutputPer1K: -1}, "pricing.output_per_1k"},
		{"nan input", Pricing{InputPer1K: math.NaN(), OutputPer1K: 0.011}, "pricing.input_per_1k"},
		{"inf output", Pricing{InputPer1K: 0.00275, OutputPer1K: math.Inf(1)}, "pricing.output_per_1k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCalculator(tt.pricing)
			require.Error(t, err)

			var cerr *config.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantField, cerr.Field)
		})
	}
}

func TestNewCalculator_ZeroPricingAllowed(t *testing.T) {
	t.Parallel()
	calc, err := NewCalculator(Pricing{})
	require.NoError(t, err)
	assert.Zero(t, calc.Estimate(azopenai.Usage{PromptTokens: 100, CompletionTokens: 100}))
}
