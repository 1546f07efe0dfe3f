package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonlab/toonbench/internal/cost"
	"github.com/toonlab/toonbench/internal/encoding"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

func TestReductionOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		jsonVal float64
		toonVal float64
		wantPct float64
		wantDef bool
	}{
		{"typical saving", 100, 75, 25, true},
		{"no change", 100, 100, 0, true},
		{"toon larger is negative, not clamped", 100, 130, -30, true},
		{"json zero is undefined", 0, 50, 0, false},
		{"both zero is undefined", 0, 0, 0, false},
		{"toon zero", 80, 0, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ReductionOf(tt.jsonVal, tt.toonVal)
			assert.Equal(t, tt.wantDef, got.Defined)
			if tt.wantDef {
				assert.InDelta(t, tt.wantPct, got.Pct, 1e-9)
			}
		})
	}
}

func TestReductionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "32.34%", Reduction{Pct: 32.342, Defined: true}.String())
	assert.Equal(t, "-30.00%", Reduction{Pct: -30, Defined: true}.String())
	assert.Equal(t, "N/A", Reduction{}.String())
}

// Reference scenario: JSON {538, 265, 803} vs TOON {364, 207, 571} at
// default pricing.
func TestCompare_ReferenceScenario(t *testing.T) {
	t.Parallel()

	calc, err := cost.NewCalculator(cost.DefaultPricing())
	require.NoError(t, err)

	jsonUsage := azopenai.Usage{PromptTokens: 538, CompletionTokens: 265, TotalTokens: 803}
	toonUsage := azopenai.Usage{PromptTokens: 364, CompletionTokens: 207, TotalTokens: 571}

	res := Compare(
		RunResult{Mode: encoding.KindJSON, Usage: jsonUsage, Cost: calc.Estimate(jsonUsage)},
		RunResult{Mode: encoding.KindTOON, Usage: toonUsage, Cost: calc.Estimate(toonUsage)},
	)

	require.True(t, res.PromptReduction.Defined)
	require.True(t, res.TotalReduction.Defined)
	require.True(t, res.CostReduction.Defined)

	assert.InDelta(t, 32.34, res.PromptReduction.Pct, 0.01)
	assert.InDelta(t, 28.89, res.TotalReduction.Pct, 0.01)
	assert.InDelta(t, 27.07, res.CostReduction.Pct, 0.01)
}

func TestCompare_ZeroJSONSideIsUndefined(t *testing.T) {
	t.Parallel()

	res := Compare(
		RunResult{Mode: encoding.KindJSON},
		RunResult{Mode: encoding.KindTOON, Usage: azopenai.Usage{PromptTokens: 10, TotalTokens: 10}},
	)

	assert.False(t, res.PromptReduction.Defined)
	assert.False(t, res.TotalReduction.Defined)
	assert.False(t, res.CostReduction.Defined)
	assert.Equal(t, "N/A", res.PromptReduction.String())
}
