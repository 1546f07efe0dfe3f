// Package compare runs the JSON and TOON variants and reports reductions.
package compare

import (
	"fmt"

	"github.com/toonlab/toonbench/internal/encoding"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

// RunResult holds the usage and estimated cost of one completed variant.
type RunResult struct {
	Mode    encoding.Kind
	Usage   azopenai.Usage
	Cost    float64
	Preview string
}

// Reduction is a percentage reduction of TOON relative to JSON. It is
// undefined when the JSON-side value is zero.
type Reduction struct {
	Pct     float64
	Defined bool
}

// String renders the reduction for the report, or "N/A" when undefined.
func (r Reduction) String() string {
	if !r.Defined {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", r.Pct)
}

// Result aggregates both runs plus the derived reductions. It is assembled
// only after both runs have succeeded.
type Result struct {
	JSON RunResult
	TOON RunResult

	PromptReduction Reduction
	TotalReduction  Reduction
	CostReduction   Reduction
}

// Compare derives the three reduction figures from two completed runs.
// Negative reductions are preserved: TOON coming out larger or costlier than
// JSON for a given dataset shape is a valid, informative outcome.
func Compare(jsonRes, toonRes RunResult) *Result {
	return &Result{
		JSON:            jsonRes,
		TOON:            toonRes,
		PromptReduction: ReductionOf(float64(jsonRes.Usage.PromptTokens), float64(toonRes.Usage.PromptTokens)),
		TotalReduction:  ReductionOf(float64(jsonRes.Usage.TotalTokens), float64(toonRes.Usage.TotalTokens)),
		CostReduction:   ReductionOf(jsonRes.Cost, toonRes.Cost),
	}
}

// ReductionOf computes (jsonVal - toonVal) / jsonVal * 100, undefined when
// jsonVal is zero.
func ReductionOf(jsonVal, toonVal float64) Reduction {
	if jsonVal == 0 {
		return Reduction{}
	}
	return Reduction{
		Pct:     (jsonVal - toonVal) / jsonVal * 100,
		Defined: true,
	}
}
