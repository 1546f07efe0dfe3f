package compare

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the console report: one block per variant, then the summary
// with the three reduction figures. modelLabel names the deployment in the
// header.
func Render(w io.Writer, res *Result, modelLabel string) {
	fmt.Fprintf(w, "\n==================== JSON vs TOON (%s) ====================\n", modelLabel)

	renderRun(w, res.JSON)
	renderRun(w, res.TOON)

	fmt.Fprintln(w, "\n======================== COMPARISON SUMMARY ========================")
	fmt.Fprintf(w, "Prompt token reduction : %s\n", res.PromptReduction)
	fmt.Fprintf(w, "Total token reduction  : %s\n", res.TotalReduction)
	fmt.Fprintf(w, "Cost reduction (est.)  : %s\n", res.CostReduction)
	fmt.Fprintln(w, "===================================================================")
	fmt.Fprintln(w, "\nNote: pricing numbers are approximate. Set pricing.input_per_1k and pricing.output_per_1k to match your actual contract.")
}

func renderRun(w io.Writer, r RunResult) {
	fmt.Fprintf(w, "\n--- %s INPUT ---\n", strings.ToUpper(string(r.Mode)))
	fmt.Fprintf(w, "Prompt tokens    : %d\n", r.Usage.PromptTokens)
	fmt.Fprintf(w, "Completion tokens: %d\n", r.Usage.CompletionTokens)
	fmt.Fprintf(w, "Total tokens     : %d\n", r.Usage.TotalTokens)
	fmt.Fprintf(w, "Estimated cost   : $%.6f\n", r.Cost)
	if r.Preview != "" {
		fmt.Fprintln(w, "Sample output    :")
		fmt.Fprintln(w, r.Preview)
	}
}
