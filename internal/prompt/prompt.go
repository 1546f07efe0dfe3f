// Package prompt builds the chat requests for the two comparison runs.
package prompt

import (
	"strings"

	"github.com/toonlab/toonbench/internal/encoding"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

// SystemInstruction is the fixed system message used by every run.
const SystemInstruction = "You are a concise, expert real estate analyst."

// DefaultQuestion is the analytical question asked of both variants when the
// caller does not supply one.
const DefaultQuestion = `1. Identify the top 2 listings for this buyer.
2. For each, explain briefly why it is a strong match.
3. Briefly mention any listings to avoid and why.

Respond in 3-5 bullet points, concise and professional.`

const preamble = "You are an AI assistant helping a real estate team evaluate condo listings for a buyer."

// toonBasics primes the model on the notation; models see far less TOON than
// JSON in training data.
const toonBasics = `TOON basics:
- Indentation indicates nesting (like YAML).
- Lines like ` + "`listings[4]{field1,field2,...}:`" + ` declare an array of objects.
- Each subsequent indented line is a row with comma-separated values in that field order.`

// Build assembles the chat request for one encoded payload. It is a pure
// function: the system instruction and question are identical across the two
// variants, and only the payload block (format note, data label, encoded
// text) differs.
func Build(question string, p encoding.Payload) azopenai.ChatRequest {
	if question == "" {
		question = DefaultQuestion
	}

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")
	b.WriteString(formatNote(p.Kind))
	b.WriteString("\n\n")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(dataLabel(p.Kind))
	b.WriteString(":\n")
	b.WriteString(p.Text)

	return azopenai.ChatRequest{
		System:      SystemInstruction,
		User:        b.String(),
		Temperature: 0,
	}
}

func formatNote(kind encoding.Kind) string {
	if kind == encoding.KindTOON {
		return "You will receive property and buyer data in TOON format (Token-Oriented Object Notation).\n\n" + toonBasics
	}
	return "You will receive property and buyer data in JSON format."
}

func dataLabel(kind encoding.Kind) string {
	return strings.ToUpper(string(kind)) + " DATA"
}
