// Package tokens provides local token counting for offline estimates.
package tokens

import (
	"github.com/rotisserie/eris"
	"github.com/tiktoken-go/tokenizer"
)

// Counter counts tokens with a tiktoken encoding. Counts match what the
// service bills only approximately; the compare command reports measured
// usage, this backs the offline estimate path.
type Counter struct {
	enc tokenizer.Codec
}

// NewCounter creates a counter using the cl100k_base encoding.
func NewCounter() (*Counter, error) {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, eris.Wrap(err, "tokens: load encoding")
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	ids, _, _ := c.enc.Encode(text)
	return len(ids)
}
