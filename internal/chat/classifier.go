package chat

import (
	"regexp"
	"strings"

	"sahamindo-chatbot/internal/types"
)

// priceQueryRe matches the single supported structured intent:
// "Harga <TICKER> pada <YYYY-MM-DD>". Case-insensitive. The date is checked
// lexically only; whether data exists for it is the quote provider's call.
var priceQueryRe = regexp.MustCompile(`(?i)harga\s+([A-Za-z0-9]+)\s+pada\s+(\d{4}-\d{2}-\d{2})`)

// Classify inspects a raw user message and extracts a structured price query
// if the message matches the fixed template. Returns nil for free-form input.
// This is deliberately one narrow pattern, not an NLU layer.
func Classify(text string) *types.StructuredQuery {
	m := priceQueryRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &types.StructuredQuery{
		Symbol: strings.ToUpper(m[1]),
		Date:   m[2],
	}
}
