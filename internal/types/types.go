package types

import "time"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Immutable once created.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// StructuredQuery is a parsed "Harga <symbol> pada <date>" request.
// Date keeps the matched substring verbatim for display.
type StructuredQuery struct {
	Symbol string
	Date   string
}

// QuoteRecord is one day of OHLCV data for a symbol.
type QuoteRecord struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}
