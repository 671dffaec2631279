package interfaces

import (
	"context"
	"time"

	"sahamindo-chatbot/internal/types"
)

type QuoteProvider interface {
	// Fetch returns OHLCV records for symbol between start and end inclusive,
	// ascending by date. An empty slice means no data for the range.
	Fetch(ctx context.Context, symbol string, start, end time.Time) ([]types.QuoteRecord, error)
}
