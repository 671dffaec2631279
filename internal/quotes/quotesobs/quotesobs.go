package quotesobs

import (
	"context"
	"time"

	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/logger"
	"sahamindo-chatbot/internal/trace"
	"sahamindo-chatbot/internal/types"
)

// observableProvider wraps a QuoteProvider with logging and tracing.
type observableProvider struct {
	p interfaces.QuoteProvider
}

// Compile-time interface check
var _ interfaces.QuoteProvider = (*observableProvider)(nil)

// Wrap wraps a quote provider with observability middleware.
func Wrap(p interfaces.QuoteProvider) interfaces.QuoteProvider {
	return &observableProvider{p: p}
}

func (op *observableProvider) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]types.QuoteRecord, error) {
	ctx, span := trace.StartSpan(ctx, "quotes.Fetch")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching quotes",
		"symbol", symbol,
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
	)

	records, err := op.p.Fetch(ctx, symbol, start, end)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Quote fetch failed", err, "symbol", symbol)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Quotes fetched", "symbol", symbol, "count", len(records))
	return records, nil
}
