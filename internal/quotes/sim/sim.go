package sim

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/types"
)

// Provider generates simulated OHLCV data. Records are deterministic per
// symbol and day, so a single-day fetch and a windowed fetch around the same
// date agree on that date's record.
type Provider struct{}

var _ interfaces.QuoteProvider = (*Provider)(nil)

func New() *Provider {
	return &Provider{}
}

const dateLayout = "2006-01-02"

func (p *Provider) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]types.QuoteRecord, error) {
	if end.Before(start) {
		return nil, nil
	}

	base := basePrice(symbol)
	records := make([]types.QuoteRecord, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		records = append(records, dayRecord(symbol, d, base))
	}
	return records, nil
}

// basePrice derives a stable reference price for a symbol from its name.
func basePrice(symbol string) float64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return 100 + float64(h.Sum64()%9900)
}

// dayRecord builds one deterministic OHLCV record seeded by symbol and day.
func dayRecord(symbol string, day time.Time, base float64) types.QuoteRecord {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte(day.Format(dateLayout)))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	open := base * (1 + (rng.Float64()-0.5)*0.06)
	close := open * (1 + (rng.Float64()-0.5)*0.04)
	high := open
	if close > high {
		high = close
	}
	high *= 1 + rng.Float64()*0.02
	low := open
	if close < low {
		low = close
	}
	low *= 1 - rng.Float64()*0.02

	return types.QuoteRecord{
		Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: 100_000 + rng.Int63n(5_000_000),
	}
}
