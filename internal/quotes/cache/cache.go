package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/types"
)

// entry stores fetched records for one symbol+range with expiry.
type entry struct {
	expiresAt time.Time
	records   []types.QuoteRecord
}

// Provider caches quote lookups for a TTL so repeated questions about the
// same symbol and date do not re-hit the backing source.
type Provider struct {
	P   interfaces.QuoteProvider
	TTL time.Duration

	mu    sync.RWMutex
	items map[string]entry
}

var _ interfaces.QuoteProvider = (*Provider)(nil)

func Wrap(p interfaces.QuoteProvider, ttl time.Duration) *Provider {
	return &Provider{P: p, TTL: ttl, items: map[string]entry{}}
}

func (c *Provider) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]types.QuoteRecord, error) {
	if c.TTL <= 0 {
		return c.P.Fetch(ctx, symbol, start, end)
	}

	key := cacheKey(symbol, start, end)
	now := time.Now()

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if ok && now.Before(e.expiresAt) {
		return e.records, nil
	}

	records, err := c.P.Fetch(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[key] = entry{expiresAt: now.Add(c.TTL), records: records}
	c.mu.Unlock()

	return records, nil
}

func cacheKey(symbol string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
}
