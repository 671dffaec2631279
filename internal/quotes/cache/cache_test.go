package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahamindo-chatbot/internal/types"
)

type countingProvider struct {
	calls   int
	records []types.QuoteRecord
	err     error
}

func (p *countingProvider) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]types.QuoteRecord, error) {
	p.calls++
	return p.records, p.err
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestFetchCachesPerRange(t *testing.T) {
	t.Parallel()

	backing := &countingProvider{records: []types.QuoteRecord{{Date: day("2025-09-01"), Close: 99.87}}}
	c := Wrap(backing, time.Minute)

	first, err := c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	second, err := c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, backing.calls, "second fetch should be served from cache")

	// A different range misses the cache.
	_, err = c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-02"))
	require.NoError(t, err)
	assert.Equal(t, 2, backing.calls)
}

func TestFetchErrorNotCached(t *testing.T) {
	t.Parallel()

	backing := &countingProvider{err: errors.New("boom")}
	c := Wrap(backing, time.Minute)

	_, err := c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.Error(t, err)
	_, err = c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.Error(t, err)

	assert.Equal(t, 2, backing.calls, "errors must not be cached")
}

func TestFetchZeroTTLPassthrough(t *testing.T) {
	t.Parallel()

	backing := &countingProvider{}
	c := Wrap(backing, 0)

	for i := 0; i < 3; i++ {
		_, err := c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, backing.calls)
}

func TestFetchExpiry(t *testing.T) {
	t.Parallel()

	backing := &countingProvider{}
	c := Wrap(backing, 50*time.Millisecond)

	_, err := c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = c.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	assert.Equal(t, 2, backing.calls, "expired entries must refetch")
}
