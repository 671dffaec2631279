package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestFetchRange(t *testing.T) {
	t.Parallel()

	p := New()
	records, err := p.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-07"))
	require.NoError(t, err)
	require.Len(t, records, 7)

	for i, r := range records {
		assert.GreaterOrEqual(t, r.High, r.Open, "record %d", i)
		assert.GreaterOrEqual(t, r.High, r.Close, "record %d", i)
		assert.LessOrEqual(t, r.Low, r.Open, "record %d", i)
		assert.LessOrEqual(t, r.Low, r.Close, "record %d", i)
		assert.Positive(t, r.Volume, "record %d", i)
		if i > 0 {
			assert.True(t, r.Date.After(records[i-1].Date), "records must ascend by date")
		}
	}
}

func TestFetchDeterministic(t *testing.T) {
	t.Parallel()

	p := New()
	a, err := p.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	b, err := p.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	require.Len(t, a, 1)
	assert.Equal(t, a, b, "same symbol and day must yield the same record")
}

func TestFetchWindowAgreesWithSingleDay(t *testing.T) {
	t.Parallel()

	// The exact-date record must not depend on where the window starts.
	p := New()
	single, err := p.Fetch(context.Background(), "TLKM", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	require.Len(t, single, 1)

	window, err := p.Fetch(context.Background(), "TLKM", day("2025-08-25"), day("2025-09-08"))
	require.NoError(t, err)
	require.Len(t, window, 15)
	assert.Equal(t, single[0], window[7])
}

func TestFetchSymbolsDiffer(t *testing.T) {
	t.Parallel()

	p := New()
	a, err := p.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	b, err := p.Fetch(context.Background(), "TLKM", day("2025-09-01"), day("2025-09-01"))
	require.NoError(t, err)
	assert.NotEqual(t, a[0].Close, b[0].Close, "different symbols should not share a price path")
}

func TestFetchEmptyRange(t *testing.T) {
	t.Parallel()

	p := New()
	records, err := p.Fetch(context.Background(), "BBCA", day("2025-09-02"), day("2025-09-01"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
