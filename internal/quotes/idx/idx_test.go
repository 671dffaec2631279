package idx

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

func TestFetchOutsideSnapshotDay(t *testing.T) {
	t.Parallel()

	// The summary page only covers the current trading day; any other range
	// must answer empty without touching the network.
	p := New("http://127.0.0.1:0/unreachable", time.Second)
	p.now = func() time.Time { return day("2025-09-10") }

	records, err := p.Fetch(context.Background(), "BBCA", day("2025-09-01"), day("2025-09-08"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"9.450":     9450,
		"1.234.567": 1234567,
		"101,23":    101.23,
		"9.450,50":  9450.5,
		"450000":    450000,
		"":          0,
		"tidak-ada": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseNumber(in), "input %q", in)
	}
}
