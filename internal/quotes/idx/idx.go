package idx

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/logger"
	"sahamindo-chatbot/internal/types"
)

// DefaultSummaryURL points at a public daily stock-summary table for the
// Indonesia Stock Exchange.
const DefaultSummaryURL = "https://www.idx.co.id/primary/TradingSummary/GetStockSummary"

// Provider scrapes the exchange's daily summary page. The page is a snapshot
// of one trading day, so a fetch only yields a record when that day falls
// inside the requested range.
type Provider struct {
	summaryURL string
	timeout    time.Duration

	// now is replaceable in tests; the snapshot carries no usable date of
	// its own and is stamped with the current trading day.
	now func() time.Time
}

var _ interfaces.QuoteProvider = (*Provider)(nil)

func New(summaryURL string, timeout time.Duration) *Provider {
	if summaryURL == "" {
		summaryURL = DefaultSummaryURL
	}
	return &Provider{summaryURL: summaryURL, timeout: timeout, now: time.Now}
}

func (p *Provider) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]types.QuoteRecord, error) {
	today := p.now()
	snapshot := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if snapshot.Before(start) || snapshot.After(end) {
		// The summary page can only answer for today.
		return nil, nil
	}

	rows, err := p.scrapeSummary(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if strings.EqualFold(row.code, symbol) {
			return []types.QuoteRecord{{
				Date:   snapshot,
				Open:   row.open,
				High:   row.high,
				Low:    row.low,
				Close:  row.close,
				Volume: row.volume,
			}}, nil
		}
	}
	return nil, nil
}

type summaryRow struct {
	code                   string
	open, high, low, close float64
	volume                 int64
}

// scrapeSummary pulls the summary table and parses one row per listed symbol.
// Expected cell order: code, name, previous, open, high, low, close, volume.
func (p *Provider) scrapeSummary(ctx context.Context) ([]summaryRow, error) {
	rows := []summaryRow{}

	c := colly.NewCollector(colly.MaxDepth(1))
	c.SetRequestTimeout(p.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("table tbody tr", func(e *colly.HTMLElement) {
		cells := e.DOM.Find("td").Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		})
		if len(cells) < 8 {
			return
		}
		code := strings.ToUpper(cells[0])
		if code == "" {
			return
		}
		rows = append(rows, summaryRow{
			code:   code,
			open:   parseNumber(cells[3]),
			high:   parseNumber(cells[4]),
			low:    parseNumber(cells[5]),
			close:  parseNumber(cells[6]),
			volume: int64(parseNumber(cells[7])),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Summary page scrape error", err, "url", p.summaryURL)
	})

	if err := c.Visit(p.summaryURL); err != nil {
		return nil, err
	}
	c.Wait()

	return rows, nil
}

// parseNumber handles Indonesian-formatted numbers: dots as thousand
// separators, comma as the decimal mark.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
