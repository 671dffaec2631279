package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/logger"
	"sahamindo-chatbot/internal/trace"
	"sahamindo-chatbot/internal/types"
)

const (
	// Templates match the transcript language of the bot: Indonesian.
	notFoundTemplate    = "Maaf, saya tidak menemukan data untuk saham `%s` pada tanggal `%s`."
	analystPromptPrefix = "Interpretasikan data saham berikut sebagai analis: \n"
	analysisUnavailable = "_Maaf, analisis tidak tersedia saat ini._"
	quoteFetchFailed    = "Maaf, terjadi kesalahan saat mengambil data saham. Silakan coba lagi."
	generateFailed      = "Maaf, terjadi kesalahan saat memproses pertanyaan Anda. Silakan coba lagi."
	sectionSeparator    = "\n\n"
	quoteDateLayout     = "2006-01-02"
)

// Composer orchestrates the classifier, the quote provider, and the language
// model to produce one assistant reply per user message.
type Composer struct {
	quotes     interfaces.QuoteProvider
	llm        interfaces.Generator
	windowDays int
}

func NewComposer(quotes interfaces.QuoteProvider, llm interfaces.Generator, windowDays int) *Composer {
	return &Composer{quotes: quotes, llm: llm, windowDays: windowDays}
}

// Compose handles one conversation turn. It appends exactly one user turn
// before composing and exactly one assistant turn after, on every path;
// collaborator failures surface as inline notes in the reply, never as an
// aborted turn.
func (c *Composer) Compose(ctx context.Context, text string, sess *Session) string {
	ctx, span := trace.StartSpan(ctx, "chat.Compose")
	defer span.End()

	// Prior turns are captured before this message joins the transcript so
	// the free-form prompt is not duplicated into its own context.
	prior := sess.HistoryTexts()
	sess.AppendUser(text)

	var reply string
	if q := Classify(text); q != nil {
		logger.Debug(ctx, "Structured price query detected", "symbol", q.Symbol, "date", q.Date)
		reply = c.composeStructured(ctx, q, sess)
	} else {
		logger.Debug(ctx, "Free-form message, delegating to language model")
		reply = c.composeFreeForm(ctx, text, prior)
	}

	sess.AppendAssistant(reply)
	return reply
}

// composeStructured resolves a symbol+date query to a data section and asks
// the model for analyst commentary on top of it.
func (c *Composer) composeStructured(ctx context.Context, q *types.StructuredQuery, sess *Session) string {
	date, err := time.Parse(quoteDateLayout, q.Date)
	if err != nil {
		// Lexically valid but not a calendar date ("2025-13-40"); there is
		// no data to find for it.
		logger.Warn(ctx, "Query date is not a calendar date", "symbol", q.Symbol, "date", q.Date)
		return fmt.Sprintf(notFoundTemplate, q.Symbol, q.Date)
	}

	// Fetch a window around the requested date; the windowed series feeds
	// charting downstream, the textual reply still needs the exact day.
	start, end := date, date
	if c.windowDays > 0 {
		start = date.AddDate(0, 0, -c.windowDays)
		end = date.AddDate(0, 0, c.windowDays)
	}

	records, err := c.quotes.Fetch(ctx, q.Symbol, start, end)
	if err != nil {
		logger.ErrorWithErr(ctx, "Quote provider failed", err, "symbol", q.Symbol, "date", q.Date)
		return quoteFetchFailed
	}

	record, ok := exactDate(records, date)
	if !ok {
		return fmt.Sprintf(notFoundTemplate, q.Symbol, q.Date)
	}

	dataSection := formatQuote(q.Symbol, q.Date, record)

	analysis, err := c.llm.Generate(ctx, analystPromptPrefix+dataSection, sess.HistoryTexts())
	if err != nil {
		// Degrade to the data section; the numbers are already verified.
		logger.ErrorWithErr(ctx, "Analyst commentary failed", err, "symbol", q.Symbol)
		return dataSection + sectionSeparator + analysisUnavailable
	}

	return dataSection + sectionSeparator + analysis
}

// composeFreeForm forwards the raw message to the language model.
func (c *Composer) composeFreeForm(ctx context.Context, text string, prior []string) string {
	reply, err := c.llm.Generate(ctx, text, prior)
	if err != nil {
		logger.ErrorWithErr(ctx, "Language model call failed", err)
		return generateFailed
	}
	return reply
}

// exactDate picks the record matching the requested calendar day out of a
// possibly windowed series.
func exactDate(records []types.QuoteRecord, date time.Time) (types.QuoteRecord, bool) {
	for _, r := range records {
		if sameDay(r.Date, date) {
			return r, true
		}
	}
	return types.QuoteRecord{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// formatQuote renders the fixed data section: prices to two decimals, volume
// as a plain integer.
func formatQuote(symbol, date string, r types.QuoteRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Harga saham **%s** pada **%s**:\n", symbol, date)
	fmt.Fprintf(&b, "- Open: %.2f\n", r.Open)
	fmt.Fprintf(&b, "- High: %.2f\n", r.High)
	fmt.Fprintf(&b, "- Low: %.2f\n", r.Low)
	fmt.Fprintf(&b, "- Close: %.2f\n", r.Close)
	fmt.Fprintf(&b, "- Volume: %d", r.Volume)
	return b.String()
}
