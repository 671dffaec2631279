package noop

import (
	"context"

	"sahamindo-chatbot/internal/logger"
)

// Generator is a fallback used when no language-model provider is configured.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate implements the Generator interface with a fixed reply so the
// chatbot stays usable for structured price queries.
func (g *Generator) Generate(ctx context.Context, prompt string, history []string) (string, error) {
	logger.Debug(ctx, "Noop generator called", "prompt_len", len(prompt), "history", len(history))
	return "Maaf, layanan bahasa belum dikonfigurasi. Saya tetap bisa menjawab " +
		"pertanyaan berpola \"Harga <KODE> pada <YYYY-MM-DD>\".", nil
}
