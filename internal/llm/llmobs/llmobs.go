package llmobs

import (
	"context"

	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/logger"
	"sahamindo-chatbot/internal/trace"
)

// observableGenerator wraps a Generator with logging and tracing.
type observableGenerator struct {
	gen interfaces.Generator
}

// Compile-time interface check
var _ interfaces.Generator = (*observableGenerator)(nil)

// Wrap wraps a generator with observability middleware.
func Wrap(gen interfaces.Generator) interfaces.Generator {
	return &observableGenerator{gen: gen}
}

func (og *observableGenerator) Generate(ctx context.Context, prompt string, history []string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Generate")
	defer span.End()

	// Skip(1) so logs report the actual caller, not this middleware
	logger.DebugSkip(ctx, 1, "Requesting completion",
		"prompt_len", len(prompt),
		"history_turns", len(history),
	)

	reply, err := og.gen.Generate(ctx, prompt, history)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Completion failed", err, "prompt_len", len(prompt))
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Completion received", "reply_len", len(reply))
	return reply, nil
}
