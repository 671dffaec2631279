package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"sahamindo-chatbot/internal/chat"
	"sahamindo-chatbot/internal/interfaces"
	"sahamindo-chatbot/internal/llm/gemini"
	"sahamindo-chatbot/internal/llm/llmobs"
	"sahamindo-chatbot/internal/llm/noop"
	"sahamindo-chatbot/internal/llm/openai"
	"sahamindo-chatbot/internal/logger"
	"sahamindo-chatbot/internal/quotes/cache"
	"sahamindo-chatbot/internal/quotes/idx"
	"sahamindo-chatbot/internal/quotes/quotesobs"
	"sahamindo-chatbot/internal/quotes/sim"
	"sahamindo-chatbot/internal/quotes/yahoo"
	"sahamindo-chatbot/internal/store"
	"sahamindo-chatbot/internal/trace"
)

// initializeSystem initializes the logger and tracer.
func initializeSystem() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// loadConfig loads and returns the configuration.
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// ensureAPIKey makes sure the configured language-model provider has a
// credential before any turn is processed, prompting interactively when the
// environment does not carry one.
func ensureAPIKey(ctx context.Context, cfg *store.Config) error {
	var envKey, label string
	switch cfg.LLM.Provider {
	case "GEMINI":
		envKey, label = "GEMINI_API_KEY", "Gemini"
	case "OPENAI":
		envKey, label = "OPENAI_API_KEY", "OpenAI"
	default:
		return nil
	}

	if os.Getenv(envKey) != "" {
		return nil
	}

	var key string
	prompt := &survey.Password{Message: fmt.Sprintf("Masukkan %s API Key:", label)}
	if err := survey.AskOne(prompt, &key, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if err := os.Setenv(envKey, key); err != nil {
		return err
	}
	logger.Info(ctx, "API key supplied interactively", "provider", cfg.LLM.Provider)
	return nil
}

// initializeQuotes builds the quote provider chain configured by
// quotes.source, wrapped with caching and observability.
func initializeQuotes(ctx context.Context, cfg *store.Config) interfaces.QuoteProvider {
	timeout := time.Duration(cfg.Quotes.TimeoutSeconds) * time.Second

	var provider interfaces.QuoteProvider
	switch cfg.Quotes.Source {
	case "YAHOO":
		logger.Info(ctx, "Using Yahoo Finance chart API for quotes")
		provider = yahoo.New(timeout)
	case "IDX":
		logger.Info(ctx, "Using IDX daily summary scrape for quotes", "url", cfg.Quotes.IDXSummaryURL)
		provider = idx.New(cfg.Quotes.IDXSummaryURL, timeout)
	default:
		logger.Info(ctx, "Using simulated quote data")
		provider = sim.New()
	}

	if ttl := time.Duration(cfg.Quotes.CacheTTLSeconds) * time.Second; ttl > 0 {
		provider = cache.Wrap(provider, ttl)
	}

	return quotesobs.Wrap(provider)
}

// initializeGenerator builds the language-model client with observability.
func initializeGenerator(ctx context.Context, cfg *store.Config) interfaces.Generator {
	var gen interfaces.Generator
	switch cfg.LLM.Provider {
	case "GEMINI":
		gen = gemini.New(cfg)
	case "OPENAI":
		gen = openai.New(cfg)
	default:
		gen = noop.New()
		logger.Warn(ctx, "No LLM provider configured - free-form questions get a canned reply")
	}
	return llmobs.Wrap(gen)
}

// initializeComposer wires the classifier, quote provider, and generator into
// the per-turn reply composer.
func initializeComposer(ctx context.Context, cfg *store.Config) *chat.Composer {
	quotes := initializeQuotes(ctx, cfg)
	gen := initializeGenerator(ctx, cfg)
	return chat.NewComposer(quotes, gen, cfg.Quotes.WindowDays)
}
