package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"sahamindo-chatbot/internal/httpx"
	"sahamindo-chatbot/internal/store"
	"sahamindo-chatbot/internal/trace"
)

type Generator struct {
	cfg    *store.Config
	client *httpx.Client
}

func New(cfg *store.Config) *Generator {
	return &Generator{cfg: cfg, client: httpx.New(60 * time.Second)}
}

func (g *Generator) Generate(ctx context.Context, prompt string, history []string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY missing")
	}

	messages := []map[string]string{}
	if g.cfg.LLM.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": g.cfg.LLM.System})
	}
	user := prompt
	if len(history) > 0 {
		user = strings.Join(append(append([]string{}, history...), prompt), "\n")
	}
	messages = append(messages, map[string]string{"role": "user", "content": user})

	body := map[string]any{
		"model":       g.cfg.LLM.Model,
		"messages":    messages,
		"temperature": g.cfg.LLM.Temperature,
		"max_tokens":  g.cfg.LLM.MaxTokens,
	}
	bb, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bb))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}

	return strings.TrimSpace(r.Choices[0].Message.Content), nil
}
