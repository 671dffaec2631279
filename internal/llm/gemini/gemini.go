package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"sahamindo-chatbot/internal/httpx"
	"sahamindo-chatbot/internal/store"
	"sahamindo-chatbot/internal/trace"
)

// Generator implements the Generator interface using the Gemini API.
type Generator struct {
	cfg      *store.Config
	client   *httpx.Client
	endpoint string
}

// New creates a Gemini-backed generator. The endpoint can be overridden via
// GEMINI_API_ENDPOINT for proxies.
func New(cfg *store.Config) *Generator {
	endpoint := "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	if ep := os.Getenv("GEMINI_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &Generator{
		cfg:      cfg,
		client:   httpx.New(60 * time.Second),
		endpoint: endpoint,
	}
}

type generateRequest struct {
	Contents []content         `json:"contents"`
	Config   *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt, prefixed by the prior turn texts, to Gemini and
// returns the reply text.
func (g *Generator) Generate(ctx context.Context, prompt string, history []string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "gemini-api-call")
	defer span.End()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", errors.New("GEMINI_API_KEY missing")
	}

	// History is flattened into one prompt, oldest turn first.
	full := strings.Join(append(append([]string{}, history...), prompt), "\n")

	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: full}}}},
	}
	if g.cfg.LLM.Temperature > 0 || g.cfg.LLM.MaxTokens > 0 {
		reqBody.Config = &generationConfig{
			Temperature:     g.cfg.LLM.Temperature,
			MaxOutputTokens: g.cfg.LLM.MaxTokens,
		}
	}

	bb, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := g.endpoint
	if strings.Contains(url, "%s") {
		url = fmt.Sprintf(url, g.cfg.LLM.Model)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bb))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(body))
	}

	var r generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if r.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", r.Error.Code, r.Error.Message)
	}
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	out := strings.TrimSpace(r.Candidates[0].Content.Parts[0].Text)
	if out == "" {
		return "", errors.New("gemini returned empty text")
	}
	return out, nil
}
