package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLM struct {
		Provider    string  `yaml:"provider"` // GEMINI, OPENAI, or NOOP
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
		System      string  `yaml:"system"`
	} `yaml:"llm"`
	Quotes struct {
		Source          string `yaml:"source"` // SIM, YAHOO, or IDX
		WindowDays      int    `yaml:"window_days"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
		IDXSummaryURL   string `yaml:"idx_summary_url"`
	} `yaml:"quotes"`
	Chat struct {
		Greeting string `yaml:"greeting"`
	} `yaml:"chat"`
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "GEMINI", "OPENAI", "NOOP", "":
	default:
		return fmt.Errorf("invalid llm.provider '%s': must be 'GEMINI', 'OPENAI', or 'NOOP'", c.LLM.Provider)
	}
	switch c.Quotes.Source {
	case "SIM", "YAHOO", "IDX":
	default:
		return fmt.Errorf("invalid quotes.source '%s': must be 'SIM', 'YAHOO', or 'IDX'", c.Quotes.Source)
	}
	if c.Quotes.WindowDays < 0 || c.Quotes.WindowDays > 30 {
		return fmt.Errorf("quotes.window_days must be between 0-30, got %d", c.Quotes.WindowDays)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Quotes.Source == "" {
		c.Quotes.Source = "SIM"
	}
	if c.Quotes.WindowDays == 0 {
		c.Quotes.WindowDays = 7
	}
	if c.Quotes.TimeoutSeconds == 0 {
		c.Quotes.TimeoutSeconds = 15
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "GEMINI":
			c.LLM.Model = "gemini-2.5-flash"
		case "OPENAI":
			c.LLM.Model = "gpt-4o-mini"
		}
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1024
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
