package llm

import (
	"os"
	"strconv"
	"time"
)

// Config holds advisory provider configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig

	// Timeout bounds one advisory call end to end. The compiler makes a
	// single attempt inside this window and then falls back.
	Timeout time.Duration

	// RatePerMinute caps advisory calls across a whole compile run.
	// Zero disables the limiter.
	RatePerMinute int
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL overrides the
// endpoint for OpenRouter and other compatible gateways.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:      "anthropic",
		Anthropic:     AnthropicConfig{Model: "claude-haiku"},
		OpenAI:        OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:        GeminiConfig{Model: "gemini-flash"},
		Timeout:       20 * time.Second,
		RatePerMinute: 30,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays environment variables onto an existing Config. Set
// variables win over whatever the base carries, so env keys take precedence
// over file-sourced configuration.
func ApplyEnv(cfg Config) Config {
	if p := os.Getenv("PACELINE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("PACELINE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("PACELINE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("PACELINE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("PACELINE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if t := os.Getenv("PACELINE_LLM_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if r := os.Getenv("PACELINE_LLM_RATE_PER_MINUTE"); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n >= 0 {
			cfg.RatePerMinute = n
		}
	}

	return cfg
}
