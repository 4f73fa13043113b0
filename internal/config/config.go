package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/abhisek/paceline/internal/llm"
	"github.com/abhisek/paceline/internal/plan"
)

// Config is the application configuration, loaded from a TOML file with
// environment variables layered on top. A missing file is not an error:
// everything has a usable default.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Plan      PlanConfig      `toml:"plan"`
	Templates TemplatesConfig `toml:"templates"`
	LLM       LLMConfig       `toml:"llm"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// PlanConfig carries the default planning parameters applied when command
// line flags leave them unset.
type PlanConfig struct {
	Philosophy     string  `toml:"philosophy"`
	DaysPerWeek    int     `toml:"days_per_week"`
	LongRunDay     string  `toml:"long_run_day"`
	PaceMinPerMile float64 `toml:"pace_min_per_mile"`
}

// TemplatesConfig points at an alternate template library. Empty means the
// embedded seed library.
type TemplatesConfig struct {
	Path string `toml:"path"`
}

// LLMConfig configures the advisory provider. API keys are never read from
// the file; they come from the environment only.
type LLMConfig struct {
	Provider       string `toml:"provider"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	RatePerMinute  int    `toml:"rate_per_minute"`
	AnthropicModel string `toml:"anthropic_model"`
	OpenAIModel    string `toml:"openai_model"`
	OpenAIBaseURL  string `toml:"openai_base_url"`
	GeminiModel    string `toml:"gemini_model"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Plan: PlanConfig{
			Philosophy:     "default",
			DaysPerWeek:    5,
			LongRunDay:     "sunday",
			PaceMinPerMile: 10.0,
		},
	}
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file yields the defaults without error; a file
// that exists but does not parse or validate is an error.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location in priority order:
// 1. PACELINE_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/paceline/config.toml
// 3. ~/.config/paceline/config.toml
func DefaultPath() (string, error) {
	if p := os.Getenv("PACELINE_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "paceline", "config.toml"), nil
}

// Validate checks the file-sourced values that have constrained domains.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if _, ok := plan.PhilosophyByID(c.Plan.Philosophy); !ok {
		return fmt.Errorf("unknown philosophy %q", c.Plan.Philosophy)
	}
	if c.Plan.LongRunDay != "" {
		if _, ok := plan.ParseWeekday(c.Plan.LongRunDay); !ok {
			return fmt.Errorf("unknown long run day %q", c.Plan.LongRunDay)
		}
	}
	if c.Plan.DaysPerWeek != 0 && (c.Plan.DaysPerWeek < 4 || c.Plan.DaysPerWeek > 7) {
		return fmt.Errorf("days per week must be between 4 and 7, got %d", c.Plan.DaysPerWeek)
	}
	if c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("negative advisory timeout %d", c.LLM.TimeoutSeconds)
	}
	return nil
}

// LogLevel converts the configured level to a slog.Level.
func (c Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AdvisoryConfig resolves the advisory provider configuration: library
// defaults, then file values, then environment variables on top. API keys
// only ever come from the environment.
func (c Config) AdvisoryConfig() llm.Config {
	cfg := llm.DefaultConfig()

	if c.LLM.Provider != "" {
		cfg.Provider = c.LLM.Provider
	}
	if c.LLM.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.LLM.TimeoutSeconds) * time.Second
	}
	if c.LLM.RatePerMinute > 0 {
		cfg.RatePerMinute = c.LLM.RatePerMinute
	}
	if c.LLM.AnthropicModel != "" {
		cfg.Anthropic.Model = c.LLM.AnthropicModel
	}
	if c.LLM.OpenAIModel != "" {
		cfg.OpenAI.Model = c.LLM.OpenAIModel
	}
	if c.LLM.OpenAIBaseURL != "" {
		cfg.OpenAI.BaseURL = c.LLM.OpenAIBaseURL
	}
	if c.LLM.GeminiModel != "" {
		cfg.Gemini.Model = c.LLM.GeminiModel
	}

	return llm.ApplyEnv(cfg)
}
