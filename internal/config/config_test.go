package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "default", cfg.Plan.Philosophy)
	require.Equal(t, 5, cfg.Plan.DaysPerWeek)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[plan]
philosophy = "polarized"
days_per_week = 6
long_run_day = "saturday"
pace_min_per_mile = 8.5

[llm]
provider = "openai"
timeout_seconds = 10
anthropic_model = "claude-sonnet"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel())
	require.Equal(t, "polarized", cfg.Plan.Philosophy)
	require.Equal(t, 6, cfg.Plan.DaysPerWeek)
	require.Equal(t, "saturday", cfg.Plan.LongRunDay)
	require.Equal(t, 8.5, cfg.Plan.PaceMinPerMile)
}

func TestLoad_RejectsUnknownPhilosophy(t *testing.T) {
	path := writeConfig(t, `
[plan]
philosophy = "secret-sauce"
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "unknown philosophy")
}

func TestLoad_RejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `[plan`)
	_, err := Load(path)
	require.ErrorContains(t, err, "parse config")
}

func TestValidate_DaysPerWeekRange(t *testing.T) {
	cfg := Default()
	cfg.Plan.DaysPerWeek = 3
	require.Error(t, cfg.Validate())

	cfg.Plan.DaysPerWeek = 7
	require.NoError(t, cfg.Validate())
}

func TestAdvisoryConfig_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
[llm]
provider = "openai"
timeout_seconds = 10
rate_per_minute = 5
openai_model = "gpt-4o"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	adv := cfg.AdvisoryConfig()
	require.Equal(t, "openai", adv.Provider)
	require.Equal(t, 10*time.Second, adv.Timeout)
	require.Equal(t, 5, adv.RatePerMinute)
	require.Equal(t, "gpt-4o", adv.OpenAI.Model)

	// Environment wins over the file.
	t.Setenv("PACELINE_LLM_PROVIDER", "anthropic")
	adv = cfg.AdvisoryConfig()
	require.Equal(t, "anthropic", adv.Provider)
	require.Equal(t, 10*time.Second, adv.Timeout)
}

func TestLogLevel_DefaultsToInfo(t *testing.T) {
	require.Equal(t, slog.LevelInfo, Config{}.LogLevel())
}
