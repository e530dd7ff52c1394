package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// unsetForTest clears key for the duration of the test and restores it after.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Model != "llama-3.1-8b-instant" {
		t.Errorf("got model %q", cfg.Model)
	}
	if cfg.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("got base url %q", cfg.BaseURL)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("got max tokens %d, want 1024", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("got temperature %v, want 0.7", cfg.Temperature)
	}
	if cfg.HistoryWindow != 6 {
		t.Errorf("got history window %d, want 6", cfg.HistoryWindow)
	}
	if cfg.MaxReadmeChars != 15000 {
		t.Errorf("got max readme chars %d, want 15000", cfg.MaxReadmeChars)
	}
	if cfg.PersistDebounce != 500*time.Millisecond {
		t.Errorf("got debounce %s", cfg.PersistDebounce)
	}
	if cfg.StoreDriver != "file" {
		t.Errorf("got store driver %q", cfg.StoreDriver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_DotEnvAndEnvironment(t *testing.T) {
	for _, key := range []string{"GROQ_API_KEY", "GROQ_MODEL", "HISTORY_WINDOW", "ALLOWED_TELEGRAM_USER_IDS"} {
		unsetForTest(t, key)
	}
	t.Setenv("GROQ_MODEL", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	data := `# comment
export GROQ_API_KEY="gsk_test"
GROQ_MODEL=from-file
HISTORY_WINDOW=4
ALLOWED_TELEGRAM_USER_IDS=1,2
not a pair
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIKey != "gsk_test" {
		t.Errorf("got api key %q", cfg.APIKey)
	}
	if cfg.Model != "from-env" {
		t.Errorf("environment should win over file, got %q", cfg.Model)
	}
	if cfg.HistoryWindow != 4 {
		t.Errorf("got history window %d", cfg.HistoryWindow)
	}
	if len(cfg.AllowedUserIDs) != 2 || cfg.AllowedUserIDs[1] != 2 {
		t.Errorf("got allowed ids %v", cfg.AllowedUserIDs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing dotenv should not fail: %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MAX_TOKENS", "lots")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.HistoryWindow = 0 }},
		{"zero readme budget", func(c *Config) { c.MaxReadmeChars = 0 }},
		{"negative debounce", func(c *Config) { c.PersistDebounce = -time.Second }},
		{"unknown driver", func(c *Config) { c.StoreDriver = "redis" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Defaults()
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("got %v", cfg.SlogLevel())
	}

	cfg.LogLevel = "debug"
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("got %v", cfg.SlogLevel())
	}

	cfg.LogLevel = "chatty"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("unknown level should fall back to info, got %v", cfg.SlogLevel())
	}
}

func TestIsAllowedUser(t *testing.T) {
	cfg := Defaults()
	if !cfg.IsAllowedUser(42) {
		t.Error("empty allow list should allow everyone")
	}

	cfg.AllowedUserIDs = []int64{1}
	cfg.AdminUserIDs = []int64{9}
	if cfg.IsAllowedUser(42) {
		t.Error("user outside allow list was allowed")
	}
	if !cfg.IsAllowedUser(1) || !cfg.IsAllowedUser(9) {
		t.Error("allowed user or admin was rejected")
	}
}

func TestParseEnvLine(t *testing.T) {
	key, val, ok := parseEnvLine(`export KEY='value=with=equals'`)
	if !ok || key != "KEY" || val != "value=with=equals" {
		t.Errorf("got %q %q %v", key, val, ok)
	}

	if _, _, ok := parseEnvLine("=value"); ok {
		t.Error("empty key should be rejected")
	}
}
