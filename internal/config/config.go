package config

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIKey      string  `env:"GROQ_API_KEY"`
	Model       string  `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	BaseURL     string  `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	MaxTokens   int     `env:"MAX_TOKENS" envDefault:"1024"`
	Temperature float32 `env:"TEMPERATURE" envDefault:"0.7"`

	GitHubToken     string        `env:"GITHUB_TOKEN"`
	GitHubAPIURL    string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	ReadmeStripHTML bool          `env:"README_STRIP_HTML" envDefault:"false"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	HistoryWindow   int           `env:"HISTORY_WINDOW" envDefault:"6"`
	MaxReadmeChars  int           `env:"MAX_README_CHARS" envDefault:"15000"`
	PersistDebounce time.Duration `env:"PERSIST_DEBOUNCE" envDefault:"500ms"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"file"`
	StorePath   string `env:"STORE_PATH" envDefault:".assist/state.json"`
	ProfilePath string `env:"PROFILE_PATH"`

	TelegramToken  string  `env:"TELEGRAM_BOT_TOKEN"`
	AdminUserIDs   []int64 `env:"ADMIN_USER_IDS" envSeparator:","`
	AllowedUserIDs []int64 `env:"ALLOWED_TELEGRAM_USER_IDS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional dotenv file at path, then the process environment.
// Variables already set in the environment win over the file.
func Load(path string) (Config, error) {
	if err := loadDotEnv(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "path", path, "error", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Defaults returns the configuration with every variable unset.
func Defaults() Config {
	var cfg Config
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

func (c Config) Validate() error {
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("HISTORY_WINDOW must be positive, got %d", c.HistoryWindow)
	}
	if c.MaxReadmeChars <= 0 {
		return fmt.Errorf("MAX_README_CHARS must be positive, got %d", c.MaxReadmeChars)
	}
	if c.PersistDebounce < 0 {
		return fmt.Errorf("PERSIST_DEBOUNCE must not be negative, got %s", c.PersistDebounce)
	}
	switch c.StoreDriver {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) IsAllowedUser(userID int64) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}

	if len(c.AllowedUserIDs) == 0 {
		return true
	}

	for _, id := range c.AllowedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}

func loadDotEnv(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, val)
		}
	}
	return scanner.Err()
}

func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	val = strings.Trim(strings.TrimSpace(val), `"'`)
	if key == "" {
		return "", "", false
	}
	return key, val, true
}
