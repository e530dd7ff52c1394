package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"portfolio-assistant/internal/adapter/filestore"
	"portfolio-assistant/internal/adapter/github"
	"portfolio-assistant/internal/adapter/memory"
	"portfolio-assistant/internal/adapter/openai"
	"portfolio-assistant/internal/adapter/sqlite"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/profile"
	"portfolio-assistant/internal/usecase/chat"
)

var (
	envFile     string
	profilePath string
	storeDriver string
	storePath   string
	jsonLogs    bool
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "assist",
		Short: "Portfolio assistant - ask questions about Anuj's work",
		Long: `assist answers questions about Anuj Chaudhari's experience, skills and projects.

Questions naming a project (EMS, URLShortener, ImgEnhancer, SCSDB) are answered
from the project's GitHub README when it is available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Dotenv file to read before the environment")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML profile overriding the built-in one")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "State store: file, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "State file or database path")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Log as JSON")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(botCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// app is one wired session and what must be released with it.
type app struct {
	cfg     config.Config
	session *chat.Service
	closers []io.Closer
}

func (a *app) Close() {
	a.session.Close()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			slog.Warn("close", "error", err)
		}
	}
}

func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if storeDriver != "" {
		cfg.StoreDriver = storeDriver
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if profilePath != "" {
		cfg.ProfilePath = profilePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(logOut, cfg.SlogLevel(), jsonLogs)

	prof := profile.Default()
	if cfg.ProfilePath != "" {
		prof, err = profile.Load(cfg.ProfilePath)
		if err != nil {
			return nil, err
		}
	}

	a := &app{cfg: cfg}
	store, err := openStore(cfg, a)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(cfg.APIKey, cfg.BaseURL, cfg.HTTPTimeout)
	readmes := github.NewFetcher(cfg.GitHubAPIURL,
		github.WithToken(cfg.GitHubToken),
		github.WithStripHTML(cfg.ReadmeStripHTML),
		github.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	a.session = chat.NewService(ctx, store, client, readmes, prof, cfg)
	slog.Debug("session ready", "session_id", a.session.ID(), "store", cfg.StoreDriver)
	return a, nil
}

func openStore(cfg config.Config, a *app) (domain.KeyValueStore, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.NewStore(), nil
	case "sqlite":
		path := cfg.StorePath
		if path == config.Defaults().StorePath {
			path = ".assist/state.db"
		}
		s, err := sqlite.NewStore(path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s)
		return s, nil
	default:
		s, err := filestore.NewStore(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func setupLogging(w io.Writer, level slog.Level, asJSON bool) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
