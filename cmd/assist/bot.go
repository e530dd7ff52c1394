package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio-assistant/internal/adapter/telegram"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve the assistant as a Telegram bot",
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	bot, err := telegram.NewBot(a.cfg, a.session)
	if err != nil {
		return err
	}

	if err := bot.Run(ctx); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown", "reason", err)
			return nil
		}
		return err
	}
	return nil
}
