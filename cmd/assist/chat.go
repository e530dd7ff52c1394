package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/usecase/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Start an interactive chat session.

Commands inside the chat:
  :history   toggle saving the transcript
  :show      print the transcript
  :quit      leave`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	a.session.SetObserver(func(s chat.State) {
		if s.Pending {
			fmt.Fprintln(out, "… thinking")
		}
	})

	if msgs := a.session.Messages(); len(msgs) > 0 {
		fmt.Fprintf(out, "Restored %d messages.\n", len(msgs))
	}
	fmt.Fprintln(out, "Ask me about Anuj's experience, skills or projects. Type :quit to leave.")

	return repl(ctx, a.session, cmd.InOrStdin(), out)
}

func repl(ctx context.Context, session *chat.Service, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case ":quit", ":q":
			return nil
		case ":history":
			if session.ToggleSaveHistory(ctx) {
				fmt.Fprintln(out, "Chat history will be saved.")
			} else {
				fmt.Fprintln(out, "Chat history will no longer be saved.")
			}
			continue
		case ":show":
			printTranscript(out, session.Messages())
			continue
		}

		session.SetInput(line)
		turn, err := session.SendInput(ctx)
		switch {
		case errors.Is(err, domain.ErrEmptyMessage):
			fmt.Fprintln(out, "Please type a question first.")
		case errors.Is(err, domain.ErrRequestPending):
			fmt.Fprintln(out, "Still answering the previous question.")
		case err != nil:
			fmt.Fprintf(out, "Error: %s\n", session.State().Error)
		default:
			fmt.Fprintf(out, "[%s] %s\n", turn.Reply.Time, turn.Reply.Content)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func printTranscript(out io.Writer, msgs []domain.Message) {
	if len(msgs) == 0 {
		fmt.Fprintln(out, "No messages yet.")
		return
	}
	for _, m := range msgs {
		who := "you"
		if m.Role == domain.RoleAssistant {
			who = "assistant"
		}
		fmt.Fprintf(out, "[%s] %s: %s\n", m.Time, who, m.Content)
	}
}
