package telegram

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/usecase/chat"
)

const (
	chunkSize = 2048

	greeting     = "Hi! Ask me anything about Anuj's experience, skills or projects."
	busyNotice   = "still working on your previous question, please wait"
	emptyNotice  = "i need some text to work with"
	failedNotice = "failed to reach the assistant, try again later"
)

// Sender is the part of the Telegram API the bot needs to reply.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot relays Telegram messages to one chat session.
type Bot struct {
	api    *tgbotapi.BotAPI
	sender Sender
	cfg    config.Config
	chat   *chat.Service
	logger *slog.Logger
}

func NewBot(cfg config.Config, chatSvc *chat.Service) (*Bot, error) {
	if cfg.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:    api,
		sender: api,
		cfg:    cfg,
		chat:   chatSvc,
		logger: slog.Default().With("component", "telegram", "session_id", chatSvc.ID()),
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.logger.Info("bot started", "username", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !b.cfg.IsAllowedUser(msg.From.ID) {
		b.logger.Info("access denied", "user_id", msg.From.ID)
		b.sendText(msg.Chat.ID, msg.MessageID, "access denied")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.ask(ctx, msg, msg.Text, false)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.sendText(msg.Chat.ID, msg.MessageID, greeting)
	case "history":
		if b.chat.ToggleSaveHistory(ctx) {
			b.sendText(msg.Chat.ID, msg.MessageID, "chat history will be saved")
		} else {
			b.sendText(msg.Chat.ID, msg.MessageID, "chat history will no longer be saved")
		}
	case "file":
		b.ask(ctx, msg, msg.CommandArguments(), true)
	default:
		b.sendText(msg.Chat.ID, msg.MessageID, "unknown command")
	}
}

func (b *Bot) ask(ctx context.Context, msg *tgbotapi.Message, text string, asFile bool) {
	b.sendChatAction(msg.Chat.ID, asFile)

	turn, err := b.chat.SendMessage(ctx, text)
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		b.sendText(msg.Chat.ID, msg.MessageID, emptyNotice)
		return
	case errors.Is(err, domain.ErrRequestPending):
		b.sendText(msg.Chat.ID, msg.MessageID, busyNotice)
		return
	case err != nil:
		b.logger.Error("chat request failed", "error", err)
		b.sendText(msg.Chat.ID, msg.MessageID, failedNotice)
		return
	}

	reply := turn.Reply.Content
	if asFile || shouldSendAsFile(reply) {
		if err := b.sendAsFile(msg.Chat.ID, msg.MessageID, reply); err != nil {
			b.logger.Error("failed to send file", "error", err)
			b.sendText(msg.Chat.ID, msg.MessageID, "could not send file, here is the text")
			b.sendText(msg.Chat.ID, msg.MessageID, reply)
		}
		return
	}

	b.sendText(msg.Chat.ID, msg.MessageID, reply)
}

func (b *Bot) sendText(chatID int64, replyTo int, text string) {
	chunks := splitText(text, chunkSize)
	for idx, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if idx == 0 {
			msg.ReplyToMessageID = replyTo
		}
		if _, err := b.sender.Send(msg); err != nil {
			b.logger.Error("failed to send reply", "error", err)
		}
	}
}

func (b *Bot) sendChatAction(chatID int64, asFile bool) {
	action := tgbotapi.ChatTyping
	if asFile {
		action = tgbotapi.ChatUploadDocument
	}
	if _, err := b.sender.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		b.logger.Warn("failed to send chat action", "error", err)
	}
}

func (b *Bot) sendAsFile(chatID int64, replyTo int, content string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "response.md",
		Bytes: []byte(content),
	})
	doc.ReplyToMessageID = replyTo

	_, err := b.sender.Send(doc)
	return err
}

func shouldSendAsFile(text string) bool {
	return len([]rune(text)) > chunkSize
}

func splitText(text string, size int) []string {
	if size <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
