package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/profile"
)

type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ReadmeFetcher returns a repository's README text. A false result means no
// document is available, whatever the cause.
type ReadmeFetcher interface {
	FetchReadme(ctx context.Context, owner, repo string) (string, bool)
}

type CompletionRequest struct {
	Model       string
	Messages    []domain.Message
	MaxTokens   int
	Temperature float32
}

type Service struct {
	id       string
	store    domain.KeyValueStore
	client   Client
	readmes  ReadmeFetcher
	profile  profile.Profile
	projects []Project
	cfg      config.Config
	now      func() time.Time
	logger   *slog.Logger
	persist  *persister

	mu          sync.Mutex
	messages    []domain.Message
	input       string
	pending     bool
	errMsg      string
	saveHistory bool
	turn        Turn
	observer    func(State)
}

// NewService creates a session. When the store says history saving was left
// on, the saved transcript is restored; an unreadable transcript is dropped.
func NewService(
	ctx context.Context,
	store domain.KeyValueStore,
	client Client,
	readmes ReadmeFetcher,
	prof profile.Profile,
	cfg config.Config,
) *Service {
	id := uuid.NewString()
	logger := slog.Default().With("session_id", id)

	s := &Service{
		id:       id,
		store:    store,
		client:   client,
		readmes:  readmes,
		profile:  prof,
		projects: DefaultProjects(),
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
		persist:  newPersister(store, cfg.PersistDebounce, logger),
	}

	flag, ok, err := store.Get(ctx, domain.KeySaveHistory)
	if err != nil {
		logger.Warn("read history flag", "error", err)
	}
	s.saveHistory = ok && flag == "true"
	if s.saveHistory {
		s.messages = s.rehydrate(ctx)
	}

	return s
}

func (s *Service) ID() string {
	return s.id
}

// SetObserver registers fn to receive a snapshot after every state change.
func (s *Service) SetObserver(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = fn
}

func (s *Service) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()
	s.notify()
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Service) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

func (s *Service) SaveHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveHistory
}

// SendInput sends the buffered input.
func (s *Service) SendInput(ctx context.Context) (Turn, error) {
	s.mu.Lock()
	text := s.input
	s.mu.Unlock()
	return s.SendMessage(ctx, text)
}

// SendMessage appends text to the transcript, asks the completion client for
// a reply and appends it. It returns ErrEmptyMessage or ErrRequestPending
// without touching any state. A completion failure is returned and recorded
// as the session error; the user message stays.
func (s *Service) SendMessage(ctx context.Context, text string) (Turn, error) {
	if strings.TrimSpace(text) == "" {
		return Turn{}, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		s.logger.Debug("send rejected, request in flight")
		return Turn{}, domain.ErrRequestPending
	}
	s.pending = true
	s.errMsg = ""
	turn := Turn{
		Phase: PhasePending,
		User:  domain.NewMessage(domain.RoleUser, text, s.now()),
	}
	s.messages = append(s.messages, turn.User)
	s.turn = turn
	window := s.windowLocked()
	s.mirrorLocked()
	s.mu.Unlock()
	s.notify()

	messages, project := s.buildRequest(ctx, text, window)
	turn.Project = project
	s.logger.Debug("sending chat request",
		"project", project,
		"history_window", len(window),
		"messages", len(messages),
	)

	reply, err := s.client.Complete(ctx, CompletionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})

	s.mu.Lock()
	if err != nil {
		turn.Phase = PhaseFailed
		turn.Err = err
		s.errMsg = err.Error()
		s.logger.Warn("chat request failed", "error", err)
	} else {
		turn.Phase = PhaseSucceeded
		turn.Reply = domain.NewMessage(domain.RoleAssistant, reply, s.now())
		s.messages = append(s.messages, turn.Reply)
		s.mirrorLocked()
	}
	s.pending = false
	s.input = ""
	s.turn = turn
	s.mu.Unlock()
	s.notify()

	return turn, err
}

// ToggleSaveHistory flips history saving and returns the new value. Stored
// data is never touched here: turning it on mirrors from the next transcript
// mutation, turning it off drops a write that has not happened yet.
func (s *Service) ToggleSaveHistory(ctx context.Context) bool {
	s.mu.Lock()
	s.saveHistory = !s.saveHistory
	on := s.saveHistory
	if !on {
		s.persist.cancel()
	}
	s.mu.Unlock()

	if err := s.store.Set(ctx, domain.KeySaveHistory, strconv.FormatBool(on)); err != nil {
		s.logger.Error("write history flag", "error", err)
	}
	s.logger.Info("history saving toggled", "enabled", on)
	s.notify()

	return on
}

// Close flushes a pending transcript write.
func (s *Service) Close() {
	s.persist.close()
}

func (s *Service) buildRequest(ctx context.Context, text string, window []domain.Message) ([]domain.Message, string) {
	messages := make([]domain.Message, 0, len(window)+2)
	messages = append(messages, domain.Message{
		Role:    domain.RoleSystem,
		Content: profile.BuildSystemPrompt(s.profile),
	})
	messages = append(messages, window...)

	project, ok := DetectProject(text, s.projects)
	if !ok {
		return messages, ""
	}

	messages = append(messages, domain.Message{
		Role:    domain.RoleUser,
		Content: s.projectPrompt(ctx, project),
	})
	return messages, project.Name
}

func (s *Service) projectPrompt(ctx context.Context, project Project) string {
	if s.readmes != nil {
		readme, ok := s.readmes.FetchReadme(ctx, project.Owner, project.Repo)
		if ok && readme != "" {
			doc, truncated := truncate(readme, s.cfg.MaxReadmeChars)
			prompt := SummaryInstruction(s.profile)
			if truncated {
				prompt += "\n" + TruncationNotice
			}
			return prompt + "\n\n" + doc
		}
	}

	s.logger.Info("readme unavailable, using profile description", "project", project.Name)
	proj, ok := s.profile.Lookup(project.ProfileKey)
	if !ok {
		return "Explain the project " + project.Name + "."
	}
	return profile.ProjectBrief(project.Name, proj)
}

func (s *Service) rehydrate(ctx context.Context) []domain.Message {
	raw, ok, err := s.store.Get(ctx, domain.KeyChatHistory)
	if err != nil {
		s.logger.Warn("read saved transcript", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var saved []domain.Message
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Warn("discarding unreadable transcript", "error", err)
		return nil
	}

	messages := make([]domain.Message, 0, len(saved))
	for _, m := range saved {
		if !domain.ValidRole(m.Role) {
			s.logger.Warn("discarding transcript with unknown role", "role", m.Role)
			return nil
		}
		if m.Role == domain.RoleSystem {
			continue
		}
		messages = append(messages, m)
	}
	s.logger.Info("transcript restored", "messages", len(messages))
	return messages
}

func (s *Service) windowLocked() []domain.Message {
	start := len(s.messages) - s.cfg.HistoryWindow
	if start < 0 || s.cfg.HistoryWindow <= 0 {
		start = 0
	}
	return slices.Clone(s.messages[start:])
}

func (s *Service) mirrorLocked() {
	if s.saveHistory {
		s.persist.schedule(s.messages)
	}
}

func (s *Service) stateLocked() State {
	return State{
		Messages:    slices.Clone(s.messages),
		Input:       s.input,
		Pending:     s.pending,
		Error:       s.errMsg,
		SaveHistory: s.saveHistory,
		Turn:        s.turn,
	}
}

func (s *Service) notify() {
	s.mu.Lock()
	fn := s.observer
	state := s.stateLocked()
	s.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}
