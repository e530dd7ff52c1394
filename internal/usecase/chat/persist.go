package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"portfolio-assistant/internal/domain"
)

// persister mirrors the transcript into the store after a quiet period.
// Rapid mutations coalesce into one write of the latest transcript.
type persister struct {
	store  domain.KeyValueStore
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending []domain.Message
	dirty   bool
}

func newPersister(store domain.KeyValueStore, delay time.Duration, logger *slog.Logger) *persister {
	return &persister{
		store:  store,
		delay:  delay,
		logger: logger,
	}
}

func (p *persister) schedule(msgs []domain.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = slices.Clone(msgs)
	p.dirty = true

	if p.timer == nil {
		p.timer = time.AfterFunc(p.delay, p.flush)
		return
	}
	p.timer.Reset(p.delay)
}

// cancel drops a scheduled write without touching what is already stored.
func (p *persister) cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.pending = nil
	p.dirty = false
}

func (p *persister) flush() {
	p.mu.Lock()
	if !p.dirty {
		p.mu.Unlock()
		return
	}
	msgs := p.pending
	p.pending = nil
	p.dirty = false
	p.mu.Unlock()

	if msgs == nil {
		msgs = []domain.Message{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		p.logger.Error("encode transcript", "error", err)
		return
	}
	if err := p.store.Set(context.Background(), domain.KeyChatHistory, string(data)); err != nil {
		p.logger.Error("persist transcript", "error", err)
		return
	}
	p.logger.Debug("transcript persisted", "messages", len(msgs))
}

func (p *persister) close() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.mu.Unlock()
	p.flush()
}
