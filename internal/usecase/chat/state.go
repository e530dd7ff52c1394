package chat

import "portfolio-assistant/internal/domain"

// Phase is the stage a turn has reached.
type Phase int

const (
	// PhaseIdle: no message has been sent yet.
	PhaseIdle Phase = iota
	// PhasePending: the user message is in the transcript and the request is in flight.
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Turn is one send: the optimistic user entry and, once settled, its outcome.
type Turn struct {
	Phase   Phase
	User    domain.Message
	Reply   domain.Message
	Project string
	Err     error
}

func (t Turn) Settled() bool {
	return t.Phase == PhaseSucceeded || t.Phase == PhaseFailed
}

// State is a snapshot of everything a front end renders.
type State struct {
	Messages    []domain.Message
	Input       string
	Pending     bool
	Error       string
	SaveHistory bool
	Turn        Turn
}
