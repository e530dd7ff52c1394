package domain

import "time"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TimeLayout is the clock format stamped on transcript messages.
const TimeLayout = "15:04"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Time    string `json:"time,omitempty"`
}

func NewMessage(role, content string, at time.Time) Message {
	return Message{
		Role:    role,
		Content: content,
		Time:    at.Format(TimeLayout),
	}
}

func ValidRole(role string) bool {
	switch role {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}
