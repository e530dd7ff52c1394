package domain

import "context"

// Keys of the local durable state.
const (
	KeySaveHistory = "saveHistory"
	KeyChatHistory = "chatHistory"
)

// KeyValueStore is the local durable state the session mirrors its
// transcript into. Get reports false when the key was never written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
