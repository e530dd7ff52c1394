package domain

import "errors"

var (
	ErrEmptyMessage   = errors.New("empty message")
	ErrRequestPending = errors.New("a request is already in flight")
	ErrMissingAPIKey  = errors.New("no completion api key configured")
	ErrEmptyResponse  = errors.New("completion returned empty response")
)
