package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/usecase/chat"
)

type recordedRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newServer(t *testing.T, status int, body string, got *recordedRequest, auth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestComplete(t *testing.T) {
	var got recordedRequest
	var auth string
	srv := newServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Anuj builds React apps."}, "finish_reason": "stop"}]
	}`, &got, &auth)

	client := NewClient("gsk_test", srv.URL+"/openai/v1/", 5*time.Second)
	reply, err := client.Complete(context.Background(), chat.CompletionRequest{
		Model:       "llama-3.1-8b-instant",
		MaxTokens:   1024,
		Temperature: 0.7,
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: "system prompt"},
			{Role: domain.RoleUser, Content: "Who is Anuj?", Time: "10:00"},
		},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if reply != "Anuj builds React apps." {
		t.Errorf("got reply %q", reply)
	}
	if auth != "Bearer gsk_test" {
		t.Errorf("got authorization %q", auth)
	}
	if got.Model != "llama-3.1-8b-instant" || got.MaxTokens != 1024 || got.Temperature != 0.7 {
		t.Errorf("got request %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[1].Role != "user" || got.Messages[1].Content != "Who is Anuj?" {
		t.Errorf("got messages %+v", got.Messages)
	}
}

func TestComplete_ErrorStatus(t *testing.T) {
	srv := newServer(t, http.StatusUnauthorized,
		`{"error": {"message": "Invalid API Key", "type": "invalid_request_error"}}`, nil, nil)

	client := NewClient("gsk_bad", srv.URL+"/openai/v1", 5*time.Second)
	_, err := client.Complete(context.Background(), chat.CompletionRequest{
		Model:    "llama-3.1-8b-instant",
		Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "Invalid API Key") {
		t.Errorf("error should carry the provider message, got %v", err)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"id": "chatcmpl-2", "choices": []}`, nil, nil)

	client := NewClient("gsk_test", srv.URL+"/openai/v1", 5*time.Second)
	_, err := client.Complete(context.Background(), chat.CompletionRequest{
		Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}},
	})
	if !errors.Is(err, domain.ErrEmptyResponse) {
		t.Errorf("got %v, want ErrEmptyResponse", err)
	}
}

func TestComplete_MissingKey(t *testing.T) {
	client := NewClient("", "http://127.0.0.1:0", time.Second)
	_, err := client.Complete(context.Background(), chat.CompletionRequest{
		Messages: []domain.Message{{Role: domain.RoleUser, Content: "hi"}},
	})
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("got %v, want ErrMissingAPIKey", err)
	}
}
