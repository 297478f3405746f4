// Tests for the OpenRouter client against a local mock server.
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nimbuscode/nimbuscode/pkg/config"
)

// completionRequest mirrors the wire shape the client must produce.
type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int64   `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// TestCompleteMessageOrder validates the request shape and verbatim reply
// extraction.
func TestCompleteMessageOrder(t *testing.T) {
	var got completionRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Test response"}}]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	settings := config.Settings{Model: "openrouter/auto", MaxTokens: 1024, Temperature: 0.7}

	reply, err := client.Complete(context.Background(), "Test prompt", "Test system prompt", settings)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply != "Test response" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if auth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", auth)
	}
	if got.Model != "openrouter/auto" || got.MaxTokens != 1024 || got.Temperature != 0.7 {
		t.Fatalf("sampling parameters not passed through: %+v", got)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "Test system prompt" {
		t.Fatalf("system message not first: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "Test prompt" {
		t.Fatalf("user message not second: %+v", got.Messages[1])
	}
}

// TestCompleteWithoutSystemPrompt verifies the system message is omitted
// entirely when empty.
func TestCompleteWithoutSystemPrompt(t *testing.T) {
	var got completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	if _, err := client.Complete(context.Background(), "hi", "", config.Settings{Model: "m"}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", got.Messages)
	}
}

// TestCompleteServerError verifies a non-success status surfaces as an error.
func TestCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	if _, err := client.Complete(context.Background(), "hi", "", config.Settings{Model: "m"}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

// TestListFreeModels verifies the zero-price filter keeps provider order.
func TestListFreeModels(t *testing.T) {
	payload := `{"data":[
		{"id":"paid/one","name":"Paid One","pricing":{"prompt":"0.000002","completion":"0.000002"}},
		{"id":"free/one","name":"Free One","context_length":8192,"description":"First free model","pricing":{"prompt":"0","completion":"0"}},
		{"id":"half/free","name":"Half Free","pricing":{"prompt":"0","completion":"0.00001"}},
		{"id":"free/two","name":"Free Two","pricing":{"prompt":"0","completion":"0"}}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	models, err := client.ListFreeModels(context.Background())
	if err != nil {
		t.Fatalf("list models: %v", err)
	}

	if len(models) != 2 {
		t.Fatalf("expected 2 free models, got %d: %+v", len(models), models)
	}
	if models[0].ID != "free/one" || models[1].ID != "free/two" {
		t.Fatalf("free models out of order: %+v", models)
	}
	if models[0].ContextLength != 8192 || models[0].Description != "First free model" {
		t.Fatalf("model metadata lost: %+v", models[0])
	}
	if models[1].ContextLength != 0 {
		t.Fatalf("absent context length should be zero, got %d", models[1].ContextLength)
	}
}

// TestListFreeModelsEmpty verifies an all-paid listing is a normal empty
// result, not an error.
func TestListFreeModelsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"paid","pricing":{"prompt":"0.01","completion":"0.01"}}]}`))
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	models, err := client.ListFreeModels(context.Background())
	if err != nil {
		t.Fatalf("list models: %v", err)
	}
	if len(models) != 0 {
		t.Fatalf("expected no free models, got %+v", models)
	}
}
