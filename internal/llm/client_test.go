package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/neutralwire/neutralwire/internal/logger"
)

// chatHandler answers the OpenAI chat completions wire format, failing
// models listed in down and echoing reply for the rest
func chatHandler(t *testing.T, down map[string]bool, reply string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if down[req.Model] {
			http.Error(w, `{"error": {"message": "model not found"}}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}
}

func TestNewClient_ProbesFallbackOrder(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, map[string]bool{"primary-model": true}, "ok"))
	defer server.Close()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Models:  []string{"primary-model", "backup-model"},
	}

	client, err := NewClient(context.Background(), cfg, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != "backup-model" {
		t.Errorf("expected backup-model after primary probe failure, got %q", client.Model())
	}
}

func TestNewClient_AllModelsDown(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, map[string]bool{"a": true, "b": true}, "ok"))
	defer server.Close()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Models:  []string{"a", "b"},
	}

	if _, err := NewClient(context.Background(), cfg, logger.Discard()); err == nil {
		t.Error("expected error when no model responds")
	}
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient(context.Background(), Config{Models: []string{"m"}}, logger.Discard()); err == nil {
		t.Error("expected error without API key")
	}
	if _, err := NewClient(context.Background(), Config{APIKey: "k"}, logger.Discard()); err == nil {
		t.Error("expected error without candidate models")
	}
}

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, nil, "  generated text  "))
	defer server.Close()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Models:  []string{"only-model"},
	}

	client, err := NewClient(context.Background(), cfg, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := client.Generate(context.Background(), "any prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "generated text" {
		t.Errorf("expected trimmed response, got %q", got)
	}
}

func TestClient_GenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	clientConfig := openai.DefaultConfig("test-key")
	clientConfig.BaseURL = server.URL + "/v1"
	client := &Client{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     "only-model",
		timeout:   5 * time.Second,
		maxTokens: 100,
	}

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Error("expected error on empty choices")
	}
}
