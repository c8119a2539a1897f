package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEventRegistryAdapter_Fetch(t *testing.T) {
	longBody := strings.Repeat("Substantive reporting on the topic. ", 10)

	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decode request payload: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"articles": {
				"results": [
					{
						"title": "Full Article",
						"body": "` + longBody + `",
						"source": {"title": "Wire Service"},
						"date": "2024-03-10T08:30:00Z",
						"url": "https://example.com/full"
					},
					{
						"title": "Thin Article",
						"body": "too short",
						"source": {"title": "Wire Service"},
						"date": "2024-03-09",
						"url": "https://example.com/thin"
					},
					{
						"title": "",
						"summary": "` + longBody + `",
						"source": {"title": ""},
						"date": "2024-03-08",
						"url": "https://example.com/summary"
					}
				]
			}
		}`))
	}))
	defer server.Close()

	adapter := NewEventRegistryAdapter("test-key", server.Client(), nil, 0)
	adapter.baseURL = server.URL

	articles, err := adapter.Fetch(context.Background(), "climate", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPayload["action"] != "getArticles" {
		t.Errorf("expected action getArticles, got %v", gotPayload["action"])
	}
	if gotPayload["keyword"] != "climate" {
		t.Errorf("expected keyword climate, got %v", gotPayload["keyword"])
	}
	if gotPayload["isDuplicateFilter"] != "skip" {
		t.Errorf("expected isDuplicateFilter skip, got %v", gotPayload["isDuplicateFilter"])
	}
	if gotPayload["apiKey"] != "test-key" {
		t.Errorf("expected apiKey test-key, got %v", gotPayload["apiKey"])
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles (short body dropped), got %d", len(articles))
	}
	if articles[0].Title != "Full Article" {
		t.Errorf("expected title Full Article, got %q", articles[0].Title)
	}
	if articles[0].PublishedDate != "2024-03-10" {
		t.Errorf("expected date truncated to 2024-03-10, got %q", articles[0].PublishedDate)
	}
	if articles[1].Title != "No title" {
		t.Errorf("expected placeholder title for empty title, got %q", articles[1].Title)
	}
	if articles[1].Source != "Unknown" {
		t.Errorf("expected placeholder source for empty source, got %q", articles[1].Source)
	}
}

func TestEventRegistryAdapter_EmptyKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	adapter := NewEventRegistryAdapter("", server.Client(), nil, 0)
	adapter.baseURL = server.URL

	articles, err := adapter.Fetch(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if articles != nil {
		t.Errorf("expected nil articles with no key, got %v", articles)
	}
	if called {
		t.Error("adapter must not call the endpoint without a key")
	}
}

func TestEventRegistryAdapter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := NewEventRegistryAdapter("test-key", server.Client(), nil, 0)
	adapter.baseURL = server.URL

	if _, err := adapter.Fetch(context.Background(), "climate", 5); err == nil {
		t.Error("expected error on non-200 response")
	}
}
