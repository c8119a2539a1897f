package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/neutralwire/neutralwire/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return s
}

func testArticle(title, date string) model.Article {
	return model.Article{
		Title:         title,
		Source:        "Test Source",
		PublishedDate: date,
		URL:           "https://example.com/" + title,
		Body:          "Body text for " + title,
		Category:      "Science",
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.CreateSchema(context.Background()); err != nil {
		t.Fatalf("second CreateSchema must not fail: %v", err)
	}
}

func TestInsertAndSelectRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	articles := []model.Article{
		testArticle("Oldest Story", "2024-01-01"),
		testArticle("Newest Story", "2024-03-01"),
		testArticle("Middle Story", "2024-02-01"),
	}
	if err := s.InsertArticles(ctx, articles); err != nil {
		t.Fatalf("insert: %v", err)
	}

	snippets, err := s.SelectRecent(ctx, 2)
	if err != nil {
		t.Fatalf("select recent: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(snippets))
	}
	if snippets[0].Title != "Newest Story" || snippets[1].Title != "Middle Story" {
		t.Errorf("expected newest-first ordering, got %+v", snippets)
	}
	if snippets[0].Body != "Body text for Newest Story" {
		t.Errorf("unexpected body: %q", snippets[0].Body)
	}
}

func TestInsertArticles_Empty(t *testing.T) {
	s := newTestStore(t)
	if err := s.InsertArticles(context.Background(), nil); err != nil {
		t.Fatalf("empty insert must be a no-op: %v", err)
	}
}

func TestUpdateByTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.InsertArticles(ctx, []model.Article{testArticle("Target Story", "2024-01-10")}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	analysis := model.BiasAnalysis{
		EmotionalScore: 70,
		FramingScore:   60,
		OmissionScore:  55,
		OverallScore:   65,
		BiasedPhrases:  []model.BiasedPhrase{},
		Summary:        "Noticeable slant.",
	}
	updated, err := s.UpdateByTitle(ctx, "Target Story", analysis, "Neutral Restatement")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != 1 {
		t.Errorf("expected 1 row updated, got %d", updated)
	}

	var biasJSON, rewritten string
	err = s.db.QueryRowContext(ctx, `
		SELECT bias, rewritten_article FROM data_news WHERE title = ?
	`, "Target Story").Scan(&biasJSON, &rewritten)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if rewritten != "Neutral Restatement" {
		t.Errorf("unexpected rewritten title: %q", rewritten)
	}

	var stored model.BiasAnalysis
	if err := json.Unmarshal([]byte(biasJSON), &stored); err != nil {
		t.Fatalf("stored bias is not valid JSON: %v", err)
	}
	if stored.OverallScore != 65 {
		t.Errorf("expected overall 65, got %d", stored.OverallScore)
	}
}

func TestUpdateByTitle_DuplicateTitlesAllUpdated(t *testing.T) {
	// The merge is title-keyed. Two distinct articles sharing a title both
	// receive the same analysis; callers see this through the row count.
	s := newTestStore(t)
	ctx := context.Background()

	first := testArticle("Shared Headline", "2024-01-05")
	second := testArticle("Shared Headline", "2024-01-06")
	second.Body = "A different body under the same headline"
	if err := s.InsertArticles(ctx, []model.Article{first, second}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, err := s.UpdateByTitle(ctx, "Shared Headline", model.FallbackAnalysis(), "Neutral Shared Headline")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected both duplicate rows updated, got %d", updated)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT rewritten_article FROM data_news WHERE title = ?
	`, "Shared Headline")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	defer func() { _ = rows.Close() }()

	count := 0
	for rows.Next() {
		var rewritten string
		if err := rows.Scan(&rewritten); err != nil {
			t.Fatalf("scan: %v", err)
		}
		if rewritten != "Neutral Shared Headline" {
			t.Errorf("row %d: unexpected rewritten title %q", count, rewritten)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
}

func TestUpdateByTitle_NoMatch(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.UpdateByTitle(context.Background(), "Absent Title", model.FallbackAnalysis(), "x")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != 0 {
		t.Errorf("expected 0 rows updated, got %d", updated)
	}
}
