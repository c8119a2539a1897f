package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/neutralwire/neutralwire/internal/model"
)

// SQLiteStore implements Store over a local SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path. Use ":memory:"
// for an ephemeral store in tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Writes come from concurrent analysis workers; SQLite serializes them
	// on a single connection.
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db}, nil
}

// CreateSchema creates the articles table if it does not exist. The id
// column is a surrogate key for future precision; the analysis merge
// operation remains title-keyed.
func (s *SQLiteStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS data_news (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			source TEXT,
			date DATE,
			url TEXT,
			body TEXT,
			category TEXT,
			bias TEXT,
			rewritten_article TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertArticles appends raw article snapshots in one transaction
func (s *SQLiteStore) InsertArticles(ctx context.Context, articles []model.Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO data_news (title, source, date, url, body, category, bias, rewritten_article)
		VALUES (?, ?, ?, ?, ?, ?, NULL, NULL)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx, a.Title, a.Source, a.PublishedDate, a.URL, a.Body, a.Category); err != nil {
			return fmt.Errorf("insert article %q: %w", a.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}

// SelectRecent returns up to limit title/body snippets, newest first
func (s *SQLiteStore) SelectRecent(ctx context.Context, limit int) ([]model.Snippet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, body
		FROM data_news
		ORDER BY date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snippets []model.Snippet
	for rows.Next() {
		var s model.Snippet
		if err := rows.Scan(&s.Title, &s.Body); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		snippets = append(snippets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return snippets, nil
}

// UpdateByTitle merges the analysis into every row sharing the title.
// The bias column stores the analysis as JSON.
func (s *SQLiteStore) UpdateByTitle(ctx context.Context, title string, analysis model.BiasAnalysis, neutralTitle string) (int64, error) {
	biasJSON, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("marshal analysis: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE data_news
		SET bias = ?, rewritten_article = ?
		WHERE title = ?
	`, string(biasJSON), neutralTitle, title)
	if err != nil {
		return 0, fmt.Errorf("update by title: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return updated, nil
}

// Close releases the underlying connection pool
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
