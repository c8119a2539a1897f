// Package store persists article snapshots and merges analysis results
// back in. The pipeline treats it as a collaborator behind the Store
// interface; each operation is its own short-lived transaction.
package store

import (
	"context"

	"github.com/neutralwire/neutralwire/internal/model"
)

// Store is the persistence collaborator consumed by the pipeline.
//
// Raw articles are written once as an immutable snapshot; analysis results
// are merged later by matching on title. There is no article-id linkage in
// the merge operation, so duplicate titles update every matching row.
// Callers must account for multi-row merges.
type Store interface {
	// CreateSchema creates the backing schema if it does not exist
	CreateSchema(ctx context.Context) error

	// InsertArticles appends raw article snapshots
	InsertArticles(ctx context.Context, articles []model.Article) error

	// SelectRecent returns up to limit title/body snippets ordered by
	// published date, newest first
	SelectRecent(ctx context.Context, limit int) ([]model.Snippet, error)

	// UpdateByTitle merges an analysis result into every row whose title
	// matches, returning the number of rows updated
	UpdateByTitle(ctx context.Context, title string, analysis model.BiasAnalysis, neutralTitle string) (int64, error)

	// Close releases the underlying connection pool
	Close() error
}
