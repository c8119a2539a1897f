// Package pipeline composes acquisition, categorization, persistence, and
// analysis. All collaborators are injected explicitly; there is no
// package-level state and no implicit connection setup.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neutralwire/neutralwire/internal/analyze"
	"github.com/neutralwire/neutralwire/internal/category"
	"github.com/neutralwire/neutralwire/internal/model"
	"github.com/neutralwire/neutralwire/internal/news"
	"github.com/neutralwire/neutralwire/internal/store"
	"github.com/neutralwire/neutralwire/internal/worker"
)

// Pipeline wires the acquisition and analysis stages together
type Pipeline struct {
	coordinator  *news.Coordinator
	categorizer  *category.Categorizer
	orchestrator *analyze.Orchestrator // nil when analysis is not configured
	store        store.Store           // nil in the content-only variant
	analysisJobs int
	log          *slog.Logger
}

// New creates a pipeline from explicitly constructed collaborators.
// orchestrator and store may be nil for the content-only variant.
func New(coordinator *news.Coordinator, categorizer *category.Categorizer, orchestrator *analyze.Orchestrator, st store.Store, analysisJobs int, log *slog.Logger) *Pipeline {
	if analysisJobs <= 0 {
		analysisJobs = 2
	}
	return &Pipeline{
		coordinator:  coordinator,
		categorizer:  categorizer,
		orchestrator: orchestrator,
		store:        st,
		analysisJobs: analysisJobs,
		log:          log,
	}
}

// Fetch is the content-only variant: acquire, categorize, return. Nothing
// is persisted. The result is never empty.
func (p *Pipeline) Fetch(ctx context.Context, query string, count int) []model.Article {
	articles := p.coordinator.FetchArticles(ctx, query, count)
	p.categorizer.CategorizeAll(ctx, articles)
	return articles
}

// Ingest acquires and categorizes articles, then writes the raw snapshot.
// The snapshot is immutable: analysis results are merged later, not here.
func (p *Pipeline) Ingest(ctx context.Context, query string, count int) ([]model.Article, error) {
	if p.store == nil {
		return nil, fmt.Errorf("no store configured")
	}

	articles := p.coordinator.FetchArticles(ctx, query, count)
	p.categorizer.CategorizeAll(ctx, articles)

	if err := p.store.CreateSchema(ctx); err != nil {
		return nil, err
	}
	if err := p.store.InsertArticles(ctx, articles); err != nil {
		return nil, err
	}

	p.log.Info("articles ingested", "count", len(articles), "query", query)
	return articles, nil
}

// Analyze selects the most recent stored snippets, scores each through the
// worker pool, and merges results back by title. Persistence failures for
// one article are logged and abandoned without touching committed rows.
func (p *Pipeline) Analyze(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if p.store == nil || p.orchestrator == nil {
		return nil, fmt.Errorf("analysis requires a store and a generation backend")
	}

	snippets, err := p.store.SelectRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(snippets) == 0 {
		p.log.Info("nothing to analyze")
		return nil, nil
	}

	batch := worker.NewBatchAnalyzer(p.orchestrator, p.analysisJobs)
	results := batch.ProcessSnippets(ctx, snippets)

	var records []model.AnalysisRecord
	for _, r := range results {
		if r.Err != nil {
			p.log.Warn("analysis job aborted", "title", r.Title, "error", r.Err)
			continue
		}

		updated, err := p.store.UpdateByTitle(ctx, r.Title, r.Record.Analysis, r.Record.NeutralTitle)
		if err != nil {
			p.log.Warn("analysis merge failed", "title", r.Title, "error", err)
			continue
		}
		if updated > 1 {
			// Title-keyed merge: duplicate titles all receive this result
			p.log.Warn("analysis merged into multiple rows", "title", r.Title, "rows", updated)
		}

		records = append(records, r.Record)
	}

	p.log.Info("analysis complete", "analyzed", len(results), "merged", len(records))
	return records, nil
}

// Run performs the full cycle: ingest a fresh batch, then analyze the most
// recent limit articles.
func (p *Pipeline) Run(ctx context.Context, query string, count, limit int) ([]model.AnalysisRecord, error) {
	if _, err := p.Ingest(ctx, query, count); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	records, err := p.Analyze(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return records, nil
}
