package worker

import (
	"context"

	"github.com/neutralwire/neutralwire/internal/model"
)

// ArticleAnalyzer is the per-article analysis operation run by the pool
type ArticleAnalyzer interface {
	AnalyzeArticle(ctx context.Context, articleText, originalTitle string) model.AnalysisRecord
}

// AnalysisJob analyzes one stored snippet
type AnalysisJob struct {
	Snippet  model.Snippet
	Analyzer ArticleAnalyzer
}

// Execute runs the analysis. Analysis never fails structurally (fallback
// records are the floor), so the only error source is cancellation.
func (j *AnalysisJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &AnalysisResult{Title: j.Snippet.Title, Err: err}
	}
	record := j.Analyzer.AnalyzeArticle(ctx, j.Snippet.Body, j.Snippet.Title)
	return &AnalysisResult{
		Title:  j.Snippet.Title,
		Record: record,
	}
}

// AnalysisResult is the outcome of one analysis job
type AnalysisResult struct {
	Title  string
	Record model.AnalysisRecord
	Err    error
}

// GetError returns the job error, nil on success
func (r *AnalysisResult) GetError() error {
	return r.Err
}

// BatchAnalyzer runs per-article analysis concurrently over a pool
type BatchAnalyzer struct {
	analyzer    ArticleAnalyzer
	concurrency int
}

// NewBatchAnalyzer creates a batch analyzer with the given concurrency
func NewBatchAnalyzer(analyzer ArticleAnalyzer, concurrency int) *BatchAnalyzer {
	return &BatchAnalyzer{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessSnippets analyzes all snippets and returns results in completion
// order. Cancelling ctx abandons queued snippets and interrupts in-flight
// calls; only completed results come back. No partial writes happen here;
// persistence is the caller's step.
func (b *BatchAnalyzer) ProcessSnippets(ctx context.Context, snippets []model.Snippet) []*AnalysisResult {
	if len(snippets) == 0 {
		return []*AnalysisResult{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	for _, s := range snippets {
		pool.Submit(&AnalysisJob{
			Snippet:  s,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analysisResults := make([]*AnalysisResult, len(results))
	for i, result := range results {
		analysisResults[i] = result.(*AnalysisResult)
	}

	return analysisResults
}
