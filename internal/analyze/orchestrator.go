package analyze

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/neutralwire/neutralwire/internal/llm"
	"github.com/neutralwire/neutralwire/internal/model"
)

// Orchestrator composes bias scoring with a neutral title rewrite into one
// record per article. It holds no per-call state: invocations over
// different articles are independent and safe to run concurrently.
type Orchestrator struct {
	analyzer *Analyzer
	gen      llm.Generator
	log      *slog.Logger
}

// NewOrchestrator creates an orchestrator sharing the analyzer's backend
func NewOrchestrator(analyzer *Analyzer, gen llm.Generator, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		analyzer: analyzer,
		gen:      gen,
		log:      log,
	}
}

// AnalyzeArticle scores the text and rewrites the title. The two backend
// calls are independent; each degrades on its own (fallback scores, or the
// original title unchanged).
func (o *Orchestrator) AnalyzeArticle(ctx context.Context, articleText, originalTitle string) model.AnalysisRecord {
	analysis := o.analyzer.AnalyzeBias(ctx, articleText)
	neutral := o.RewriteTitle(ctx, originalTitle)

	return model.AnalysisRecord{
		OriginalTitle: originalTitle,
		NeutralTitle:  neutral,
		Analysis:      analysis,
	}
}

// RewriteTitle asks the backend for a neutral restatement of the title.
// Single call, no retry; any failure or empty response returns the
// original title unchanged.
func (o *Orchestrator) RewriteTitle(ctx context.Context, title string) string {
	if strings.TrimSpace(title) == "" {
		return title
	}

	start := time.Now()
	rewritten, err := o.gen.Generate(ctx, BuildRewritePrompt(title))
	if err != nil {
		o.log.Warn("title rewrite failed",
			"model", o.gen.Model(),
			"elapsed", time.Since(start),
			"error", err)
		return title
	}

	rewritten = strings.Trim(strings.TrimSpace(rewritten), `"`)
	if rewritten == "" {
		return title
	}

	o.log.Debug("title rewritten",
		"model", o.gen.Model(),
		"elapsed", time.Since(start))

	return rewritten
}
