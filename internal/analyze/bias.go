// Package analyze enforces a strict JSON-shaped output contract on top of
// the unstructured text-generation backend, and composes bias scoring with
// headline neutralization.
package analyze

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/neutralwire/neutralwire/internal/llm"
	"github.com/neutralwire/neutralwire/internal/model"
)

// minArticleLength is the shortest trimmed input worth sending to the
// backend; anything shorter short-circuits to the fallback result
const minArticleLength = 10

// Analyzer scores article text for media bias. AnalyzeBias never returns
// an error and never returns a structurally invalid result: every failure
// mode resolves to the fixed fallback record.
type Analyzer struct {
	gen llm.Generator
	log *slog.Logger
}

// NewAnalyzer creates a bias analyzer over the given generation backend
func NewAnalyzer(gen llm.Generator, log *slog.Logger) *Analyzer {
	return &Analyzer{
		gen: gen,
		log: log,
	}
}

// AnalyzeBias scores one article's text. A single backend call is made per
// invocation; there is no retry loop. Partial results are never returned:
// an incomplete response is replaced wholesale by the fallback.
func (a *Analyzer) AnalyzeBias(ctx context.Context, articleText string) model.BiasAnalysis {
	if len(strings.TrimSpace(articleText)) < minArticleLength {
		return model.FallbackAnalysis()
	}

	start := time.Now()
	response, err := a.gen.Generate(ctx, BuildBiasPrompt(articleText))
	if err != nil {
		a.log.Warn("bias analysis call failed",
			"model", a.gen.Model(),
			"elapsed", time.Since(start),
			"error", err)
		return model.FallbackAnalysis()
	}

	analysis, err := extractAnalysis(response)
	if err != nil {
		a.log.Warn("bias analysis extraction failed",
			"model", a.gen.Model(),
			"elapsed", time.Since(start),
			"error", err)
		return model.FallbackAnalysis()
	}

	a.log.Debug("bias analysis succeeded",
		"model", a.gen.Model(),
		"overall", analysis.OverallScore,
		"phrases", len(analysis.BiasedPhrases),
		"elapsed", time.Since(start))

	return analysis
}
