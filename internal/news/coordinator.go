package news

import (
	"context"
	"log/slog"
	"time"

	"github.com/neutralwire/neutralwire/internal/model"
)

// Coordinator tries adapters in priority order and stops at the first
// non-empty result. Ordering is fixed by provider preference, never by
// comparing result quality across providers.
type Coordinator struct {
	adapters []Adapter
	filter   *QualityFilter // nil in the persistence variant
	log      *slog.Logger
}

// NewCoordinator creates a coordinator over the given adapters. A non-nil
// filter enables the quality pass applied to provider results.
func NewCoordinator(adapters []Adapter, filter *QualityFilter, log *slog.Logger) *Coordinator {
	return &Coordinator{
		adapters: adapters,
		filter:   filter,
		log:      log,
	}
}

// FetchArticles returns articles for the query. It never returns an empty
// slice: when all providers fail or return nothing usable, the fixed demo
// set is the floor. Provider errors are absorbed here, not propagated.
func (c *Coordinator) FetchArticles(ctx context.Context, query string, count int) []model.Article {
	for _, adapter := range c.adapters {
		start := time.Now()
		articles, err := adapter.Fetch(ctx, query, count)
		elapsed := time.Since(start)

		if err != nil {
			c.log.Warn("provider fetch failed",
				"provider", adapter.Name(),
				"elapsed", elapsed,
				"error", err)
			continue
		}
		if len(articles) == 0 {
			c.log.Debug("provider returned nothing",
				"provider", adapter.Name(),
				"elapsed", elapsed)
			continue
		}

		c.log.Info("provider fetch succeeded",
			"provider", adapter.Name(),
			"articles", len(articles),
			"elapsed", elapsed)

		// First non-empty result wins; remaining providers are never
		// consulted, even if the quality pass leaves nothing behind.
		if c.filter == nil {
			return articles
		}
		kept := c.filter.Apply(articles)
		if len(kept) > 0 {
			return kept
		}
		c.log.Warn("quality filter rejected all results", "provider", adapter.Name())
		break
	}

	c.log.Info("falling back to demo articles", "query", query)
	return DemoArticles()
}
