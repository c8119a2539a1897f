// Package news implements article acquisition: one adapter per provider,
// an ordered-fallback coordinator, and the heuristic quality filter.
package news

import (
	"context"

	"github.com/neutralwire/neutralwire/internal/model"
)

// Adapter wraps one external article-search API. Implementations map the
// provider's response schema onto the canonical Article shape and discard
// records whose body is missing or below the minimum usable length.
//
// An adapter without credentials returns (nil, nil) without a network call.
// Transport and schema failures surface as errors; the coordinator absorbs
// them and falls through to the next provider.
type Adapter interface {
	// Name returns the provider name
	Name() string

	// Fetch retrieves up to count articles matching query
	Fetch(ctx context.Context, query string, count int) ([]model.Article, error)
}

// minBodyLength is the provider-level floor below which an article body is
// considered unusable and the record is discarded before returning
const minBodyLength = 100
