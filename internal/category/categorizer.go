// Package category labels article text via an external classification
// endpoint. Every failure path degrades to the fixed "Uncategorized"
// label: categorization is best-effort and never blocks acquisition.
package category

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/neutralwire/neutralwire/internal/cache"
	"github.com/neutralwire/neutralwire/internal/model"
	"github.com/neutralwire/neutralwire/internal/worker"
)

const (
	// minTextLength is the shortest input worth classifying; anything
	// shorter short-circuits to the default label without a network call
	minTextLength = 50

	// maxTextLength caps how much body text is submitted
	maxTextLength = 5000
)

// Categorizer calls the external text-classification endpoint
type Categorizer struct {
	endpoint   string
	taxonomy   string
	apiKey     string
	httpClient *http.Client
	limiter    *worker.Limiter
	labelCache cache.Cache // nil disables caching
	cacheTTL   time.Duration
	workers    int
	log        *slog.Logger
}

// New creates a categorizer. labelCache may be nil to disable caching.
func New(cfg model.CategorizerConfig, httpClient *http.Client, limiter *worker.Limiter, labelCache cache.Cache, workers int, log *slog.Logger) *Categorizer {
	if workers <= 0 {
		workers = 4
	}
	return &Categorizer{
		endpoint:   cfg.Endpoint,
		taxonomy:   cfg.Taxonomy,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		limiter:    limiter,
		labelCache: labelCache,
		cacheTTL:   24 * time.Hour,
		workers:    workers,
		log:        log,
	}
}

type categorizeRequest struct {
	Text     string `json:"text"`
	Taxonomy string `json:"taxonomy"`
	APIKey   string `json:"apiKey"`
}

type categorizeResponse struct {
	Categories []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"categories"`
}

// Categorize returns a category label for the text. It picks the
// highest-confidence category and strips the taxonomy namespace prefix
// ("news/Business" becomes "Business"). Any failure returns the default.
func (c *Categorizer) Categorize(ctx context.Context, text string) string {
	if len(strings.TrimSpace(text)) < minTextLength {
		return model.DefaultCategory
	}

	if len(text) > maxTextLength {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character
		cut := maxTextLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	key := cache.Key(text)
	if c.labelCache != nil {
		if label, found := c.labelCache.Get(key); found {
			return string(label)
		}
	}

	start := time.Now()
	label, err := c.classify(ctx, text)
	if err != nil {
		c.log.Warn("categorization failed",
			"provider", "eventregistry-analytics",
			"elapsed", time.Since(start),
			"error", err)
		return model.DefaultCategory
	}

	c.log.Debug("categorization succeeded",
		"provider", "eventregistry-analytics",
		"label", label,
		"elapsed", time.Since(start))

	if c.labelCache != nil {
		_ = c.labelCache.Set(key, []byte(label), c.cacheTTL)
	}
	return label
}

// CategorizeAll labels a batch of articles in place, bounded by the
// configured worker count. Each call only mutates its own article's
// Category field, so no ordering guarantee is needed.
func (c *Categorizer) CategorizeAll(ctx context.Context, articles []model.Article) {
	if len(articles) == 0 {
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.workers)

	for i := range articles {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			articles[idx].Category = c.Categorize(ctx, articles[idx].Body)
		}(i)
	}

	wg.Wait()
}

func (c *Categorizer) classify(ctx context.Context, text string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, "categorize"); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	payload := categorizeRequest{
		Text:     text,
		Taxonomy: c.taxonomy,
		APIKey:   c.apiKey,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("categorize: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var data categorizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(data.Categories) == 0 {
		return "", fmt.Errorf("no categories in response")
	}

	top := data.Categories[0]
	for _, cat := range data.Categories[1:] {
		if cat.Score > top.Score {
			top = cat
		}
	}

	// "news/Business" -> "Business"
	label := top.Label
	if idx := strings.LastIndex(label, "/"); idx >= 0 {
		label = label[idx+1:]
	}
	if label == "" {
		return "", fmt.Errorf("empty category label")
	}

	return label, nil
}
