package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/neutralwire/neutralwire/internal/model"
	"github.com/neutralwire/neutralwire/internal/worker"
)

const eventRegistryURL = "https://eventregistry.org/api/v1/article/getArticles"

// EventRegistryAdapter fetches articles from the Event Registry search API.
// It is the preferred provider because results carry full article bodies.
type EventRegistryAdapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *worker.Limiter
	minBody    int
}

// NewEventRegistryAdapter creates the adapter. An empty apiKey disables it.
func NewEventRegistryAdapter(apiKey string, httpClient *http.Client, limiter *worker.Limiter, minBody int) *EventRegistryAdapter {
	if minBody <= 0 {
		minBody = minBodyLength
	}
	return &EventRegistryAdapter{
		apiKey:     apiKey,
		baseURL:    eventRegistryURL,
		httpClient: httpClient,
		limiter:    limiter,
		minBody:    minBody,
	}
}

// Name returns the provider name
func (a *EventRegistryAdapter) Name() string {
	return "eventregistry"
}

type eventRegistryRequest struct {
	Action             string   `json:"action"`
	Keyword            string   `json:"keyword"`
	ArticlesPage       int      `json:"articlesPage"`
	ArticlesCount      int      `json:"articlesCount"`
	ArticlesSortBy     string   `json:"articlesSortBy"`
	ArticlesSortByAsc  bool     `json:"articlesSortByAsc"`
	ArticlesBodyLen    int      `json:"articlesArticleBodyLen"`
	ResultType         string   `json:"resultType"`
	DataType           []string `json:"dataType"`
	Lang               string   `json:"lang"`
	IgnoreSourceGroups []string `json:"ignoreSourceGroups"`
	IsDuplicateFilter  string   `json:"isDuplicateFilter"`
	APIKey             string   `json:"apiKey"`
	ForceMaxDataWindow int      `json:"forceMaxDataTimeWindow"`
}

type eventRegistryResponse struct {
	Articles struct {
		Results []struct {
			Title   string `json:"title"`
			Body    string `json:"body"`
			Summary string `json:"summary"`
			Source  struct {
				Title string `json:"title"`
			} `json:"source"`
			Date string `json:"date"`
			URL  string `json:"url"`
		} `json:"results"`
	} `json:"articles"`
}

// Fetch retrieves articles matching query, dropping any whose body falls
// below the minimum usable length
func (a *EventRegistryAdapter) Fetch(ctx context.Context, query string, count int) ([]model.Article, error) {
	if a.apiKey == "" {
		return nil, nil
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx, a.Name()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	payload := eventRegistryRequest{
		Action:             "getArticles",
		Keyword:            query,
		ArticlesPage:       1,
		ArticlesCount:      count,
		ArticlesSortBy:     "rel",
		ArticlesBodyLen:    -1,
		ResultType:         "articles",
		DataType:           []string{"news"},
		Lang:               "eng",
		IgnoreSourceGroups: []string{"blog", "pressrelease"},
		IsDuplicateFilter:  "skip",
		APIKey:             a.apiKey,
		ForceMaxDataWindow: 31,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var data eventRegistryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var articles []model.Article
	for _, r := range data.Articles.Results {
		raw := r.Body
		if raw == "" {
			raw = r.Summary
		}
		text := StripHTML(raw)
		if len(text) < a.minBody {
			continue
		}

		title := r.Title
		if title == "" {
			title = "No title"
		}
		source := r.Source.Title
		if source == "" {
			source = "Unknown"
		}

		articles = append(articles, model.Article{
			Title:         title,
			Source:        source,
			PublishedDate: model.TruncateDate(r.Date),
			URL:           r.URL,
			Body:          text,
			Category:      model.DefaultCategory,
		})
	}

	return articles, nil
}
