package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/neutralwire/neutralwire/internal/model"
	"github.com/neutralwire/neutralwire/internal/worker"
)

const newsAPIURL = "https://newsapi.org/v2/everything"

// NewsAPIAdapter fetches articles from the NewsAPI everything endpoint.
// It is the fallback provider: results often carry truncated content,
// so the description is used when content is absent.
type NewsAPIAdapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *worker.Limiter
	minBody    int
}

// NewNewsAPIAdapter creates the adapter. An empty apiKey disables it.
func NewNewsAPIAdapter(apiKey string, httpClient *http.Client, limiter *worker.Limiter, minBody int) *NewsAPIAdapter {
	if minBody <= 0 {
		minBody = minBodyLength
	}
	return &NewsAPIAdapter{
		apiKey:     apiKey,
		baseURL:    newsAPIURL,
		httpClient: httpClient,
		limiter:    limiter,
		minBody:    minBody,
	}
}

// Name returns the provider name
func (a *NewsAPIAdapter) Name() string {
	return "newsapi"
}

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Description string `json:"description"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		URL         string `json:"url"`
	} `json:"articles"`
}

// Fetch retrieves articles matching query, dropping any whose body falls
// below the minimum usable length
func (a *NewsAPIAdapter) Fetch(ctx context.Context, query string, count int) ([]model.Article, error) {
	if a.apiKey == "" {
		return nil, nil
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx, a.Name()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	params := url.Values{
		"q":        {query},
		"apiKey":   {a.apiKey},
		"pageSize": {strconv.Itoa(count)},
		"sortBy":   {"publishedAt"},
		"language": {"en"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var data newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var articles []model.Article
	for _, r := range data.Articles {
		raw := r.Content
		if raw == "" {
			raw = r.Description
		}
		text := StripHTML(raw)
		if len(text) < a.minBody {
			continue
		}

		articles = append(articles, model.Article{
			Title:         r.Title,
			Source:        r.Source.Name,
			PublishedDate: model.TruncateDate(r.PublishedAt),
			URL:           r.URL,
			Body:          text,
			Category:      model.DefaultCategory,
		})
	}

	return articles, nil
}
