// Package llm wraps the text-generation backend. The backend contract is
// free-form text in, free-form text out; everything structured is imposed
// by the analyze package on top.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// probePrompt is the trivial prompt used to find a responsive model at startup
const probePrompt = "Reply with the single word: ok"

// Generator is the minimal generation interface consumed by analysis.
// Implementations make exactly one backend call per invocation.
type Generator interface {
	// Generate sends one prompt and returns the raw response text
	Generate(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier selected at startup
	Model() string
}

// Config holds generation backend configuration
type Config struct {
	// APIKey authenticates against the backend
	APIKey string

	// BaseURL points at a custom or self-hosted endpoint (empty: provider default)
	BaseURL string

	// Models is the ordered candidate list tried at startup until one
	// answers the probe prompt
	Models []string

	// Timeout bounds each backend call, in seconds
	Timeout int

	// MaxTokens limits response length
	MaxTokens int
}

// Client is the concrete Generator over an OpenAI-compatible API
type Client struct {
	client    *openai.Client
	model     string
	timeout   time.Duration
	maxTokens int
}

// NewClient builds a client and probes the configured models in order.
// No model answering the probe is a fatal startup condition: the error is
// returned to the caller and never retried.
func NewClient(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generation backend API key is required")
	}
	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("at least one candidate model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1500
	}

	c := &Client{
		client:    openai.NewClientWithConfig(clientConfig),
		timeout:   timeout,
		maxTokens: maxTokens,
	}

	for _, model := range cfg.Models {
		c.model = model
		start := time.Now()
		_, err := c.Generate(ctx, probePrompt)
		if err != nil {
			log.Debug("model probe failed",
				"model", model,
				"elapsed", time.Since(start),
				"error", err)
			continue
		}
		log.Info("generation backend ready", "model", model, "elapsed", time.Since(start))
		return c, nil
	}

	return nil, fmt.Errorf("no candidate model responded (tried %s)", strings.Join(cfg.Models, ", "))
}

// Model returns the model identifier selected at startup
func (c *Client) Model() string {
	return c.model
}

// Generate sends a single prompt to the backend and returns the raw
// response text. One call, no retries; timeouts surface as errors for the
// caller's fallback handling.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("generation API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
