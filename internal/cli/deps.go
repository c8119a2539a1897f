package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/neutralwire/neutralwire/internal/analyze"
	"github.com/neutralwire/neutralwire/internal/cache"
	"github.com/neutralwire/neutralwire/internal/category"
	"github.com/neutralwire/neutralwire/internal/llm"
	"github.com/neutralwire/neutralwire/internal/logger"
	"github.com/neutralwire/neutralwire/internal/model"
	"github.com/neutralwire/neutralwire/internal/news"
	"github.com/neutralwire/neutralwire/internal/pipeline"
	"github.com/neutralwire/neutralwire/internal/store"
	"github.com/neutralwire/neutralwire/internal/util"
	"github.com/neutralwire/neutralwire/internal/worker"
)

// loadConfig builds the effective configuration: defaults, overlaid by the
// viper config file, overlaid by dedicated credential env vars.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetDuration("http.timeout"); v > 0 {
		cfg.HTTP.Timeout = v
	}
	if v := viper.GetString("http.user_agent"); v != "" {
		cfg.HTTP.UserAgent = v
	}
	if v := viper.GetString("storage.path"); v != "" {
		cfg.Storage.Path = v
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetStringSlice("llm.models"); len(v) > 0 {
		cfg.LLM.Models = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetString("output.log_level"); v != "" {
		cfg.Output.LogLevel = v
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Output.LogLevel = "debug"
	}

	// Credentials come from dedicated env vars, never the config file
	cfg.Providers.EventRegistryKey = os.Getenv("NEWSAPI_AI_KEY")
	cfg.Providers.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")

	// The classification endpoint accepts either provider key
	cfg.Categorizer.APIKey = cfg.Providers.EventRegistryKey
	if cfg.Categorizer.APIKey == "" {
		cfg.Categorizer.APIKey = cfg.Providers.NewsAPIKey
	}

	return cfg
}

// newAcquisition builds the coordinator and categorizer shared by every
// command. withFilter selects the content-only quality pass.
func newAcquisition(cfg *model.Config, withFilter bool, log *slog.Logger) (*news.Coordinator, *category.Categorizer) {
	httpClient := util.NewHTTPClient(cfg.HTTP)
	limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	adapters := []news.Adapter{
		news.NewEventRegistryAdapter(cfg.Providers.EventRegistryKey, httpClient, limiter, cfg.Providers.MinBodyLength),
		news.NewNewsAPIAdapter(cfg.Providers.NewsAPIKey, httpClient, limiter, cfg.Providers.MinBodyLength),
	}

	var filter *news.QualityFilter
	if withFilter {
		filter = news.NewQualityFilter()
	}

	coordinator := news.NewCoordinator(adapters, filter, log)
	categorizer := category.New(cfg.Categorizer, httpClient, limiter, cache.New(cfg.Cache), cfg.Concurrency.CategorizeWorkers, log)

	return coordinator, categorizer
}

// newOrchestrator constructs the generation backend and analysis stack.
// A missing credential or an unresponsive model is a fatal startup error.
func newOrchestrator(ctx context.Context, cfg *model.Config, log *slog.Logger) (*analyze.Orchestrator, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	gen, err := llm.NewClient(ctx, llm.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Models:    cfg.LLM.Models,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("initialize generation backend: %w", err)
	}

	analyzer := analyze.NewAnalyzer(gen, log)
	return analyze.NewOrchestrator(analyzer, gen, log), nil
}

// newFullPipeline assembles the persistence variant: unfiltered
// acquisition, SQLite store, and the analysis stack.
func newFullPipeline(ctx context.Context, cfg *model.Config) (*pipeline.Pipeline, func(), error) {
	log := logger.New(cfg.Output.LogLevel)

	coordinator, categorizer := newAcquisition(cfg, false, log)

	orchestrator, err := newOrchestrator(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	cleanup := func() { _ = st.Close() }

	p := pipeline.New(coordinator, categorizer, orchestrator, st, cfg.Concurrency.AnalysisWorkers, log)
	return p, cleanup, nil
}
