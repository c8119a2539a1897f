package model

import "time"

// Config holds the complete pipeline configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Providers   ProvidersConfig   `yaml:"providers"`
	LLM         LLMConfig         `yaml:"llm"`
	Categorizer CategorizerConfig `yaml:"categorizer"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Cache       CacheConfig       `yaml:"cache"`
	Storage     StorageConfig     `yaml:"storage"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior shared by all external calls
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	HTTPProxy  string        `yaml:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy"`
	NoProxy    string        `yaml:"no_proxy"`
}

// ProvidersConfig holds news provider credentials.
// An adapter with an empty key is skipped without a network call.
type ProvidersConfig struct {
	EventRegistryKey string `yaml:"event_registry_key"`
	NewsAPIKey       string `yaml:"newsapi_key"`
	MinBodyLength    int    `yaml:"min_body_length"`
}

// LLMConfig configures the generation backend
type LLMConfig struct {
	APIKey    string   `yaml:"api_key"`
	BaseURL   string   `yaml:"base_url"`
	Models    []string `yaml:"models"`  // Tried in order at startup until one answers
	Timeout   int      `yaml:"timeout"` // seconds
	MaxTokens int      `yaml:"max_tokens"`
}

// CategorizerConfig configures the best-effort classification endpoint
type CategorizerConfig struct {
	Endpoint string `yaml:"endpoint"`
	Taxonomy string `yaml:"taxonomy"`
	APIKey   string `yaml:"api_key"`
}

// ConcurrencyConfig bounds parallel external calls
type ConcurrencyConfig struct {
	CategorizeWorkers int `yaml:"categorize_workers"`
	AnalysisWorkers   int `yaml:"analysis_workers"`
}

// RateLimitConfig throttles calls per external endpoint
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CacheConfig controls category-label caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"` // Empty: memory only
	TTL     time.Duration `yaml:"ttl"`
}

// StorageConfig locates the SQLite database
type StorageConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "Neutralwire/0.1 (+https://github.com/neutralwire/neutralwire)",
		},
		Providers: ProvidersConfig{
			MinBodyLength: 100,
		},
		LLM: LLMConfig{
			Models: []string{
				"gpt-4o-mini",
				"gpt-4o",
				"gpt-4.1-mini",
				"gpt-3.5-turbo",
			},
			Timeout:   30,
			MaxTokens: 1500,
		},
		Categorizer: CategorizerConfig{
			Endpoint: "https://analytics.eventregistry.org/api/v1/categorize",
			Taxonomy: "news",
		},
		Concurrency: ConcurrencyConfig{
			CategorizeWorkers: 4,
			AnalysisWorkers:   2,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Storage: StorageConfig{
			Path: "neutralwire.db",
		},
		Output: OutputConfig{
			LogLevel: "info",
		},
	}
}
