package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once at startup and passed by reference into the
// handlers and the summarization service. Pipeline code never reads
// the environment directly.
type Config struct {
	Port        string
	FrontendURL string
	RedisURL    string

	LLMProvider     string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	QualityModel    string

	CacheVersion string
	SummaryTTL   time.Duration
	SearchTTL    time.Duration
	DisableCache bool
	DebugLLM     bool

	RateLimitMax    int
	RateLimitWindow time.Duration

	NewsdataAPIKey string
	FinnhubAPIKey  string

	DefaultMaxItems int
	BatchWorkers    int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		QualityModel:    getEnv("QUALITY_MODEL", "gpt-4.1-mini"),

		CacheVersion: getEnv("CACHE_VERSION", "1"),
		SummaryTTL:   getSeconds("SUMMARY_CACHE_TTL", 300),
		SearchTTL:    getSeconds("SEARCH_CACHE_TTL", 120),
		DisableCache: getBool("DISABLE_CACHE"),
		DebugLLM:     getBool("DEBUG_LLM"),

		RateLimitMax:    getInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: getSeconds("RATE_LIMIT_WINDOW", 60),

		NewsdataAPIKey: os.Getenv("NEWSDATA_API_KEY"),
		FinnhubAPIKey:  os.Getenv("FINNHUB_API_KEY"),

		DefaultMaxItems: getInt("DEFAULT_MAX_ITEMS", 10),
		BatchWorkers:    getInt("BATCH_WORKERS", 3),
	}
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getSeconds(name string, defaultValue int) time.Duration {
	return time.Duration(getInt(name, defaultValue)) * time.Second
}

func getBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
