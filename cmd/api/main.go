package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tonynagyeurope/news-ai-agent/config"
	"github.com/tonynagyeurope/news-ai-agent/db"
	"github.com/tonynagyeurope/news-ai-agent/internal/cache"
	"github.com/tonynagyeurope/news-ai-agent/internal/handler"
	"github.com/tonynagyeurope/news-ai-agent/internal/summary"
	"github.com/tonynagyeurope/news-ai-agent/pkg/llm"
	"github.com/tonynagyeurope/news-ai-agent/pkg/news"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	var store cache.Store
	if cfg.RedisURL != "" {
		client, err := db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			defer client.Close()
			store = cache.NewRedisStore(client)
		}
	} else {
		slog.Info("REDIS_URL not set, running without cache")
	}

	var limiter *cache.Limiter
	if store != nil && cfg.RateLimitMax > 0 {
		limiter = cache.NewLimiter(store, cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	var llmClient llm.Client
	switch {
	case cfg.LLMProvider == "anthropic" && cfg.AnthropicAPIKey != "":
		llmClient = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	case cfg.OpenAIAPIKey != "":
		llmClient = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	default:
		slog.Warn("no LLM API key configured, quality mode will use the extractive fallback")
	}

	var providers []news.Provider
	if cfg.NewsdataAPIKey != "" {
		providers = append(providers, news.NewNewsdataClient(cfg.NewsdataAPIKey))
	}
	if cfg.FinnhubAPIKey != "" {
		providers = append(providers, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if len(providers) == 0 {
		slog.Warn("no news source API keys configured, /search will be unavailable")
	}

	svc := summary.New(cfg, store, llmClient)
	summarizeHandler := handler.NewSummarizeHandler(svc)
	searchHandler := handler.NewSearchHandler(cfg, store, providers)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	limited := r.Group("/", handler.RateLimit(limiter))
	limited.POST("/summarize", summarizeHandler.PostSummarize)
	limited.POST("/summarize/batch", summarizeHandler.PostSummarizeBatch)
	limited.POST("/search", searchHandler.PostSearch)

	r.GET("/health", handler.Health(store))

	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("error starting server", "error", err)
		os.Exit(1)
	}
}
