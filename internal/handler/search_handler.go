package handler

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonynagyeurope/news-ai-agent/config"
	"github.com/tonynagyeurope/news-ai-agent/internal/cache"
	"github.com/tonynagyeurope/news-ai-agent/internal/model"
	"github.com/tonynagyeurope/news-ai-agent/pkg/news"
)

const maxSearchLimit = 25

type SearchHandler struct {
	cfg       *config.Config
	store     cache.Store
	providers []news.Provider
}

func NewSearchHandler(cfg *config.Config, store cache.Store, providers []news.Provider) *SearchHandler {
	return &SearchHandler{cfg: cfg, store: store, providers: providers}
}

type cachedSearch struct {
	Provider string           `json:"provider"`
	Items    []model.NewsItem `json:"items"`
}

func (h *SearchHandler) PostSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "topic is required",
			"hint":  `send {"topic": "...", "lang": "en", "limit": 10}`,
		})
		return
	}

	if req.Lang == "" {
		req.Lang = "en"
	}
	if req.Limit <= 0 {
		req.Limit = h.cfg.DefaultMaxItems
	}
	if req.Limit > maxSearchLimit {
		req.Limit = maxSearchLimit
	}

	if len(h.providers) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "no news provider configured"})
		return
	}

	key := h.searchKey(req)

	if entry, ok := h.cacheLookup(c, key); ok {
		c.JSON(http.StatusOK, SearchResponse{
			OK:       true,
			Cached:   true,
			Provider: entry.Provider,
			Count:    len(entry.Items),
			Items:    entry.Items,
		})
		return
	}

	var items []model.NewsItem
	var providerName string
	for _, p := range h.orderedProviders(req.Topic) {
		found, err := p.Search(c.Request.Context(), req.Topic, req.Lang, req.Limit)
		if err != nil {
			slog.Warn("provider search failed", "provider", p.Name(), "error", err)
			continue
		}
		if len(found) == 0 {
			continue
		}
		items, providerName = found, p.Name()
		break
	}

	if providerName == "" {
		providerName = h.providers[0].Name()
	}
	if items == nil {
		items = []model.NewsItem{}
	}

	if len(items) > 0 {
		h.cacheWrite(c, key, cachedSearch{Provider: providerName, Items: items})
	}

	c.JSON(http.StatusOK, SearchResponse{
		OK:       true,
		Provider: providerName,
		Count:    len(items),
		Items:    items,
	})
}

// orderedProviders prefers the market-news provider when the topic
// looks like a ticker symbol.
func (h *SearchHandler) orderedProviders(topic string) []news.Provider {
	if !news.LooksLikeTicker(topic) {
		return h.providers
	}

	ordered := make([]news.Provider, 0, len(h.providers))
	for _, p := range h.providers {
		if _, ok := p.(*news.FinnHubClient); ok {
			ordered = append([]news.Provider{p}, ordered...)
		} else {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

func (h *SearchHandler) searchKey(req SearchRequest) string {
	digest := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", req.Topic, req.Lang, req.Limit)))
	return fmt.Sprintf("search:v%s:%x", h.cfg.CacheVersion, digest)
}

func (h *SearchHandler) cacheLookup(c *gin.Context, key string) (*cachedSearch, bool) {
	if h.store == nil || h.cfg.DisableCache {
		return nil, false
	}
	val, ok, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		slog.Warn("search cache read failed, treating as miss", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var entry cachedSearch
	if err := json.Unmarshal([]byte(val), &entry); err != nil || len(entry.Items) == 0 {
		return nil, false
	}
	return &entry, true
}

func (h *SearchHandler) cacheWrite(c *gin.Context, key string, entry cachedSearch) {
	if h.store == nil || h.cfg.DisableCache {
		return
	}
	val, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := h.store.SetEx(c.Request.Context(), key, string(val), h.cfg.SearchTTL); err != nil {
		slog.Warn("search cache write failed, ignoring", "error", err)
	}
}
