package summary

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tonynagyeurope/news-ai-agent/config"
	"github.com/tonynagyeurope/news-ai-agent/internal/cache"
	"github.com/tonynagyeurope/news-ai-agent/internal/model"
	"github.com/tonynagyeurope/news-ai-agent/pkg/llm"
)

const (
	ModeFast    = "fast"
	ModeQuality = "quality"

	maxItemsCap = 25

	// Last-resort text when both the model and the extractive
	// formatter produced nothing. Never cached.
	placeholderSummary = "No summary could be produced for the provided articles."
)

var (
	ErrNoItems       = errors.New("no items provided")
	ErrNoUsableItems = errors.New("no usable items after normalization")
)

type Request struct {
	Items    []model.NewsItem
	Lang     string
	MaxItems int
	Mode     string
	Style    model.SummaryStyle
}

type Result struct {
	Payload model.SummaryPayload
	Cached  bool
}

// Service runs the summarization pipeline: cache lookup, model call
// for quality mode, normalization, extractive fallback, cache write.
// Both store and client may be nil; the pipeline degrades rather than
// fails.
type Service struct {
	cfg    *config.Config
	store  cache.Store
	client llm.Client
}

func New(cfg *config.Config, store cache.Store, client llm.Client) *Service {
	return &Service{cfg: cfg, store: store, client: client}
}

func (s *Service) Summarize(ctx context.Context, req Request) (*Result, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	lang := req.Lang
	if lang == "" {
		lang = "en"
	}
	mode := req.Mode
	if mode != ModeFast {
		mode = ModeQuality
	}
	maxItems := req.MaxItems
	if maxItems <= 0 {
		maxItems = s.cfg.DefaultMaxItems
	}
	if maxItems > maxItemsCap {
		maxItems = maxItemsCap
	}

	items := usableItems(req.Items, maxItems)
	if len(items) == 0 {
		return nil, ErrNoUsableItems
	}

	key := DeriveCacheKey(s.cfg.CacheVersion, lang, maxItems, mode, req.Style, items)

	if cached, ok := s.cacheLookup(ctx, key); ok {
		return &Result{Payload: *cached, Cached: true}, nil
	}

	payload := model.SummaryPayload{
		Mode:  mode,
		Style: req.Style,
		Count: len(items),
		At:    time.Now().UTC().Format(time.RFC3339),
	}

	if mode == ModeQuality {
		s.fillFromModel(ctx, &payload, items, lang, req.Style)
	}

	if len(payload.Blocks) == 0 {
		payload.SummaryText = FormatExtractive(items, lang, req.Style)
	}
	if !payload.HasContent() {
		payload.SummaryText = placeholderSummary
	}

	s.cacheWrite(ctx, key, payload)

	return &Result{Payload: payload}, nil
}

// fillFromModel runs the quality path. Any failure — transport error,
// malformed JSON, no surviving blocks — leaves the payload untouched
// so the caller falls through to the extractive formatter.
func (s *Service) fillFromModel(ctx context.Context, payload *model.SummaryPayload, items []model.NewsItem, lang string, style model.SummaryStyle) {
	if s.client == nil {
		return
	}

	prompt := llm.BuildJSONPrompt(items, lang, style)
	raw, err := s.client.Complete(ctx, llm.Request{
		Model:  s.cfg.QualityModel,
		System: prompt.System,
		User:   prompt.User,
	})
	if err != nil {
		if s.cfg.DebugLLM {
			slog.Warn("model call failed, falling back", "error", err)
		}
		return
	}

	var parsed struct {
		Header string           `json:"header"`
		Intro  string           `json:"intro"`
		Outro  string           `json:"outro"`
		Blocks []map[string]any `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &parsed); err != nil {
		if s.cfg.DebugLLM {
			slog.Warn("model returned unparsable JSON, falling back", "error", err)
		}
		return
	}

	blocks := NormalizeBlocks(parsed.Blocks, style)
	if len(blocks) == 0 {
		if s.cfg.DebugLLM {
			slog.Warn("model returned no usable blocks, falling back")
		}
		return
	}

	payload.Blocks = blocks
	payload.Header = strings.TrimSpace(parsed.Header)
	payload.Intro = strings.TrimSpace(parsed.Intro)
	payload.Outro = strings.TrimSpace(parsed.Outro)
}

// cacheLookup returns a stored payload, re-validated against the
// non-empty contract: an empty cached payload is treated as a miss so
// a bad entry heals itself instead of being served.
func (s *Service) cacheLookup(ctx context.Context, key string) (*model.SummaryPayload, bool) {
	if s.store == nil || s.cfg.DisableCache {
		return nil, false
	}

	val, ok, err := s.store.Get(ctx, key)
	if err != nil {
		slog.Warn("cache read failed, treating as miss", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var payload model.SummaryPayload
	if err := json.Unmarshal([]byte(val), &payload); err != nil {
		slog.Warn("cache entry malformed, treating as miss", "key", key, "error", err)
		return nil, false
	}
	if !payload.HasContent() {
		return nil, false
	}
	return &payload, true
}

// cacheWrite persists the payload best-effort. Payloads without real
// content are never written, so placeholders cannot poison future
// lookups.
func (s *Service) cacheWrite(ctx context.Context, key string, payload model.SummaryPayload) {
	if s.store == nil || s.cfg.DisableCache || !payload.HasContent() {
		return
	}
	if payload.SummaryText == placeholderSummary {
		return
	}

	val, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.store.SetEx(ctx, key, string(val), s.cfg.SummaryTTL); err != nil {
		slog.Warn("cache write failed, ignoring", "error", err)
	}
}

func usableItems(items []model.NewsItem, max int) []model.NewsItem {
	var usable []model.NewsItem
	for _, item := range items {
		if item.Usable() {
			usable = append(usable, item)
		}
		if len(usable) == max {
			break
		}
	}
	return usable
}
