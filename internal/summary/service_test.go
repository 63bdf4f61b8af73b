package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/tonynagyeurope/news-ai-agent/config"
	"github.com/tonynagyeurope/news-ai-agent/internal/model"
	"github.com/tonynagyeurope/news-ai-agent/pkg/llm"
)

type fakeStore struct {
	data   map[string]string
	gets   int
	sets   int
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.gets++
	if f.getErr != nil {
		return "", false, f.getErr
	}
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Incr(ctx context.Context, key string) (int64, error) { return 1, nil }

func (f *fakeStore) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (f *fakeStore) TTL(ctx context.Context, key string) (time.Duration, bool, error) {
	return 0, false, nil
}

type fakeLLM struct {
	out   string
	err   error
	calls int
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	return f.out, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		QualityModel:    "gpt-4.1-mini",
		CacheVersion:    "1",
		SummaryTTL:      300 * time.Second,
		SearchTTL:       120 * time.Second,
		DefaultMaxItems: 10,
		BatchWorkers:    3,
	}
}

func usableTestItems(n int) []model.NewsItem {
	items := make([]model.NewsItem, n)
	for i := range items {
		items[i] = model.NewsItem{
			Title:       "Chipmaker posts record quarterly revenue",
			URL:         "https://example.com/chip/" + string(rune('a'+i)),
			Source:      "Reuters",
			PublishedAt: "2026-02-26T12:00:00Z",
		}
	}
	return items
}

const validModelJSON = `{
  "ok": true,
  "header": "Tech digest",
  "intro": "Mostly chip coverage.",
  "blocks": [
    {"kind": "balanced", "idx": 1, "title": "Record revenue", "url": "https://example.com/1"},
    {"kind": "balanced", "idx": 2, "title": "New fab announced", "url": "https://example.com/2"},
    {"kind": "balanced", "idx": 3, "title": "Export rules tighten", "url": "https://example.com/3"},
    {"kind": "balanced", "idx": 4, "title": "Shares climb", "url": "https://example.com/4"}
  ]
}`

func TestSummarize_EmptyItems(t *testing.T) {
	svc := New(testConfig(), nil, nil)

	_, err := svc.Summarize(context.Background(), Request{Style: model.StyleBalanced})

	assert.Equal(t, true, errors.Is(err, ErrNoItems))
}

func TestSummarize_NoUsableItems(t *testing.T) {
	svc := New(testConfig(), nil, nil)

	_, err := svc.Summarize(context.Background(), Request{
		Items: []model.NewsItem{{Title: "x"}},
		Style: model.StyleBalanced,
	})

	assert.Equal(t, true, errors.Is(err, ErrNoUsableItems))
}

func TestSummarize_FastMode(t *testing.T) {
	client := &fakeLLM{out: validModelJSON}
	svc := New(testConfig(), nil, client)

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(3),
		Mode:  ModeFast,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Cached)
	assert.Equal(t, ModeFast, result.Payload.Mode)
	assert.Equal(t, 3, result.Payload.Count)
	assert.Equal(t, 0, len(result.Payload.Blocks))
	assert.Equal(t, true, strings.HasPrefix(result.Payload.SummaryText, "Balanced summary (en) — 3 item(s):"))
	// fast mode never touches the model
	assert.Equal(t, 0, client.calls)
}

func TestSummarize_QualityModeSuccess(t *testing.T) {
	client := &fakeLLM{out: validModelJSON}
	svc := New(testConfig(), nil, client)

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(4),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(result.Payload.Blocks))
	assert.Equal(t, "", result.Payload.SummaryText)
	assert.Equal(t, "Tech digest", result.Payload.Header)
	assert.Equal(t, "Mostly chip coverage.", result.Payload.Intro)
	assert.Equal(t, 1, client.calls)
}

func TestSummarize_QualityModeHandlesFencedJSON(t *testing.T) {
	client := &fakeLLM{out: "```json\n" + validModelJSON + "\n```"}
	svc := New(testConfig(), nil, client)

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(4),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(result.Payload.Blocks))
}

func TestSummarize_QualityModeModelFailure(t *testing.T) {
	client := &fakeLLM{err: errors.New("upstream timeout")}
	svc := New(testConfig(), nil, client)

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(3),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	// model failure degrades to extractive text, never an error
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(result.Payload.Blocks))
	assert.NotEqual(t, "", result.Payload.SummaryText)
}

func TestSummarize_QualityModeMalformedJSON(t *testing.T) {
	client := &fakeLLM{out: "sorry, I cannot help with that"}
	svc := New(testConfig(), nil, client)

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(3),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", result.Payload.SummaryText)
}

func TestSummarize_QualityModeNoSurvivingBlocks(t *testing.T) {
	client := &fakeLLM{out: `{"blocks": [{"title": "no url"}, {"title": "also none", "url": ""}]}`}
	svc := New(testConfig(), nil, client)

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(3),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(result.Payload.Blocks))
	assert.NotEqual(t, "", result.Payload.SummaryText)
}

func TestSummarize_NonEmptyContract(t *testing.T) {
	clients := []*fakeLLM{
		{out: validModelJSON},
		{out: "{}"},
		{out: "garbage"},
		{err: errors.New("boom")},
	}

	for _, client := range clients {
		svc := New(testConfig(), nil, client)
		result, err := svc.Summarize(context.Background(), Request{
			Items: usableTestItems(2),
			Mode:  ModeQuality,
			Style: model.StyleKeyPoints,
		})

		assert.Equal(t, nil, err)
		assert.Equal(t, true, result.Payload.HasContent())
	}
}

func TestSummarize_CacheRoundTrip(t *testing.T) {
	store := newFakeStore()
	svc := New(testConfig(), store, &fakeLLM{out: validModelJSON})

	req := Request{
		Items: usableTestItems(4),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	}

	first, err := svc.Summarize(context.Background(), req)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, first.Cached)
	assert.Equal(t, 1, store.sets)

	second, err := svc.Summarize(context.Background(), req)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, second.Cached)
	assert.Equal(t, true, second.Payload.HasContent())
	assert.Equal(t, len(first.Payload.Blocks), len(second.Payload.Blocks))
	// no second write
	assert.Equal(t, 1, store.sets)
}

func TestSummarize_EmptyCachedPayloadTreatedAsMiss(t *testing.T) {
	store := newFakeStore()
	svc := New(testConfig(), store, &fakeLLM{out: validModelJSON})

	req := Request{
		Items: usableTestItems(2),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	}

	first, _ := svc.Summarize(context.Background(), req)
	assert.Equal(t, false, first.Cached)

	// corrupt every entry into a contentless payload
	for key := range store.data {
		store.data[key] = `{"mode":"quality","style":"balanced","count":2,"at":"2026-02-26T12:00:00Z"}`
	}

	healed, err := svc.Summarize(context.Background(), req)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, healed.Cached)
	assert.Equal(t, true, healed.Payload.HasContent())
}

func TestSummarize_CacheDisabled(t *testing.T) {
	store := newFakeStore()
	cfg := testConfig()
	cfg.DisableCache = true
	svc := New(cfg, store, &fakeLLM{out: validModelJSON})

	_, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(2),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, store.gets)
	assert.Equal(t, 0, store.sets)
}

func TestSummarize_CacheErrorsAreNotFatal(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	svc := New(testConfig(), store, &fakeLLM{out: validModelJSON})

	result, err := svc.Summarize(context.Background(), Request{
		Items: usableTestItems(2),
		Mode:  ModeQuality,
		Style: model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Payload.HasContent())
}

func TestSummarize_ClampsToMaxItems(t *testing.T) {
	svc := New(testConfig(), nil, nil)

	result, err := svc.Summarize(context.Background(), Request{
		Items:    usableTestItems(8),
		MaxItems: 3,
		Mode:     ModeFast,
		Style:    model.StyleBalanced,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, result.Payload.Count)
}
