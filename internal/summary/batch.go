package summary

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
	"github.com/tonynagyeurope/news-ai-agent/pkg/llm"
)

const (
	defaultBatchWorkers = 3
	maxBatchWorkers     = 8
)

type BatchItem struct {
	Idx     int    `json:"idx"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

const batchSystemPrompt = `You are a news editor. Rewrite the given headline and source into one neutral, factual sentence in the requested language. Respond with the sentence only, no quotes, no markdown.`

// SummarizeEach summarizes every item independently on a small worker
// pool. Workers pull indices from a shared counter and write into the
// result slot matching the item's original position, so output order
// always matches input order regardless of completion order.
func (s *Service) SummarizeEach(ctx context.Context, items []model.NewsItem, lang, mode string) []BatchItem {
	if lang == "" {
		lang = "en"
	}

	results := make([]BatchItem, len(items))

	workers := s.cfg.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	if workers > maxBatchWorkers {
		workers = maxBatchWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(items) {
					return
				}
				results[i] = s.summarizeOne(ctx, items[i], lang, mode, i)
			}
		}()
	}
	wg.Wait()

	return results
}

func (s *Service) summarizeOne(ctx context.Context, item model.NewsItem, lang, mode string, idx int) BatchItem {
	result := BatchItem{
		Idx:   idx + 1,
		Title: item.Title,
		URL:   item.URL,
	}

	if mode == ModeQuality && s.client != nil {
		out, err := s.client.Complete(ctx, llm.Request{
			Model:     s.cfg.QualityModel,
			System:    batchSystemPrompt,
			User:      "Language: " + lang + "\nHeadline: " + item.Title + "\nSource: " + item.Source,
			MaxTokens: 120,
		})
		if err == nil {
			if line := strings.TrimSpace(out); line != "" {
				result.Summary = line
				return result
			}
		}
	}

	result.Summary = clampWords(item.Title, 16) + " — " + item.Source
	return result
}
