package news

import (
	"context"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

// Provider is a news search backend: a free-text topic in, a ranked
// list of recent articles out. Providers may fail or return zero
// results; callers decide what to do next.
type Provider interface {
	Search(ctx context.Context, topic, lang string, limit int) ([]model.NewsItem, error)
	Name() string
}
