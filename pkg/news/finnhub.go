package news

import (
	"context"
	"regexp"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

var tickerPattern = regexp.MustCompile(`^[A-Za-z]{1,5}$`)

// LooksLikeTicker reports whether a topic is plausibly a stock symbol,
// which routes the search to the market-news provider.
func LooksLikeTicker(topic string) bool {
	return tickerPattern.MatchString(strings.TrimSpace(topic))
}

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// Search treats the topic as a ticker symbol and pulls company news
// from the last week.
func (c *FinnHubClient) Search(ctx context.Context, topic, lang string, limit int) ([]model.NewsItem, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -7)

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(strings.ToUpper(strings.TrimSpace(topic))).
		From(from.Format("2006-01-02")).
		To(now.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, err
	}

	var items []model.NewsItem
	for _, n := range res {
		if len(items) == limit {
			break
		}

		item := model.NewsItem{}
		if n.Headline != nil {
			item.Title = *n.Headline
		}
		if n.Url != nil {
			item.URL = *n.Url
		}
		if n.Source != nil {
			item.Source = *n.Source
		}
		if n.Datetime != nil {
			item.PublishedAt = time.Unix(*n.Datetime, 0).UTC().Format(time.RFC3339)
		}

		if item.Title == "" || item.URL == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
