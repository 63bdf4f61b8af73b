package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

type NewsdataClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsdataClient(apiKey string) *NewsdataClient {
	return &NewsdataClient{
		apiKey:     apiKey,
		baseURL:    "https://newsdata.io/api/1/latest",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsdataClient) Name() string {
	return "Newsdata"
}

func (c *NewsdataClient) Search(ctx context.Context, topic, lang string, limit int) ([]model.NewsItem, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("q", topic)
	query.Set("language", lang)
	query.Set("size", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsdata status %d", resp.StatusCode)
	}

	var raw newsdataResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsdata decode: %w", err)
	}

	items := make([]model.NewsItem, 0, len(raw.Results))
	for _, r := range raw.Results {
		if r.Title == "" || r.Link == "" {
			continue
		}

		publishedAt := ""
		if t, err := time.Parse("2006-01-02 15:04:05", r.PubDate); err == nil {
			publishedAt = t.UTC().Format(time.RFC3339)
		}

		source := r.SourceName
		if source == "" {
			source = r.SourceID
		}

		items = append(items, model.NewsItem{
			Title:       r.Title,
			URL:         r.Link,
			Source:      source,
			PublishedAt: publishedAt,
		})
	}

	return items, nil
}

type newsdataResponse struct {
	Results []newsdataResult `json:"results"`
}

type newsdataResult struct {
	Title      string `json:"title"`
	Link       string `json:"link"`
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	PubDate    string `json:"pubDate"`
}
