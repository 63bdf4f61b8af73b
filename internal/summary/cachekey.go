package summary

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

type keyItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type keyPayload struct {
	Version  string             `json:"v"`
	Lang     string             `json:"lang"`
	MaxItems int                `json:"maxItems"`
	Mode     string             `json:"mode"`
	Style    model.SummaryStyle `json:"style"`
	Items    []keyItem          `json:"items"`
}

// DeriveCacheKey fingerprints a summarization request. Items are
// projected to {title, url} and sorted so that two requests with the
// same articles in a different order map to the same key. The version
// tag is part of the key, so bumping it makes all older entries
// unreachable.
func DeriveCacheKey(version, lang string, maxItems int, mode string, style model.SummaryStyle, items []model.NewsItem) string {
	projected := make([]keyItem, len(items))
	for i, item := range items {
		projected[i] = keyItem{Title: item.Title, URL: item.URL}
	}
	sort.SliceStable(projected, func(i, j int) bool {
		return projected[i].URL+projected[i].Title < projected[j].URL+projected[j].Title
	})

	canonical, _ := json.Marshal(keyPayload{
		Version:  version,
		Lang:     lang,
		MaxItems: maxItems,
		Mode:     mode,
		Style:    style,
		Items:    projected,
	})

	digest := sha256.Sum256(canonical)
	return fmt.Sprintf("summ:v%s:%x", version, digest)
}
