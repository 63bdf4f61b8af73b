package model

import "time"

// NewsItem is one article as returned by a search provider. PublishedAt
// stays a string on the wire (ISO-8601 from most providers).
type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// Usable reports whether the item carries everything the summarizer
// needs. Items failing this are dropped before prompting.
func (n NewsItem) Usable() bool {
	return n.Title != "" && n.URL != "" && n.Source != "" && n.PublishedAt != ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// ShortDate re-emits a timestamp string as YYYY-MM-DD, or "" if it
// cannot be parsed.
func ShortDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
