package summary

import (
	"fmt"
	"strings"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

// fallbackPolicy drives the extractive formatter for one style: how
// many items to show, how hard to clamp titles, and the surrounding
// header/footer text.
type fallbackPolicy struct {
	maxItems   int
	clampWords int
	marker     string
	header     string
	footer     string
}

var fallbackPolicies = map[model.SummaryStyle]fallbackPolicy{
	model.StyleHeadlineFirst: {
		maxItems:   8,
		clampWords: 12,
		marker:     "[%d] %s — %s » %s",
		header:     "Headlines digest (%s) — top %d item(s):",
		footer:     "— End of headlines —",
	},
	model.StyleKeyPoints: {
		maxItems:   8,
		clampWords: 18,
		marker:     "[%d] %s — %s · %s » %s",
		header:     "Key points (%s) — facts & dates across %d item(s):",
		footer:     "— End of key points —",
	},
	model.StyleRisks: {
		maxItems:   6,
		clampWords: 14,
		marker:     "⚠ [%d] %s — %s » %s",
		header:     "⚠ Risk scan (%s) — review of %d item(s):",
		footer:     "— Risk scan complete —",
	},
	model.StyleBalanced: {
		maxItems:   10,
		clampWords: 16,
		marker:     "[%d] %s — %s » %s",
		header:     "Balanced summary (%s) — %d item(s):",
		footer:     "— End of summary —",
	},
}

// FormatExtractive renders items into a deterministic plain-text
// digest. It makes no external calls and cannot fail for non-empty
// input, which is what makes it safe as the last fallback tier.
func FormatExtractive(items []model.NewsItem, lang string, style model.SummaryStyle) string {
	policy, ok := fallbackPolicies[style]
	if !ok {
		policy = fallbackPolicies[model.StyleBalanced]
	}

	if len(items) > policy.maxItems {
		items = items[:policy.maxItems]
	}

	lines := make([]string, len(items))
	for i, item := range items {
		title := clampWords(item.Title, policy.clampWords)
		if style == model.StyleKeyPoints {
			date := model.ShortDate(item.PublishedAt)
			if date == "" {
				date = item.PublishedAt
			}
			lines[i] = fmt.Sprintf(policy.marker, i+1, title, item.Source, date, item.URL)
		} else {
			lines[i] = fmt.Sprintf(policy.marker, i+1, title, item.Source, item.URL)
		}
	}

	header := fmt.Sprintf(policy.header, lang, len(items))
	return header + "\n\n" + strings.Join(lines, "\n") + "\n\n" + policy.footer
}

func clampWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:max], " ") + "…"
}
