package summary

import (
	"strings"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

var kindAliases = map[string]string{
	"headline":      model.KindHeadline,
	"headlinefirst": model.KindHeadline,
	"keypoint":      model.KindKeyPoint,
	"keypoints":     model.KindKeyPoint,
	"risk":          model.KindRisk,
	"risks":         model.KindRisk,
	"balanced":      model.KindBalanced,
}

// NormalizeBlocks repairs an untrusted block array from the model into
// strict SummaryBlocks. A candidate without a url is dropped; every
// other field is defaulted or cleaned. Returns nil when nothing
// survives, signalling the caller to fall back.
func NormalizeBlocks(raw []map[string]any, style model.SummaryStyle) []model.SummaryBlock {
	var blocks []model.SummaryBlock

	for i, candidate := range raw {
		url := strings.TrimSpace(asString(candidate["url"]))
		if url == "" {
			// The only hard rejection: a block without a link is useless.
			continue
		}

		title := strings.TrimSpace(asString(candidate["title"]))
		if title == "" {
			title = "Untitled"
		}

		idx := i + 1
		if v, ok := asInt(candidate["idx"]); ok && v > 0 {
			idx = v
		}

		kind, ok := kindAliases[canonicalKind(asString(candidate["kind"]))]
		if !ok {
			kind = model.DefaultKind(style)
		}

		block := model.SummaryBlock{
			Kind:   kind,
			Idx:    idx,
			Title:  title,
			URL:    url,
			Source: strings.TrimSpace(asString(candidate["source"])),
		}

		// Unparsable dates are dropped, never passed through malformed.
		if date := asString(candidate["date"]); date != "" {
			block.Date = model.ShortDate(date)
		}

		if facts, ok := candidate["facts"].([]any); ok {
			for _, f := range facts {
				if s := strings.TrimSpace(asString(f)); s != "" {
					block.Facts = append(block.Facts, s)
				}
			}
			if len(block.Facts) > 2 {
				block.Facts = block.Facts[:2]
			}
		}

		blocks = append(blocks, block)
	}

	return blocks
}

func canonicalKind(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) (int, bool) {
	// JSON numbers decode as float64.
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
