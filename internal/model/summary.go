package model

import "strings"

type SummaryStyle string

const (
	StyleBalanced      SummaryStyle = "balanced"
	StyleHeadlineFirst SummaryStyle = "headline-first"
	StyleKeyPoints     SummaryStyle = "key-points"
	StyleRisks         SummaryStyle = "risks"
)

// NormalizeStyle maps free-form input onto the closed style set,
// defaulting to balanced.
func NormalizeStyle(s string) SummaryStyle {
	switch SummaryStyle(strings.ToLower(strings.TrimSpace(s))) {
	case StyleHeadlineFirst:
		return StyleHeadlineFirst
	case StyleKeyPoints:
		return StyleKeyPoints
	case StyleRisks:
		return StyleRisks
	default:
		return StyleBalanced
	}
}

const (
	KindHeadline = "headline"
	KindKeyPoint = "keyPoint"
	KindRisk     = "risk"
	KindBalanced = "balanced"
)

// DefaultKind is the block kind implied by a style when the model
// omits or mangles the kind field.
func DefaultKind(style SummaryStyle) string {
	switch style {
	case StyleHeadlineFirst:
		return KindHeadline
	case StyleKeyPoints:
		return KindKeyPoint
	case StyleRisks:
		return KindRisk
	default:
		return KindBalanced
	}
}

// SummaryBlock is one structured unit of summarized content tied to a
// single source article. A block without a URL is invalid and never
// leaves the normalizer.
type SummaryBlock struct {
	Kind   string   `json:"kind"`
	Idx    int      `json:"idx"`
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Source string   `json:"source,omitempty"`
	Date   string   `json:"date,omitempty"`
	Facts  []string `json:"facts,omitempty"`
}

// SummaryPayload is the unit persisted to cache and returned to the
// caller.
type SummaryPayload struct {
	Mode        string         `json:"mode"`
	Style       SummaryStyle   `json:"style"`
	Count       int            `json:"count"`
	SummaryText string         `json:"summaryText,omitempty"`
	Header      string         `json:"header,omitempty"`
	Intro       string         `json:"intro,omitempty"`
	Outro       string         `json:"outro,omitempty"`
	Blocks      []SummaryBlock `json:"blocks,omitempty"`
	At          string         `json:"at"`
}

// HasContent reports whether the payload satisfies the minimal
// non-empty contract: a cacheable payload needs real text or at least
// one block.
func (p SummaryPayload) HasContent() bool {
	return strings.TrimSpace(p.SummaryText) != "" || len(p.Blocks) > 0
}
