package llm

import (
	"fmt"
	"strings"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
)

type Prompt struct {
	System     string
	User       string
	ExpectJSON bool
}

const maxPromptItems = 25
const maxTitleChars = 180

const textSystemPrompt = `You are a news editor. You turn a list of recent news articles into a short, neutral digest for a reader in a hurry.

Rules:
- Never copy headlines verbatim; lightly rewrite them
- Keep all facts: numbers, names, dates, percentages
- Respond in the requested language
- Plain text only, no markdown fencing`

const jsonSystemPrompt = `You are a news editor producing machine-readable digests. You respond with a single JSON document and nothing else.

Rules:
- Never copy headlines verbatim; lightly rewrite them
- Every block MUST carry a non-empty "url" taken from the article list
- Never embed "Read more" text anywhere; the url field alone carries the link
- All string values MUST be in the requested language
- Do NOT wrap the JSON in a markdown code block; output the raw JSON only`

const jsonSchemaText = `{
  "ok": true,
  "style": "<style>",
  "lang": "<lang>",
  "header": "one-line digest title",
  "intro": "optional short intro",
  "outro": "optional short outro",
  "blocks": [
    {
      "kind": "headline|keyPoint|risk|balanced",
      "idx": 1,
      "title": "rewritten headline",
      "url": "article url",
      "source": "publisher",
      "date": "YYYY-MM-DD",
      "facts": ["up to 2 concrete facts, keyPoint blocks only"]
    }
  ]
}`

func textStyleRules(style model.SummaryStyle) string {
	switch style {
	case model.StyleHeadlineFirst:
		return "Write 5-8 short bullets, one per story, at most 14 words each. No commentary, headlines only."
	case model.StyleKeyPoints:
		return "Write 4-7 bullets. Every bullet must carry a concrete fact: a number, a percentage or a date."
	case model.StyleRisks:
		return "Write 3-6 bullets covering only risk and uncertainty signals: warnings, downturns, investigations, disputes. Keep the tone sober."
	default:
		return "Write 5-9 mixed bullets giving a balanced view across topics and sources, with one short closing line."
	}
}

func jsonStyleRules(style model.SummaryStyle) string {
	switch style {
	case model.StyleHeadlineFirst:
		return `Emit 5-8 blocks of kind "headline", each title at most 14 words, no commentary. Prefer covering different sources over several blocks from one source.`
	case model.StyleKeyPoints:
		return `Emit 4-7 blocks of kind "keyPoint". Every block title must contain a concrete fact (number, % or date); extract up to 2 such facts into the "facts" array.`
	case model.StyleRisks:
		return `Emit 3-6 blocks of kind "risk", restricted to articles carrying risk or uncertainty signals. If the articles carry no real risk signals, still emit the 3-4 most relevant blocks and set "intro" to an explicit notice that risk signals are low.`
	default:
		return `Emit 5-9 blocks of kind "balanced" mixing the main stories. "intro" may summarize how coverage is distributed across sources.`
	}
}

// BuildTextPrompt builds the free-text prompt pair used by the legacy
// plain-text path.
func BuildTextPrompt(items []model.NewsItem, lang string, style model.SummaryStyle) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize these news articles in %s.\n", lang))
	sb.WriteString(textStyleRules(style))
	sb.WriteString("\n\nArticles:\n")
	sb.WriteString(renderItems(items))
	return Prompt{System: textSystemPrompt, User: sb.String()}
}

// BuildJSONPrompt builds the strict-JSON prompt pair used by quality
// mode.
func BuildJSONPrompt(items []model.NewsItem, lang string, style model.SummaryStyle) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Produce a %q digest of these news articles in %s.\n\n", style, lang))
	sb.WriteString("Respond with exactly this JSON shape:\n")
	sb.WriteString(jsonSchemaText)
	sb.WriteString("\n\n")
	sb.WriteString(jsonStyleRules(style))
	sb.WriteString("\n\nArticles:\n")
	sb.WriteString(renderItems(items))
	return Prompt{System: jsonSystemPrompt, User: sb.String(), ExpectJSON: true}
}

func renderItems(items []model.NewsItem) string {
	if len(items) > maxPromptItems {
		items = items[:maxPromptItems]
	}

	var sb strings.Builder
	for i, item := range items {
		title := item.Title
		if len(title) > maxTitleChars {
			title = title[:maxTitleChars]
		}

		sb.WriteString(fmt.Sprintf("%d. %s — %s", i+1, title, item.Source))
		if date := model.ShortDate(item.PublishedAt); date != "" {
			sb.WriteString(" (" + date + ")")
		}
		sb.WriteString(fmt.Sprintf("\n   %s\n", item.URL))
	}
	return sb.String()
}
