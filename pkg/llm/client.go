package llm

import (
	"context"
	"strings"
)

type Request struct {
	Model     string
	System    string
	User      string
	MaxTokens int64
}

// Client is a chat completion backend. Complete returns the raw model
// text; callers are responsible for parsing it.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CleanJSONResponse strips markdown fencing and surrounding prose from
// a model response that is supposed to be a bare JSON document.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
