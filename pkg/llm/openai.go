package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	firstAttemptTimeout = 12 * time.Second
	retryTimeout        = 8 * time.Second
	defaultMaxTokens    = 1400
)

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: &client}
}

// Complete runs one chat completion. Newer small models (nano/mini
// families) reject the legacy max_tokens parameter, so the parameter
// name is inferred from the model identifier; if the API still rejects
// it, the call is retried exactly once with the other convention.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	useCompletionParam := strings.Contains(req.Model, "nano") || strings.Contains(req.Model, "mini")

	content, err := c.attempt(ctx, req, useCompletionParam, firstAttemptTimeout)
	if err != nil && isUnsupportedParamError(err) {
		content, err = c.attempt(ctx, req, !useCompletionParam, retryTimeout)
	}
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	return content, nil
}

func (c *OpenAIClient) attempt(ctx context.Context, req Request, useCompletionParam bool, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}
	if useCompletionParam {
		params.MaxCompletionTokens = openai.Int(maxTokens)
	} else {
		params.MaxTokens = openai.Int(maxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

func isUnsupportedParamError(err error) bool {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "max_tokens") && !strings.Contains(msg, "max_completion_tokens") {
		return false
	}
	return strings.Contains(msg, "unsupported") || strings.Contains(msg, "not supported")
}
