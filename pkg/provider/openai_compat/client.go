// Package openai_compat provides a reusable client for every backend that
// speaks the OpenAI chat-completions protocol (OpenAI, DeepSeek, Grok, Qwen,
// Copilot). It uses the official openai-go SDK with a custom base URL.
package openai_compat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/githelper/git-commit-helper/pkg/ai"
)

type Client struct {
	provider  string
	client    openai.Client
	model     string
	maxTokens int64
}

// NewCompatClient builds a client for the given provider name. Extra headers
// are attached to every request; Copilot uses this for its editor headers.
func NewCompatClient(provider, apiKey, model, baseURL string, maxTokens int64, headers map[string]string) *Client {
	var opts []option.RequestOption
	if strings.TrimSpace(apiKey) != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}
	for k, v := range headers {
		opts = append(opts, option.WithHeader(k, v))
	}
	return &Client{
		provider:  provider,
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(c.model),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%s chat completion failed: %w", c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from " + c.provider)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

var _ ai.Completer = (*Client)(nil)
