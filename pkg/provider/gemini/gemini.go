// Package gemini binds the Gemini service kind to the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/githelper/git-commit-helper/pkg/ai"
)

type Client struct {
	apiKey    string
	model     string
	baseURL   string
	maxTokens int64
}

func NewClient(apiKey, model, baseURL string, maxTokens int64) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("Gemini API key is required")
	}
	return &Client{apiKey: apiKey, model: model, baseURL: baseURL, maxTokens: maxTokens}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	cc := &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(c.baseURL) != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(c.baseURL, "/")}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("error creating Gemini client: %w", err)
	}

	var gc *genai.GenerateContentConfig
	if c.maxTokens > 0 {
		gc = &genai.GenerateContentConfig{MaxOutputTokens: int32(c.maxTokens)}
	}
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), gc)
	if err != nil {
		return "", fmt.Errorf("Gemini generate content failed: %w", err)
	}
	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", errors.New("no response from Gemini")
	}
	return out, nil
}

var _ ai.Completer = (*Client)(nil)
