package qwen

import (
	"context"
	"errors"
	"strings"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/openai_compat"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

// Qwen is served through DashScope's OpenAI-compatible mode.
func factory(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (ai.Completer, error) {
	if strings.TrimSpace(svc.APIKey) == "" {
		return nil, errors.New("Qwen API key is required")
	}
	return openai_compat.NewCompatClient("Qwen", svc.APIKey, svc.Model, svc.APIEndpoint, cfg.MaxTokens, nil), nil
}

func init() {
	registry.Register(config.KindQwen, factory)
	registry.RegisterDefaults(config.KindQwen, registry.Defaults{
		Endpoint: "https://dashscope.aliyuncs.com/compatible-mode/v1",
		Model:    "qwen-plus",
	})
	registry.SetRequiresAPIKey(config.KindQwen, true)
}
