package deepseek

import (
	"context"
	"errors"
	"strings"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/openai_compat"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

// DeepSeek exposes an OpenAI-compatible API; only the endpoint and model
// defaults differ.
func factory(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (ai.Completer, error) {
	if strings.TrimSpace(svc.APIKey) == "" {
		return nil, errors.New("DeepSeek API key is required")
	}
	return openai_compat.NewCompatClient("DeepSeek", svc.APIKey, svc.Model, svc.APIEndpoint, cfg.MaxTokens, nil), nil
}

func init() {
	registry.Register(config.KindDeepSeek, factory)
	registry.RegisterDefaults(config.KindDeepSeek, registry.Defaults{
		Endpoint: "https://api.deepseek.com/v1",
		Model:    "deepseek-chat",
	})
	registry.SetRequiresAPIKey(config.KindDeepSeek, true)
}
