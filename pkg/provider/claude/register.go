package claude

import (
	"context"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

func factory(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (ai.Completer, error) {
	return NewClient(svc.APIKey, svc.Model, svc.APIEndpoint, cfg.MaxTokens)
}

func init() {
	registry.Register(config.KindClaude, factory)
	registry.RegisterDefaults(config.KindClaude, registry.Defaults{
		Endpoint: "https://api.anthropic.com/v1",
		Model:    "claude-3-sonnet-20240229",
	})
	registry.SetRequiresAPIKey(config.KindClaude, true)
}
