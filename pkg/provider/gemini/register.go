package gemini

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
	registry.Register(config.KindGemini, factory)
	registry.RegisterDefaults(config.KindGemini, registry.Defaults{
		Endpoint: "https://generativelanguage.googleapis.com/v1beta",
		Model:    "gemini-2.0-flash",
	})
	registry.SetRequiresAPIKey(config.KindGemini, true)
}
