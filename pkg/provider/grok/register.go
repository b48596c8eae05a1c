package grok

import (
	"context"
	"errors"
	"strings"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/openai_compat"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

func factory(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (ai.Completer, error) {
	if strings.TrimSpace(svc.APIKey) == "" {
		return nil, errors.New("Grok API key is required")
	}
	return openai_compat.NewCompatClient("Grok", svc.APIKey, svc.Model, svc.APIEndpoint, cfg.MaxTokens, nil), nil
}

func init() {
	registry.Register(config.KindGrok, factory)
	registry.RegisterDefaults(config.KindGrok, registry.Defaults{
		Endpoint: "https://api.x.ai/v1",
		Model:    "grok-3-latest",
	})
	registry.SetRequiresAPIKey(config.KindGrok, true)
}
