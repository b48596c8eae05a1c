package openai

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
		return nil, errors.New("OpenAI API key is required")
	}
	return openai_compat.NewCompatClient("OpenAI", svc.APIKey, svc.Model, svc.APIEndpoint, cfg.MaxTokens, nil), nil
}

func init() {
	registry.Register(config.KindOpenAI, factory)
	registry.RegisterDefaults(config.KindOpenAI, registry.Defaults{
		Endpoint: "https://api.openai.com/v1",
		Model:    "gpt-3.5-turbo",
	})
	registry.SetRequiresAPIKey(config.KindOpenAI, true)
}
