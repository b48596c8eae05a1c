// Package copilot binds the Copilot service kind to GitHub's Copilot chat
// API. Authentication is token-based: the service entry's api_key holds the
// bearer token obtained via GitHubTokenProvider, not a user-entered key.
package copilot

import (
	"context"
	"errors"
	"strings"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/openai_compat"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

const (
	apiBase       = "https://api.githubcopilot.com"
	editorVersion = "git-commit-helper/1.0.0"
)

func factory(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (ai.Completer, error) {
	if strings.TrimSpace(svc.APIKey) == "" {
		return nil, errors.New("Copilot bearer token is missing; re-run the Copilot setup")
	}
	base := svc.APIEndpoint
	if base == "" {
		base = apiBase
	}
	headers := map[string]string{
		"Editor-Version": editorVersion,
	}
	return openai_compat.NewCompatClient("Copilot", svc.APIKey, svc.Model, base, cfg.MaxTokens, headers), nil
}

func init() {
	registry.Register(config.KindCopilot, factory)
	// No endpoint default on purpose: Copilot is token-based and the client
	// falls back to the Copilot API host itself.
	registry.RegisterDefaults(config.KindCopilot, registry.Defaults{
		Model: "copilot-chat",
	})
	registry.SetRequiresAPIKey(config.KindCopilot, false)
}
