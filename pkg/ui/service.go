package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/flow"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

// ServicePrompter gathers service fields interactively. For Copilot the API
// key is not asked for: the bearer token comes from the injected
// TokenProvider.
type ServicePrompter struct {
	Tokens ai.TokenProvider
}

// NewService prompts for all fields of a fresh entry of the given kind.
func (p *ServicePrompter) NewService(kind config.ServiceKind) (config.ServiceConfig, error) {
	return p.EditService(config.ServiceConfig{Service: kind})
}

// EditService prompts for the fields of svc, pre-filling current values.
// Empty answers for endpoint and model mean "use the builtin default".
func (p *ServicePrompter) EditService(svc config.ServiceConfig) (config.ServiceConfig, error) {
	defaults, _ := registry.GetDefaults(svc.Service)

	if svc.Service == config.KindCopilot {
		fmt.Println("Copilot requires GitHub authentication...")
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		token, err := p.Tokens.GetToken(ctx)
		if err != nil {
			return config.ServiceConfig{}, fmt.Errorf("failed to obtain GitHub Copilot token: %w", err)
		}
		svc.APIKey = token

		model, err := Input(fmt.Sprintf("Model (empty for default [%s])", defaults.Model), svc.Model, true)
		if err != nil {
			return config.ServiceConfig{}, err
		}
		svc.Model = model
		return svc, nil
	}

	apiKey, err := Input("API Key", svc.APIKey, false)
	if err != nil {
		return config.ServiceConfig{}, err
	}
	endpoint, err := Input(fmt.Sprintf("API Endpoint (empty for default [%s])", defaults.Endpoint), svc.APIEndpoint, true)
	if err != nil {
		return config.ServiceConfig{}, err
	}
	model, err := Input(fmt.Sprintf("Model (empty for default [%s])", defaults.Model), svc.Model, true)
	if err != nil {
		return config.ServiceConfig{}, err
	}

	svc.APIKey = apiKey
	svc.APIEndpoint = endpoint
	svc.Model = model
	return svc, nil
}

// ChooseOutcome asks what to do about a failed connectivity test.
func (p *ServicePrompter) ChooseOutcome(testErr error) (flow.Outcome, error) {
	fmt.Printf("\nService test failed: %v\n", testErr)
	fmt.Println("Check that the API key is correct, the endpoint is reachable and your network is up.")

	idx, err := Select("What now?", []string{
		"Edit the service and test again",
		"Save the service anyway",
		"Abandon",
	}, 0)
	if err != nil {
		return flow.Abandon, err
	}
	switch idx {
	case 0:
		return flow.Retry, nil
	case 1:
		return flow.ForceSave, nil
	default:
		return flow.Abandon, nil
	}
}

var _ flow.Prompter = (*ServicePrompter)(nil)
