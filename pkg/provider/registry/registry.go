// Package registry maps service kinds to provider client factories and their
// builtin endpoint/model defaults. Provider packages register themselves from
// init(); callers import them for side effects.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
)

// Factory constructs a provider client for one configured service. The
// service passed in already has endpoint/model defaults applied.
type Factory func(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (ai.Completer, error)

// Defaults are the builtin endpoint and model used when a service entry
// leaves those fields empty.
type Defaults struct {
	Endpoint string
	Model    string
}

var (
	mu        sync.RWMutex
	factories = map[config.ServiceKind]Factory{}
	defaults  = map[config.ServiceKind]Defaults{}
	required  = map[config.ServiceKind]bool{}
)

// Register adds a provider factory for the given kind.
func Register(kind config.ServiceKind, f Factory) {
	mu.Lock()
	factories[kind] = f
	mu.Unlock()
}

// RegisterDefaults sets the builtin endpoint/model for a kind.
func RegisterDefaults(kind config.ServiceKind, d Defaults) {
	mu.Lock()
	defaults[kind] = d
	mu.Unlock()
}

// SetRequiresAPIKey marks whether the kind needs a user-entered API key.
func SetRequiresAPIKey(kind config.ServiceKind, req bool) {
	mu.Lock()
	required[kind] = req
	mu.Unlock()
}

// Get returns the factory for kind if registered.
func Get(kind config.ServiceKind) (Factory, bool) {
	mu.RLock()
	f, ok := factories[kind]
	mu.RUnlock()
	return f, ok
}

// GetDefaults returns the builtin defaults for kind.
func GetDefaults(kind config.ServiceKind) (Defaults, bool) {
	mu.RLock()
	d, ok := defaults[kind]
	mu.RUnlock()
	return d, ok
}

// RequiresAPIKey reports whether the kind needs a user-entered API key.
func RequiresAPIKey(kind config.ServiceKind) bool {
	mu.RLock()
	r := required[kind]
	mu.RUnlock()
	return r
}

// ApplyDefaults fills empty endpoint/model fields from the kind's builtin
// defaults, returning the effective service settings.
func ApplyDefaults(svc config.ServiceConfig) config.ServiceConfig {
	d, ok := GetDefaults(svc.Service)
	if !ok {
		return svc
	}
	if svc.APIEndpoint == "" {
		svc.APIEndpoint = d.Endpoint
	}
	if svc.Model == "" {
		svc.Model = d.Model
	}
	return svc
}

// NewTranslatorFor builds a Translator for one specific service entry using
// the registry's policy settings (token cap, language flags).
func NewTranslatorFor(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) (*ai.Translator, error) {
	f, ok := Get(svc.Service)
	if !ok {
		return nil, fmt.Errorf("no provider registered for service kind %q", svc.Service)
	}
	client, err := f(ctx, cfg, ApplyDefaults(svc))
	if err != nil {
		return nil, err
	}
	return ai.NewTranslator(client, cfg.OnlyChinese, cfg.OnlyEnglish), nil
}

// NewTranslator resolves the registry's default service and builds a
// Translator for it.
func NewTranslator(ctx context.Context, cfg *config.Config) (*ai.Translator, error) {
	svc, err := cfg.GetDefaultService()
	if err != nil {
		return nil, err
	}
	return NewTranslatorFor(ctx, cfg, *svc)
}
