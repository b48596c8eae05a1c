// Package config holds the persisted service registry for git-commit-helper:
// the list of configured AI backends, the default-service selection and the
// scalar policy settings that shape translation requests.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServiceKind identifies one of the supported AI backends. The set is closed;
// the string values are part of the on-disk format and must not change.
type ServiceKind string

const (
	KindDeepSeek ServiceKind = "DeepSeek"
	KindOpenAI   ServiceKind = "OpenAI"
	KindClaude   ServiceKind = "Claude"
	KindCopilot  ServiceKind = "Copilot"
	KindGemini   ServiceKind = "Gemini"
	KindGrok     ServiceKind = "Grok"
	KindQwen     ServiceKind = "Qwen"
)

// Kinds lists every supported service kind in menu order.
func Kinds() []ServiceKind {
	return []ServiceKind{
		KindDeepSeek,
		KindOpenAI,
		KindClaude,
		KindCopilot,
		KindGemini,
		KindGrok,
		KindQwen,
	}
}

// ParseKind resolves a stored or user-supplied name to a ServiceKind.
func ParseKind(name string) (ServiceKind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown service kind %q", name)
}

// ServiceConfig is one configured AI backend. APIEndpoint and Model are
// optional; empty means "use the kind's builtin default". For Copilot the
// APIKey field carries the bearer token obtained through the GitHub token
// exchange rather than a user-entered key.
type ServiceConfig struct {
	Service     ServiceKind `json:"service" validate:"required"`
	APIKey      string      `json:"api_key"`
	APIEndpoint string      `json:"api_endpoint,omitempty"`
	Model       string      `json:"model,omitempty"`
	ID          string      `json:"id,omitempty"`
}

// GerritConfig holds optional review-system credentials: either a
// username/password pair or a token.
type GerritConfig struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
}

// Config is the full persisted registry. DefaultService is the legacy
// default-selection field kept for files written before service IDs existed;
// DefaultServiceID is authoritative when non-empty.
type Config struct {
	DefaultServiceID string          `json:"default_service_id"`
	DefaultService   ServiceKind     `json:"default_service"`
	Services         []ServiceConfig `json:"services"`
	AIReview         bool            `json:"ai_review"`
	TimeoutSeconds   int64           `json:"timeout_seconds" validate:"min=0"`
	MaxTokens        int64           `json:"max_tokens" validate:"min=0"`
	Gerrit           *GerritConfig   `json:"gerrit,omitempty"`
	OnlyChinese      bool            `json:"only_chinese"`
	OnlyEnglish      bool            `json:"only_english"`
}

const (
	DefaultTimeoutSeconds = 20
	DefaultMaxTokens      = 2048
)

// NewConfig returns an empty registry with every policy field set to its
// documented default. Load unmarshals on top of this, so fields absent from
// older files keep these values.
func NewConfig() *Config {
	return &Config{
		DefaultService: KindOpenAI,
		AIReview:       true,
		TimeoutSeconds: DefaultTimeoutSeconds,
		MaxTokens:      DefaultMaxTokens,
	}
}

// Validate checks struct-level constraints on the loaded registry.
func (cfg *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	for i := range cfg.Services {
		if _, err := ParseKind(string(cfg.Services[i].Service)); err != nil {
			return fmt.Errorf("service %d: %w", i+1, err)
		}
	}
	return nil
}

// Clone returns a deep copy, used by callers that need to roll a mutation
// back when a later step fails.
func (cfg *Config) Clone() *Config {
	out := *cfg
	out.Services = make([]ServiceConfig, len(cfg.Services))
	copy(out.Services, cfg.Services)
	if cfg.Gerrit != nil {
		g := *cfg.Gerrit
		out.Gerrit = &g
	}
	return &out
}

// Snapshot returns a single-entry copy of the registry with svc as its only
// (and default) service, preserving the policy fields. Connectivity tests run
// against such a snapshot so only the candidate service is exercised.
func (cfg *Config) Snapshot(svc ServiceConfig) *Config {
	out := cfg.Clone()
	out.Services = []ServiceConfig{svc}
	out.DefaultServiceID = svc.ID
	out.DefaultService = svc.Service
	return out
}
