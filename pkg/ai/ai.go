// Package ai defines the interfaces the registry orchestration depends on:
// a text-completion backend and the token provider used by Copilot. Provider
// SDK bindings live under pkg/provider and are opaque to everything else.
package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/githelper/git-commit-helper/pkg/prompt"
)

// ErrValidationFailed wraps a connectivity-test failure for a newly added or
// edited service. It is recoverable by design: the caller offers retry,
// force-save or abandon.
var ErrValidationFailed = errors.New("service validation failed")

// Completer is the minimal capability a provider client exposes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TokenProvider supplies the externally obtained bearer token for providers
// that authenticate through an OAuth flow instead of a user-entered API key.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// Translator turns commit messages and diffs into model requests using a
// Completer. The language flags are advisory hints carried into the prompt;
// they are not mutually exclusive.
type Translator struct {
	completer   Completer
	onlyChinese bool
	onlyEnglish bool
}

// NewTranslator wraps a provider client with the registry's language policy.
func NewTranslator(c Completer, onlyChinese, onlyEnglish bool) *Translator {
	return &Translator{completer: c, onlyChinese: onlyChinese, onlyEnglish: onlyEnglish}
}

// Translate produces the translated commit message for text.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	p := prompt.BuildTranslatePrompt(text, t.onlyChinese, t.onlyEnglish)
	out, err := t.completer.Complete(ctx, p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Review asks the backend for a review of a staged diff.
func (t *Translator) Review(ctx context.Context, diff string) (string, error) {
	p := prompt.BuildReviewPrompt(diff, t.onlyChinese, t.onlyEnglish)
	out, err := t.completer.Complete(ctx, p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Complete forwards a prebuilt prompt to the backend, for callers that build
// their own (e.g. the commit summary flow).
func (t *Translator) Complete(ctx context.Context, p string) (string, error) {
	return t.completer.Complete(ctx, p)
}
