// Package flow orchestrates registry mutations that involve an external
// validation step: add and edit run a connectivity test against the candidate
// service and feed failures into a bounded decision loop. The registry itself
// never does I/O; every successful path ends in exactly one explicit save.
package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

// Outcome is the user's decision after a failed service validation.
type Outcome int

const (
	// Retry re-prompts for the service fields and tests again.
	Retry Outcome = iota
	// ForceSave persists the service despite the failed test.
	ForceSave
	// Abandon rolls the mutation back and leaves the store untouched.
	Abandon
)

// Prompter is the interactive collaborator: it gathers corrected service
// fields and asks the user what to do about a failed test.
type Prompter interface {
	EditService(svc config.ServiceConfig) (config.ServiceConfig, error)
	ChooseOutcome(testErr error) (Outcome, error)
}

// Validator tests one candidate service against the live backend.
type Validator func(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) error

// TestService is the default Validator: it builds a Translator from a
// single-entry snapshot of the registry and translates a probe message,
// bounded by the configured request timeout.
func TestService(ctx context.Context, cfg *config.Config, svc config.ServiceConfig) error {
	snap := cfg.Snapshot(svc)
	tr, err := registry.NewTranslatorFor(ctx, snap, svc)
	if err != nil {
		return fmt.Errorf("%w: %v", ai.ErrValidationFailed, err)
	}
	tctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()
	if _, err := tr.Translate(tctx, "这是一条测试消息，用于验证翻译服务是否可用。"); err != nil {
		return fmt.Errorf("%w: %v", ai.ErrValidationFailed, err)
	}
	return nil
}

// AddService appends svc to the registry, validates it and saves. On
// validation failure the user chooses: Retry re-prompts and re-tests,
// ForceSave persists anyway, Abandon restores the registry to its previous
// state and returns the validation error.
func AddService(ctx context.Context, cfg *config.Config, store *config.Store, svc config.ServiceConfig, p Prompter, validate Validator) error {
	saved := cfg.Clone()
	entry := cfg.AddService(svc)

	for {
		testErr := validate(ctx, cfg, *entry)
		if testErr == nil {
			return store.Save(cfg)
		}
		log.Warn().Err(testErr).Str("service", string(entry.Service)).Msg("service validation failed")

		outcome, err := p.ChooseOutcome(testErr)
		if err != nil {
			*cfg = *saved
			return err
		}
		switch outcome {
		case Retry:
			corrected, err := p.EditService(*entry)
			if err != nil {
				*cfg = *saved
				return err
			}
			corrected.ID = entry.ID
			*entry = corrected
		case ForceSave:
			log.Warn().Str("service", string(entry.Service)).Msg("saving service despite failed validation")
			return store.Save(cfg)
		case Abandon:
			*cfg = *saved
			return testErr
		}
	}
}

// EditService replaces the service at the 1-based index after prompting for
// new values, validates it and saves, with the same decision loop as
// AddService. The entry's ID (and therefore its default status) is preserved.
func EditService(ctx context.Context, cfg *config.Config, store *config.Store, index int, p Prompter, validate Validator) error {
	current, err := cfg.Service(index)
	if err != nil {
		return err
	}
	saved := cfg.Clone()

	corrected, err := p.EditService(current)
	if err != nil {
		return err
	}
	for {
		corrected.ID = current.ID
		if err := cfg.EditService(index, corrected); err != nil {
			return err
		}
		testErr := validate(ctx, cfg, corrected)
		if testErr == nil {
			return store.Save(cfg)
		}
		log.Warn().Err(testErr).Str("service", string(corrected.Service)).Msg("service validation failed")

		outcome, err := p.ChooseOutcome(testErr)
		if err != nil {
			*cfg = *saved
			return err
		}
		switch outcome {
		case Retry:
			corrected, err = p.EditService(corrected)
			if err != nil {
				*cfg = *saved
				return err
			}
		case ForceSave:
			log.Warn().Str("service", string(corrected.Service)).Msg("saving service despite failed validation")
			return store.Save(cfg)
		case Abandon:
			*cfg = *saved
			return testErr
		}
	}
}
