package flow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/githelper/git-commit-helper/pkg/ai"
	"github.com/githelper/git-commit-helper/pkg/config"
)

// fakePrompter scripts the interactive collaborator: a sequence of outcomes
// and a function applied on each re-prompt.
type fakePrompter struct {
	outcomes []Outcome
	edits    int
	edit     func(svc config.ServiceConfig) config.ServiceConfig
}

func (p *fakePrompter) EditService(svc config.ServiceConfig) (config.ServiceConfig, error) {
	p.edits++
	if p.edit != nil {
		return p.edit(svc), nil
	}
	return svc, nil
}

func (p *fakePrompter) ChooseOutcome(error) (Outcome, error) {
	if len(p.outcomes) == 0 {
		return Abandon, nil
	}
	o := p.outcomes[0]
	p.outcomes = p.outcomes[1:]
	return o, nil
}

func passValidator(context.Context, *config.Config, config.ServiceConfig) error {
	return nil
}

func failValidator(context.Context, *config.Config, config.ServiceConfig) error {
	return ai.ErrValidationFailed
}

// failUnlessKey fails until the candidate carries the expected API key.
func failUnlessKey(key string) Validator {
	return func(_ context.Context, _ *config.Config, svc config.ServiceConfig) error {
		if svc.APIKey != key {
			return ai.ErrValidationFailed
		}
		return nil
	}
}

func testStore(t *testing.T) *config.Store {
	t.Helper()
	return config.NewStore(filepath.Join(t.TempDir(), "config.json"))
}

func TestAddServiceSavesOnSuccess(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()

	svc := config.ServiceConfig{Service: config.KindOpenAI, APIKey: "k"}
	require.NoError(t, AddService(context.Background(), cfg, store, svc, &fakePrompter{}, passValidator))

	require.Len(t, cfg.Services, 1)
	assert.NotEmpty(t, cfg.Services[0].ID)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, persisted)
}

func TestAddServiceAbandonRollsBack(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()
	cfg.AddService(config.ServiceConfig{Service: config.KindClaude, APIKey: "existing"})
	require.NoError(t, store.Save(cfg))
	before := cfg.Clone()

	svc := config.ServiceConfig{Service: config.KindOpenAI, APIKey: "bad"}
	err := AddService(context.Background(), cfg, store, svc, &fakePrompter{outcomes: []Outcome{Abandon}}, failValidator)
	assert.ErrorIs(t, err, ai.ErrValidationFailed)

	assert.Equal(t, before, cfg, "in-memory registry restored")
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, persisted, "store untouched")
}

func TestAddServiceForceSavePersists(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()

	svc := config.ServiceConfig{Service: config.KindOpenAI, APIKey: "unreachable"}
	err := AddService(context.Background(), cfg, store, svc, &fakePrompter{outcomes: []Outcome{ForceSave}}, failValidator)
	require.NoError(t, err)

	persisted, err := store.Load()
	require.NoError(t, err)
	require.Len(t, persisted.Services, 1)
	assert.Equal(t, "unreachable", persisted.Services[0].APIKey)
}

func TestAddServiceRetryThenSuccess(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()

	p := &fakePrompter{
		outcomes: []Outcome{Retry},
		edit: func(svc config.ServiceConfig) config.ServiceConfig {
			svc.APIKey = "good"
			return svc
		},
	}
	svc := config.ServiceConfig{Service: config.KindOpenAI, APIKey: "bad"}
	require.NoError(t, AddService(context.Background(), cfg, store, svc, p, failUnlessKey("good")))

	assert.Equal(t, 1, p.edits)
	require.Len(t, cfg.Services, 1)
	assert.Equal(t, "good", cfg.Services[0].APIKey)
	assert.Equal(t, cfg.Services[0].ID, cfg.DefaultServiceID, "retry keeps the assigned ID")
}

func TestEditServiceSavesOnSuccess(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()
	entry := cfg.AddService(config.ServiceConfig{Service: config.KindOpenAI, APIKey: "old"})
	require.NoError(t, store.Save(cfg))
	id := entry.ID

	p := &fakePrompter{
		edit: func(svc config.ServiceConfig) config.ServiceConfig {
			svc.APIKey = "new"
			return svc
		},
	}
	require.NoError(t, EditService(context.Background(), cfg, store, 1, p, passValidator))

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", persisted.Services[0].APIKey)
	assert.Equal(t, id, persisted.Services[0].ID, "identity survives the edit")
	assert.Equal(t, id, persisted.DefaultServiceID)
}

func TestEditServiceAbandonRollsBack(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()
	cfg.AddService(config.ServiceConfig{Service: config.KindOpenAI, APIKey: "old"})
	require.NoError(t, store.Save(cfg))
	before := cfg.Clone()

	p := &fakePrompter{
		outcomes: []Outcome{Abandon},
		edit: func(svc config.ServiceConfig) config.ServiceConfig {
			svc.APIKey = "broken"
			return svc
		},
	}
	err := EditService(context.Background(), cfg, store, 1, p, failValidator)
	assert.ErrorIs(t, err, ai.ErrValidationFailed)
	assert.Equal(t, before, cfg)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, persisted)
}

func TestEditServiceBounds(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()
	cfg.AddService(config.ServiceConfig{Service: config.KindOpenAI, APIKey: "k"})

	var ie *config.IndexError
	err := EditService(context.Background(), cfg, store, 2, &fakePrompter{}, passValidator)
	assert.ErrorAs(t, err, &ie)

	err = EditService(context.Background(), cfg, store, 0, &fakePrompter{}, passValidator)
	assert.ErrorAs(t, err, &ie)
}

func TestValidatorFailureIsRecoverable(t *testing.T) {
	err := failValidator(context.Background(), nil, config.ServiceConfig{})
	assert.True(t, errors.Is(err, ai.ErrValidationFailed))
}

func TestAbandonOnFreshRegistryLeavesNoFile(t *testing.T) {
	store := testStore(t)
	cfg := config.NewConfig()

	svc := config.ServiceConfig{Service: config.KindOpenAI, APIKey: "bad"}
	err := AddService(context.Background(), cfg, store, svc, &fakePrompter{outcomes: []Outcome{Abandon}}, failValidator)
	assert.ErrorIs(t, err, ai.ErrValidationFailed)
	assert.Empty(t, cfg.Services)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "nothing persisted for an abandoned first add")
}
