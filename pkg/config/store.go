package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "GIT_COMMIT_HELPER_CONFIG"

// Store loads and saves the registry at a fixed path. The path is resolved
// once at startup and threaded through; nothing reads the environment after
// construction.
type Store struct {
	path string
}

// NewStore returns a store bound to the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ResolvePath returns the config file location: the GIT_COMMIT_HELPER_CONFIG
// environment variable when set, otherwise the platform per-user config
// directory.
func ResolvePath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(base, "git-commit-helper", "config.json"), nil
}

// Path returns the resolved config file path.
func (s *Store) Path() string { return s.path }

// Load reads, parses and migrates the registry. A missing file yields
// ErrNotConfigured. Fields absent from older files are backfilled with their
// defaults, then legacy entries are migrated (ID assignment, default
// election); the migrated state is written back only on the next save.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotConfigured
		}
		return nil, &ReadError{Path: s.path, Err: err}
	}

	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &FormatError{Path: s.path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &FormatError{Path: s.path, Err: err}
	}

	cfg.migrate()
	log.Debug().
		Str("path", s.path).
		Int("services", len(cfg.Services)).
		Str("default", string(cfg.DefaultService)).
		Msg("config loaded")
	return cfg, nil
}

// Save serializes the registry as pretty-printed JSON, creating the parent
// directory if needed. The content goes through a temp file and rename so a
// failed write never leaves a truncated store behind.
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: s.path, Err: err}
	}
	log.Debug().Str("path", s.path).Msg("config saved")
	return nil
}
