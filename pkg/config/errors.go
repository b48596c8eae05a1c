package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured signals that no config file exists yet. This is the
	// expected first-run state, not a corruption.
	ErrNotConfigured = errors.New("no configuration found; run 'git-commit-helper config' first")

	// ErrEmptyRegistry is returned by mutations that need at least one
	// configured service.
	ErrEmptyRegistry = errors.New("no AI services configured")

	// ErrNoServiceConfigured is returned when default-service resolution is
	// attempted on an empty registry.
	ErrNoServiceConfigured = errors.New("no AI service configured")
)

// IndexError reports a 1-based service selector outside [1, Len].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("service number %d is out of range (1-%d)", e.Index, e.Len)
}

// ReadError wraps a failure to read an existing config file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// FormatError wraps a config file that exists but cannot be parsed.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("config file %s is malformed: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// WriteError wraps a failure to create or write the config file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write config file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
