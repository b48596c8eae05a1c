package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

const hookMarker = "# installed by git-commit-helper"

const hookScript = `#!/bin/sh
` + hookMarker + `
git-commit-helper translate --hook "$1"
`

// hookPath resolves .git/hooks/commit-msg for the repository containing the
// current directory.
func hookPath() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return filepath.Join(wt.Filesystem.Root(), ".git", "hooks", "commit-msg"), nil
}

// InstallHook writes the commit-msg hook that routes new commit messages
// through the translator. An existing hook not written by this tool is left
// alone and reported as an error.
func InstallHook() (string, error) {
	path, err := hookPath()
	if err != nil {
		return "", err
	}
	if data, err := os.ReadFile(path); err == nil {
		if !strings.Contains(string(data), hookMarker) {
			return "", fmt.Errorf("a commit-msg hook already exists at %s; remove it first", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
		return "", fmt.Errorf("failed to write commit-msg hook: %w", err)
	}
	return path, nil
}

// UninstallHook removes the commit-msg hook if this tool installed it.
func UninstallHook() (string, error) {
	path, err := hookPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("failed to read commit-msg hook: %w", err)
	}
	if !strings.Contains(string(data), hookMarker) {
		return "", fmt.Errorf("the commit-msg hook at %s was not installed by git-commit-helper", path)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove commit-msg hook: %w", err)
	}
	return path, nil
}
