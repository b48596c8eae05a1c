package copilot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearGitHubEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestGitHubTokenFromEnv(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GITHUB_TOKEN", "gho_env")

	p := &GitHubTokenProvider{configDir: t.TempDir()}
	token, err := p.githubToken()
	require.NoError(t, err)
	assert.Equal(t, "gho_env", token)
}

func TestGitHubTokenGHTokenFallback(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GH_TOKEN", "gho_gh_env")

	p := &GitHubTokenProvider{configDir: t.TempDir()}
	token, err := p.githubToken()
	require.NoError(t, err)
	assert.Equal(t, "gho_gh_env", token)
}

func TestGitHubTokenFromCopilotHosts(t *testing.T) {
	clearGitHubEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "github-copilot", "hosts.json"),
		`{"github.com": {"oauth_token": "gho_hosts"}}`)

	p := &GitHubTokenProvider{configDir: dir}
	token, err := p.githubToken()
	require.NoError(t, err)
	assert.Equal(t, "gho_hosts", token)
}

func TestGitHubTokenFromCopilotApps(t *testing.T) {
	// Newer Copilot installs key apps.json by client id.
	clearGitHubEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "github-copilot", "apps.json"),
		`{"github.com:Iv1.b507a08c87ecfe98": {"oauth_token": "gho_apps"}}`)

	p := &GitHubTokenProvider{configDir: dir}
	token, err := p.githubToken()
	require.NoError(t, err)
	assert.Equal(t, "gho_apps", token)
}

func TestGitHubTokenFromGhHosts(t *testing.T) {
	clearGitHubEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "gh", "hosts.yml"), `github.com:
    oauth_token: gho_ghcli
    user: someone
`)

	p := &GitHubTokenProvider{configDir: dir}
	token, err := p.githubToken()
	require.NoError(t, err)
	assert.Equal(t, "gho_ghcli", token)
}

func TestGitHubTokenMissingEverywhere(t *testing.T) {
	clearGitHubEnv(t)
	p := &GitHubTokenProvider{configDir: t.TempDir()}
	_, err := p.githubToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no GitHub token found")
}

func TestGitHubTokenSkipsMalformedConfig(t *testing.T) {
	clearGitHubEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "github-copilot", "hosts.json"), "{broken")
	writeFile(t, filepath.Join(dir, "gh", "hosts.yml"), `github.com:
    oauth_token: gho_after_broken
`)

	p := &GitHubTokenProvider{configDir: dir}
	token, err := p.githubToken()
	require.NoError(t, err)
	assert.Equal(t, "gho_after_broken", token)
}
