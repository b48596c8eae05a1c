package copilot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/githelper/git-commit-helper/pkg/ai"
)

const tokenExchangeURL = "https://api.github.com/copilot_internal/v2/token"

// GitHubTokenProvider locates the user's GitHub OAuth token (environment,
// Copilot editor configs, gh CLI config) and exchanges it for a short-lived
// Copilot bearer token. It is the external OAuth collaborator for the Copilot
// service kind; the resulting bearer is what gets stored as the service's
// api_key.
type GitHubTokenProvider struct {
	httpClient *http.Client
	// configDir overrides the user config dir lookup, for tests.
	configDir string
}

func NewGitHubTokenProvider() *GitHubTokenProvider {
	return &GitHubTokenProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetToken returns a Copilot bearer token, or an error describing which step
// of the flow failed.
func (p *GitHubTokenProvider) GetToken(ctx context.Context) (string, error) {
	ghToken, err := p.githubToken()
	if err != nil {
		return "", err
	}
	return p.exchange(ctx, ghToken)
}

// githubToken finds the GitHub OAuth token, trying in order: environment
// variables, the Copilot editor config files, the gh CLI hosts file.
func (p *GitHubTokenProvider) githubToken() (string, error) {
	for _, env := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if t := strings.TrimSpace(os.Getenv(env)); t != "" {
			return t, nil
		}
	}

	dir := p.configDir
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine user config directory: %w", err)
		}
	}

	for _, name := range []string{"hosts.json", "apps.json"} {
		if t := tokenFromCopilotConfig(filepath.Join(dir, "github-copilot", name)); t != "" {
			return t, nil
		}
	}
	if t := tokenFromGhHosts(filepath.Join(dir, "gh", "hosts.yml")); t != "" {
		return t, nil
	}

	return "", errors.New("no GitHub token found: set GITHUB_TOKEN, sign in to Copilot in an editor, or run 'gh auth login'")
}

// tokenFromCopilotConfig reads a github-copilot hosts.json/apps.json file.
// Keys are "github.com" or "github.com:<client-id>".
func tokenFromCopilotConfig(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var hosts map[string]struct {
		OAuthToken string `json:"oauth_token"`
	}
	if err := json.Unmarshal(data, &hosts); err != nil {
		log.Debug().Str("path", path).Err(err).Msg("skipping unreadable copilot config")
		return ""
	}
	for host, entry := range hosts {
		if strings.HasPrefix(host, "github.com") && entry.OAuthToken != "" {
			return entry.OAuthToken
		}
	}
	return ""
}

// tokenFromGhHosts reads the gh CLI hosts.yml file.
func tokenFromGhHosts(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var hosts map[string]struct {
		OAuthToken string `yaml:"oauth_token"`
	}
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		log.Debug().Str("path", path).Err(err).Msg("skipping unreadable gh hosts file")
		return ""
	}
	return hosts["github.com"].OAuthToken
}

// exchange trades a GitHub OAuth token for a Copilot bearer token.
func (p *GitHubTokenProvider) exchange(ctx context.Context, ghToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenExchangeURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "token "+ghToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Editor-Version", editorVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Copilot token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read Copilot token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Copilot token exchange returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Token     string `json:"token"`
		ExpiresAt int64  `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse Copilot token response: %w", err)
	}
	if payload.Token == "" {
		return "", errors.New("Copilot token exchange returned an empty token")
	}
	log.Debug().Time("expires", time.Unix(payload.ExpiresAt, 0)).Msg("obtained Copilot bearer token")
	return payload.Token, nil
}

var _ ai.TokenProvider = (*GitHubTokenProvider)(nil)
