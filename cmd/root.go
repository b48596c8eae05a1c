// Package cmd wires the git-commit-helper CLI commands.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/config"

	// Provider registrations.
	_ "github.com/githelper/git-commit-helper/pkg/provider/claude"
	_ "github.com/githelper/git-commit-helper/pkg/provider/copilot"
	_ "github.com/githelper/git-commit-helper/pkg/provider/deepseek"
	_ "github.com/githelper/git-commit-helper/pkg/provider/gemini"
	_ "github.com/githelper/git-commit-helper/pkg/provider/grok"
	_ "github.com/githelper/git-commit-helper/pkg/provider/openai"
	_ "github.com/githelper/git-commit-helper/pkg/provider/qwen"
)

var (
	configPathFlag string
	debugFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "git-commit-helper",
	Short: "Translate and review git commit messages with configured AI services",
	Long: `git-commit-helper keeps a registry of credentialed AI backends and uses
the active default service to translate commit messages and review staged
changes. Run 'git-commit-helper config' to set it up.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "path to the config file (overrides "+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// openStore resolves the config path once (flag > env > platform default)
// and binds a store to it.
func openStore() (*config.Store, error) {
	if configPathFlag != "" {
		return config.NewStore(configPathFlag), nil
	}
	path, err := config.ResolvePath()
	if err != nil {
		return nil, err
	}
	return config.NewStore(path), nil
}

// loadConfig loads the registry from the resolved store.
func loadConfig() (*config.Config, *config.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// requestContext returns a context bounded by the configured request timeout.
func requestContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds)*time.Second)
}

// parseIndex validates a 1-based service selector argument.
func parseIndex(arg string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid service number %q", arg)
	}
	return n, nil
}
