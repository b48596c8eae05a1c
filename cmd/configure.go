package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/flow"
	"github.com/githelper/git-commit-helper/pkg/provider/copilot"
	"github.com/githelper/git-commit-helper/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Interactive setup of AI services",
	Long: `Walks through the initial configuration: add one or more AI services,
pick the default, optionally test connectivity and configure review-system
credentials. Can be re-run at any time to add more services.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigure()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func kindNames() []string {
	kinds := config.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func runConfigure() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		cfg = config.NewConfig()
	} else if err != nil {
		return err
	}

	prompter := &ui.ServicePrompter{Tokens: copilot.NewGitHubTokenProvider()}
	ctx := context.Background()

	for {
		printServices(cfg)
		more, err := ui.Confirm("Add an AI service?", len(cfg.Services) == 0)
		if err != nil {
			return err
		}
		if !more {
			break
		}

		idx, err := ui.Select("Which service?", kindNames(), 0)
		if err != nil {
			return err
		}
		svc, err := prompter.NewService(config.Kinds()[idx])
		if err != nil {
			return err
		}

		test, err := ui.Confirm("Test this service now?", true)
		if err != nil {
			return err
		}
		if test {
			if err := flow.AddService(ctx, cfg, store, svc, prompter, flow.TestService); err != nil {
				fmt.Printf("Service not added: %v\n", err)
				continue
			}
		} else {
			cfg.AddService(svc)
			if err := store.Save(cfg); err != nil {
				return err
			}
		}
		fmt.Printf("%s service added.\n", svc.Service)
	}

	if len(cfg.Services) == 0 {
		return errors.New("at least one AI service must be configured")
	}

	if len(cfg.Services) > 1 {
		options := make([]string, len(cfg.Services))
		for i := range cfg.Services {
			options[i] = serviceLabel(cfg, &cfg.Services[i])
		}
		idx, err := ui.Select("Default service?", options, 0)
		if err != nil {
			return err
		}
		if err := cfg.SetDefaultService(idx + 1); err != nil {
			return err
		}
		if err := store.Save(cfg); err != nil {
			return err
		}
	}

	wantGerrit, err := ui.Confirm("Configure Gerrit review credentials?", false)
	if err != nil {
		return err
	}
	if wantGerrit {
		if err := configureGerrit(cfg, store); err != nil {
			return err
		}
	}

	log.Info().Str("path", store.Path()).Msg("configuration complete")
	fmt.Printf("Configuration saved to %s\n", store.Path())
	return nil
}

// configureGerrit prompts for review-system credentials: a username/password
// pair or a token.
func configureGerrit(cfg *config.Config, store *config.Store) error {
	idx, err := ui.Select("Gerrit authentication", []string{
		"Username and password",
		"Token",
		"Skip",
	}, 2)
	if err != nil {
		return err
	}

	switch idx {
	case 0:
		username, err := ui.Input("Gerrit username", "", false)
		if err != nil {
			return err
		}
		password, err := ui.Input("Gerrit password", "", false)
		if err != nil {
			return err
		}
		cfg.Gerrit = &config.GerritConfig{Username: username, Password: password}
	case 1:
		token, err := ui.Input("Gerrit token", "", false)
		if err != nil {
			return err
		}
		cfg.Gerrit = &config.GerritConfig{Token: token}
	default:
		cfg.Gerrit = nil
		return nil
	}
	return store.Save(cfg)
}
