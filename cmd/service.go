package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/flow"
	"github.com/githelper/git-commit-helper/pkg/provider/copilot"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
	"github.com/githelper/git-commit-helper/pkg/ui"
)

var (
	defaultMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	serviceInfoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				PaddingLeft(4)
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage configured AI services",
}

var noTestFlag bool

var serviceAddCmd = &cobra.Command{
	Use:   "add <kind>",
	Short: "Add an AI service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := config.ParseKind(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		cfg, err := store.Load()
		if err != nil {
			if err == config.ErrNotConfigured {
				cfg = config.NewConfig()
			} else {
				return err
			}
		}

		prompter := &ui.ServicePrompter{Tokens: copilot.NewGitHubTokenProvider()}
		svc, err := prompter.NewService(kind)
		if err != nil {
			return err
		}

		if noTestFlag {
			cfg.AddService(svc)
			if err := store.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("%s service added (not tested).\n", kind)
			return nil
		}
		if err := flow.AddService(context.Background(), cfg, store, svc, prompter, flow.TestService); err != nil {
			return err
		}
		fmt.Printf("%s service added.\n", kind)
		return nil
	},
}

var serviceEditCmd = &cobra.Command{
	Use:   "edit <number>",
	Short: "Edit an AI service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		cfg, store, err := loadConfig()
		if err != nil {
			return err
		}

		prompter := &ui.ServicePrompter{Tokens: copilot.NewGitHubTokenProvider()}
		if noTestFlag {
			current, err := cfg.Service(index)
			if err != nil {
				return err
			}
			svc, err := prompter.EditService(current)
			if err != nil {
				return err
			}
			if err := cfg.EditService(index, svc); err != nil {
				return err
			}
			if err := store.Save(cfg); err != nil {
				return err
			}
			fmt.Println("Service updated (not tested).")
			return nil
		}
		if err := flow.EditService(context.Background(), cfg, store, index, prompter, flow.TestService); err != nil {
			return err
		}
		fmt.Println("Service updated.")
		return nil
	},
}

var serviceRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove an AI service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		cfg, store, err := loadConfig()
		if err != nil {
			return err
		}
		removed, err := cfg.RemoveService(index)
		if err != nil {
			return err
		}
		if err := store.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("%s service removed.\n", removed.Service)
		return nil
	},
}

var serviceSetDefaultCmd = &cobra.Command{
	Use:   "set-default <number>",
	Short: "Set the default AI service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		cfg, store, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.SetDefaultService(index); err != nil {
			return err
		}
		if err := store.Save(cfg); err != nil {
			return err
		}
		svc, _ := cfg.Service(index)
		fmt.Printf("Default service is now %s.\n", svc.Service)
		return nil
	},
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured AI services",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		printServices(cfg)
		return nil
	},
}

func init() {
	serviceAddCmd.Flags().BoolVar(&noTestFlag, "no-test", false, "skip the connectivity test")
	serviceEditCmd.Flags().BoolVar(&noTestFlag, "no-test", false, "skip the connectivity test")
	serviceCmd.AddCommand(serviceAddCmd, serviceEditCmd, serviceRemoveCmd, serviceSetDefaultCmd, serviceListCmd)
	rootCmd.AddCommand(serviceCmd)
}

// serviceLabel renders one service for menus and listings.
func serviceLabel(cfg *config.Config, svc *config.ServiceConfig) string {
	label := string(svc.Service)
	if cfg.IsDefaultService(svc) {
		label += defaultMarkStyle.Render(" (default)")
	}
	return label
}

// printServices writes the configured services with their effective
// endpoint and model.
func printServices(cfg *config.Config) {
	if len(cfg.Services) == 0 {
		fmt.Println("No AI services configured.")
		return
	}
	fmt.Println("Configured AI services:")
	for i := range cfg.Services {
		svc := &cfg.Services[i]
		fmt.Printf("%d. %s\n", i+1, serviceLabel(cfg, svc))

		effective := registry.ApplyDefaults(*svc)
		endpoint := effective.APIEndpoint
		if svc.APIEndpoint == "" {
			endpoint += " (default)"
		}
		model := effective.Model
		if svc.Model == "" {
			model += " (default)"
		}
		fmt.Println(serviceInfoStyle.Render("URL: " + endpoint))
		fmt.Println(serviceInfoStyle.Render("Model: " + model))
	}
}
