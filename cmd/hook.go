package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/git"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the commit-msg hook",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commit-msg hook in the current repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !git.CheckRepository() {
			return fmt.Errorf("not inside a git repository")
		}
		path, err := git.InstallHook()
		if err != nil {
			return err
		}
		fmt.Printf("commit-msg hook installed at %s\n", path)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the commit-msg hook from the current repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !git.CheckRepository() {
			return fmt.Errorf("not inside a git repository")
		}
		path, err := git.UninstallHook()
		if err != nil {
			return err
		}
		fmt.Printf("commit-msg hook removed from %s\n", path)
		return nil
	},
}

func init() {
	hookCmd.AddCommand(hookInstallCmd, hookUninstallCmd)
	rootCmd.AddCommand(hookCmd)
}
