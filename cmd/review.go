package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/git"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

var reviewForceFlag bool

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "AI review of the staged changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !git.CheckRepository() {
			return fmt.Errorf("not inside a git repository")
		}
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.AIReview && !reviewForceFlag {
			fmt.Println("AI review is disabled in the configuration (ai_review: false). Use --force to run anyway.")
			return nil
		}

		diff, err := git.GetStagedDiff()
		if err != nil {
			return err
		}
		if strings.TrimSpace(diff) == "" {
			fmt.Println("No staged changes to review.")
			return nil
		}

		ctx, cancel := requestContext(cfg)
		defer cancel()
		tr, err := registry.NewTranslator(ctx, cfg)
		if err != nil {
			return err
		}
		review, err := tr.Review(ctx, diff)
		if err != nil {
			return err
		}
		fmt.Println(review)
		return nil
	},
}

func init() {
	reviewCmd.Flags().BoolVar(&reviewForceFlag, "force", false, "review even when ai_review is disabled")
	rootCmd.AddCommand(reviewCmd)
}
