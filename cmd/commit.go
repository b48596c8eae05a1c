package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/git"
	"github.com/githelper/git-commit-helper/pkg/prompt"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	summaryBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Pick a past commit and summarize it with the default service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !git.CheckRepository() {
			return fmt.Errorf("not inside a git repository")
		}
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		commits, err := git.ListCommits()
		if err != nil {
			return err
		}
		if len(commits) == 0 {
			return fmt.Errorf("no commits found")
		}

		idx, err := fuzzyfinder.Find(commits, func(i int) string {
			c := commits[i]
			title := strings.SplitN(strings.TrimSpace(c.Message), "\n", 2)[0]
			return fmt.Sprintf("%s %s (%s)", c.Hash.String()[:7], title, humanize.Time(c.Author.When))
		})
		if err != nil {
			if err == fuzzyfinder.ErrAbort {
				return nil
			}
			return err
		}
		commit := commits[idx]

		diff, err := git.GetCommitDiff(commit)
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cfg)
		defer cancel()
		tr, err := registry.NewTranslator(ctx, cfg)
		if err != nil {
			return err
		}
		p := prompt.BuildCommitSummaryPrompt(
			commit.Author.String(),
			commit.Author.When.Format("2006-01-02 15:04:05"),
			strings.TrimSpace(commit.Message),
			diff,
			cfg.OnlyChinese,
			cfg.OnlyEnglish,
		)
		summary, err := tr.Complete(ctx, p)
		if err != nil {
			return err
		}

		printSummary(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

// printSummary renders the markdown-ish summary, highlighting "###" headers.
func printSummary(summary string) {
	for _, line := range strings.Split(strings.TrimSpace(summary), "\n") {
		if strings.HasPrefix(line, "###") {
			fmt.Println(summaryHeaderStyle.Render(strings.TrimSpace(strings.TrimPrefix(line, "###"))))
			continue
		}
		fmt.Println(summaryBodyStyle.Render(line))
	}
}
