package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/config"
	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

var hookModeFlag bool

var translateCmd = &cobra.Command{
	Use:   "translate [message|-]",
	Short: "Translate a commit message with the default service",
	Long: `Translates a commit message using the default AI service. The message is
taken from the argument, from stdin when the argument is "-", or, with
--hook, read from and written back to the commit message file git passes to
the commit-msg hook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		if hookModeFlag {
			if len(args) != 1 {
				return fmt.Errorf("--hook requires the commit message file path")
			}
			return translateHookFile(cfg, args[0])
		}

		var text string
		switch {
		case len(args) == 0 || args[0] == "-":
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read message from stdin: %w", err)
			}
			text = string(data)
		default:
			text = args[0]
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("nothing to translate")
		}

		ctx, cancel := requestContext(cfg)
		defer cancel()
		tr, err := registry.NewTranslator(ctx, cfg)
		if err != nil {
			return err
		}
		result, err := tr.Translate(ctx, text)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	translateCmd.Flags().BoolVar(&hookModeFlag, "hook", false, "commit-msg hook mode: rewrite the message file in place")
	rootCmd.AddCommand(translateCmd)
}

// translateHookFile rewrites a commit message file in place. Merge commits,
// fixups and comment-only messages pass through untouched; a translation
// failure never blocks the commit.
func translateHookFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read commit message file: %w", err)
	}
	message := commitMessageBody(string(data))
	if message == "" ||
		strings.HasPrefix(message, "Merge ") ||
		strings.HasPrefix(message, "fixup!") ||
		strings.HasPrefix(message, "squash!") {
		return nil
	}

	ctx, cancel := requestContext(cfg)
	defer cancel()
	tr, err := registry.NewTranslator(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("skipping commit message translation")
		return nil
	}
	result, err := tr.Translate(ctx, message)
	if err != nil {
		log.Warn().Err(err).Msg("commit message translation failed; keeping original message")
		return nil
	}
	return os.WriteFile(path, []byte(result+"\n"), 0o644)
}

// commitMessageBody strips comment lines and surrounding whitespace from a
// commit message file.
func commitMessageBody(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
