package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/githelper/git-commit-helper/pkg/provider/registry"
)

var testCmd = &cobra.Command{
	Use:   "test [text]",
	Short: "Translate a probe message with the default service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := cfg.GetDefaultService()
		if err != nil {
			return err
		}

		text := "这是一条测试消息，用于验证翻译服务是否可用。"
		if len(args) == 1 {
			text = args[0]
		}

		ctx, cancel := requestContext(cfg)
		defer cancel()
		tr, err := registry.NewTranslator(ctx, cfg)
		if err != nil {
			return err
		}
		result, err := tr.Translate(ctx, text)
		if err != nil {
			return fmt.Errorf("test of %s service failed: %w", svc.Service, err)
		}

		fmt.Printf("Service: %s\n", svc.Service)
		fmt.Printf("Input:   %s\n", text)
		fmt.Printf("Output:  %s\n", result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
