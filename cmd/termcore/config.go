package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/termcore/internal/config"
	"github.com/sandevgo/termcore/internal/service/ui"
	"github.com/sandevgo/termcore/pkg/env"
	"github.com/spf13/cobra"
)

var configWrite bool

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Print the effective configuration in .env form",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		// Telegram settings are optional here, missing ones print commented out
		tgCfg, _ := config.ParseTelegramConfig()

		content, err := env.MarshalEnv(&struct {
			config.AppConfig
			config.TelegramConfig
		}{*cfg, *tgCfg})
		if err != nil {
			return err
		}

		if !configWrite {
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}

		if err := os.WriteFile(cfg.GetEnvPath(), []byte(content), 0600); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.StatusStyle.Render("Configuration written to "+cfg.GetEnvPath()))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVarP(&configWrite, "write", "w", false, "write the configuration to <runtime>/.env")
	rootCmd.AddCommand(configCmd)
}
