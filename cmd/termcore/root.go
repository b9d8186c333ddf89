package main

import (
	"context"
	"os"

	"github.com/sandevgo/termcore/internal/config"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/ui"
	"github.com/sandevgo/termcore/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     core.AppName,
	Short:   "termcore: a small built-in command shell",
	Long:    `termcore runs a fixed set of built-in commands from a REPL, a full-screen UI, a WebSocket bridge or MCP.`,
	Version: core.AppVersion,
	// No subcommand starts the REPL
	RunE:         runRepl,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func isDebug() bool {
	return debug || config.IsDebug()
}

// setupLogger logs to stdout, for commands that do not own the terminal.
func setupLogger(ctx context.Context) (context.Context, func()) {
	return log.NewContextWithLogger(ctx, isDebug(), os.Stdout)
}

// setupFileLogger keeps logs away from the terminal or the stdio protocol.
func setupFileLogger(ctx context.Context, cfg *config.AppConfig) (context.Context, func(), error) {
	return log.NewFileContextLogger(ctx, isDebug(), cfg.GetLogPath())
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
