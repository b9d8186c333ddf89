package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/termcore/internal/transport/mcp"
	"github.com/sandevgo/termcore/pkg/log"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:          "mcp",
	Short:        "Serve the built-in commands as an MCP tool over stdio",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		var flushLog func()
		ctx, flushLog, err = setupFileLogger(ctx, cfg)
		if err != nil {
			return err
		}
		defer flushLog()

		log.FromCtx(ctx).Info().Msg("mcp stdio server started")

		router, _ := newDispatcher()
		return mcp.NewServer(router).Serve(ctx, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
