package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/termcore/pkg/log"
	"github.com/sandevgo/termcore/pkg/srv"
	"github.com/spf13/cobra"
)

var (
	serveAddr     string
	serveMaxConns int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the WebSocket bridge (and Telegram when enabled)",
	Long: `Serves the built-in commands over WebSocket: every text frame is one command
line, every reply is one text frame. There is no authentication, and all
clients share one working directory.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.BridgeAddr = serveAddr
		}
		if serveMaxConns > 0 {
			cfg.BridgeMaxConns = serveMaxConns
		}

		logger := log.FromCtx(ctx)
		logger.Info().Str("version", rootCmd.Version).Msg("starting termcore")

		services, err := NewServices(ctx, cfg)
		if err != nil {
			return err
		}

		errs := srv.StartServices(ctx, services)

		// Wait for shutdown signal or a failed start
		if err := srv.ShutdownServices(ctx, services, errs); err != nil {
			return err
		}
		logger.Info().Msg("termcore has been shut down gracefully")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides TERMCORE_BRIDGE_ADDR")
	serveCmd.Flags().IntVar(&serveMaxConns, "max-conns", 0, "concurrent connection limit, overrides TERMCORE_BRIDGE_MAX_CONNS")
	rootCmd.AddCommand(serveCmd)
}
