package main

import (
	"os/signal"
	"syscall"

	"github.com/sandevgo/termcore/internal/service/history"
	"github.com/sandevgo/termcore/internal/service/ui"
	"github.com/sandevgo/termcore/internal/transport/cli"
	"github.com/sandevgo/termcore/pkg/log"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Start the interactive line-editing session (default)",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	// Ctrl-C is handled by the line editor itself
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
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
	logger := log.FromCtx(ctx)

	repo, err := newHistoryRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	router, wd := newDispatcher()
	rl, err := cli.NewReadLine(router, history.NewSession(repo), ui.NewPrompt(wd), cfg.GetHistoryLimit())
	if err != nil {
		logger.Error().Err(err).Msg("line editor unavailable")
		return err
	}
	defer rl.Shutdown(ctx)

	return rl.Start(ctx)
}
