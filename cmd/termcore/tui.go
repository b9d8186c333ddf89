package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/termcore/internal/service/history"
	"github.com/sandevgo/termcore/internal/service/ui"
	"github.com/sandevgo/termcore/internal/transport/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:          "tui",
	Short:        "Start the full-screen session",
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

		repo, err := newHistoryRepo(ctx, cfg)
		if err != nil {
			return err
		}
		defer repo.Close()

		router, wd := newDispatcher()
		return tui.Run(ctx, tui.Options{
			Dispatcher: router,
			History:    history.NewSession(repo),
			Prompt:     ui.NewPrompt(wd),
			Tick:       cfg.TUITick,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
