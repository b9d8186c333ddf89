package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/history"
	"github.com/sandevgo/termcore/pkg/log"
)

type Options struct {
	Dispatcher core.Dispatcher
	History    *history.Session
	Prompt     prompter
	Tick       time.Duration
}

// Run loads history, runs the program until quit and saves history again.
func Run(ctx context.Context, opts Options) error {
	logger := log.FromCtx(ctx)

	if _, err := opts.History.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to load history")
	}
	defer func() {
		if err := opts.History.Save(context.WithoutCancel(ctx)); err != nil {
			logger.Error().Err(err).Msg("failed to save history")
		}
	}()

	m := New(ctx, opts.Dispatcher, opts.History, opts.Prompt, opts.Tick)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	if fm, ok := final.(Model); ok {
		logger.Info().Int("executed", fm.executed).Msg("terminal ui closed")
	}
	return nil
}
