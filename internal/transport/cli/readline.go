package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/history"
	"github.com/sandevgo/termcore/pkg/log"
)

const exitCommand = "exit"

// lineReader is the part of *readline.Instance the loop drives.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	SaveHistory(content string) error
	Stdout() io.Writer
	Close() error
}

type prompter interface {
	String() string
}

type ReadLine struct {
	dispatcher core.Dispatcher
	history    *history.Session
	prompt     prompter
	rl         lineReader
	errColor   *color.Color
}

func NewReadLine(
	dispatcher core.Dispatcher,
	hist *history.Session,
	prompt prompter,
	historyLimit int,
) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt.String(),
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              exitCommand,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}

	return newReadLine(dispatcher, hist, prompt, rl), nil
}

func newReadLine(dispatcher core.Dispatcher, hist *history.Session, prompt prompter, rl lineReader) *ReadLine {
	return &ReadLine{
		dispatcher: dispatcher,
		history:    hist,
		prompt:     prompt,
		rl:         rl,
		errColor:   color.New(color.FgRed),
	}
}

// Start runs the loop until exit, Ctrl-C, Ctrl-D or ctx cancellation. The
// session history is saved on every way out.
func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	out := r.rl.Stdout()

	found, err := r.history.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load history")
	}
	if !found {
		fmt.Fprintln(out, "No previous history found.")
	}
	for _, line := range r.history.Lines() {
		_ = r.rl.SaveHistory(line)
	}

	defer func() {
		if err := r.history.Save(context.WithoutCancel(ctx)); err != nil {
			logger.Error().Err(err).Msg("failed to save history")
			return
		}
		logger.Debug().Int("count", r.history.Len()).Msg("history saved")
	}()

	// Readline blocks until a key arrives; closing it is the only way to
	// unblock the loop when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = r.rl.Close()
		case <-done:
		}
	}()

	logger.Info().Msg("interactive session started")
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		r.rl.SetPrompt(r.prompt.String())
		line, err := r.rl.Readline()
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Msg("interactive session cancelled")
				return nil
			}
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(out, "CTRL-C detected, exiting...")
				return nil
			case errors.Is(err, io.EOF):
				fmt.Fprintln(out, "CTRL-D detected, exiting...")
				return nil
			}
			fmt.Fprintf(out, "Error reading line: %v\n", err)
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.history.Append(line) {
			_ = r.rl.SaveHistory(line)
		}
		if line == exitCommand {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		r.render(out, r.dispatcher.Dispatch(ctx, line))
	}
}

func (r *ReadLine) render(out io.Writer, res core.Result) {
	switch {
	case res.Output == core.ClearScreen:
		fmt.Fprint(out, res.Output)
	case res.Output == "":
	case res.Failed:
		r.errColor.Fprintln(out, strings.TrimRight(res.Output, "\n"))
	default:
		fmt.Fprintln(out, strings.TrimRight(res.Output, "\n"))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
