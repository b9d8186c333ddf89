// Package tui is the full-screen front end: a bubbletea redraw loop around
// the command dispatcher.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/history"
	"github.com/sandevgo/termcore/internal/service/ui"
)

const (
	exitCommand = "exit"
	// rows taken by the input line and the status bar
	chromeHeight = 2
)

type prompter interface {
	String() string
}

type tickMsg time.Time

// Model dispatches synchronously on Enter. Handlers are local and fast, so
// the next redraw waits at most one tick plus one command.
type Model struct {
	ctx        context.Context
	dispatcher core.Dispatcher
	history    *history.Session
	prompt     prompter
	tick       time.Duration

	input    textinput.Model
	viewport viewport.Model
	lines    []string

	// histPos indexes history while browsing; equal to Len() when not.
	histPos int
	draft   string

	width    int
	height   int
	ready    bool
	quitting bool
	executed int
}

func New(
	ctx context.Context,
	dispatcher core.Dispatcher,
	hist *history.Session,
	prompt prompter,
	tick time.Duration,
) Model {
	ti := textinput.New()
	ti.Prompt = prompt.String()
	ti.CharLimit = 4096
	ti.Focus()

	if tick <= 0 {
		tick = 100 * time.Millisecond
	}

	return Model{
		ctx:        ctx,
		dispatcher: dispatcher,
		history:    hist,
		prompt:     prompt,
		tick:       tick,
		input:      ti,
		viewport:   viewport.New(80, 20),
		histPos:    hist.Len(),
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.ready = true
		m.refresh()
		return m, nil

	case tickMsg:
		// directory changes made by other front ends show up here
		m.input.Prompt = m.prompt.String()
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.browse(-1)
			return m, nil
		case tea.KeyDown:
			m.browse(1)
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.draft = ""
	if line == "" {
		return m, nil
	}

	m.history.Append(line)
	m.histPos = m.history.Len()

	if line == exitCommand {
		m.quitting = true
		return m, tea.Quit
	}

	echo := ui.UsageStyle.Render(m.input.Prompt) + line
	res := m.dispatcher.Dispatch(m.ctx, line)
	m.executed++

	switch {
	case res.Output == core.ClearScreen:
		m.lines = nil
	case res.Failed:
		m.lines = append(m.lines, echo, ui.ErrorStyle.Render(strings.TrimRight(res.Output, "\n")))
	case res.Output == "":
		m.lines = append(m.lines, echo)
	default:
		m.lines = append(m.lines, echo, strings.TrimRight(res.Output, "\n"))
	}

	m.input.Prompt = m.prompt.String()
	m.refresh()
	return m, nil
}

// browse moves through history; moving past the newest entry restores the
// line being typed before browsing started.
func (m *Model) browse(delta int) {
	n := m.history.Len()
	if n == 0 {
		return
	}
	if m.histPos == n {
		m.draft = m.input.Value()
	}

	pos := m.histPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	m.histPos = pos

	if pos == n {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history.At(pos))
	}
	m.input.CursorEnd()
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "initializing..."
	}

	status := ui.StatusStyle.Render(core.AppName + " · " + m.input.Prompt + "· esc to quit")
	return m.viewport.View() + "\n" + m.input.View() + "\n" + status
}

// Lines returns the scrollback as rendered lines.
func (m Model) Lines() []string {
	return m.lines
}
