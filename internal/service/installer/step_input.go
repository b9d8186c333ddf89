package installer

import (
	"errors"
	"net"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects one free-text value. An empty answer takes the
// default; a step whose skip func reports true is passed over.
type InputStep struct {
	title    string
	key      string
	def      string
	input    textinput.Model
	validate func(string) error
	skip     func(*InstallState) bool
	err      error
}

func newInputStep(title, key, placeholder, def string, secret bool) *InputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}

	return &InputStep{
		title: title,
		key:   key,
		def:   def,
		input: ti,
	}
}

func NewBridgeAddrStep() Step {
	s := newInputStep("WebSocket bridge listen address:", "TERMCORE_BRIDGE_ADDR", "127.0.0.1:8080", "127.0.0.1:8080", false)
	s.validate = func(v string) error {
		if _, _, err := net.SplitHostPort(v); err != nil {
			return errors.New("expected host:port")
		}
		return nil
	}
	return s
}

func NewTelegramTokenStep() Step {
	s := newInputStep("Enter your Telegram Bot Token:", "TELEGRAM_TOKEN", "123456789:ABCDEF...", "", true)
	s.skip = telegramDisabled
	s.validate = func(v string) error {
		if v == "" {
			return errors.New("token is required")
		}
		return nil
	}
	return s
}

func NewTelegramOwnerStep() Step {
	s := newInputStep("Enter your Telegram User ID (Owner):", "TELEGRAM_OWNER_ID", "123456789", "", false)
	s.skip = telegramDisabled
	s.validate = func(v string) error {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return errors.New("owner ID must be a number")
		}
		return nil
	}
	return s
}

func telegramDisabled(state *InstallState) bool {
	return state.EnvVars["TERMCORE_ENABLE_TELEGRAM"] != "true"
}

func (s *InputStep) Init() tea.Cmd {
	if s.skip != nil {
		// lets Update decide on skipping without waiting for a key
		return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
	}
	return textinput.Blink
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.skip != nil && s.skip(state) {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := s.input.Value()
			if value == "" {
				value = s.def
			}
			if s.validate != nil {
				if s.err = s.validate(value); s.err != nil {
					return s, nil
				}
			}
			state.EnvVars[s.key] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	view := s.title + "\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
