package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	label string
	value string
}

// ChoiceStep stores the value of the selected choice under key
type ChoiceStep struct {
	title   string
	key     string
	choices []choice
	cursor  int
}

func NewChoiceStep(title, key string, choices ...choice) Step {
	return &ChoiceStep{
		title:   title,
		key:     key,
		choices: choices,
	}
}

func NewHistoryBackendStep() Step {
	return NewChoiceStep("Where should command history be kept?", "TERMCORE_HISTORY_BACKEND",
		choice{label: "Plain text file", value: "file"},
		choice{label: "SQLite database", value: "sqlite"},
	)
}

func NewTelegramChoiceStep() Step {
	return NewChoiceStep("Enable the Telegram front end for `termcore serve`?", "TERMCORE_ENABLE_TELEGRAM",
		choice{label: "No", value: "false"},
		choice{label: "Yes", value: "true"},
	)
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars[s.key] = s.choices[s.cursor].value
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("> %s", c.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
