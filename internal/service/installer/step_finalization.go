package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills in the values the earlier steps leave implicit
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if telegramDisabled(state) {
		state.EnvVars["TERMCORE_ENABLE_TELEGRAM"] = "false"
		delete(state.EnvVars, "TELEGRAM_TOKEN")
		delete(state.EnvVars, "TELEGRAM_OWNER_ID")
	}

	if state.EnvVars["TERMCORE_DEBUG"] == "" {
		state.EnvVars["TERMCORE_DEBUG"] = "0"
	}

	if state.EnvVars["TERMCORE_HISTORY_BACKEND"] == "" {
		state.EnvVars["TERMCORE_HISTORY_BACKEND"] = "file"
	}

	// Signal completion
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
