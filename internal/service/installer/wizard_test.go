package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	bksp  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msgs to the wizard. After each one it delivers the nextMsg
// that step Init commands would emit, for as long as that moves it along.
func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
		for m.currentStep < len(m.steps) {
			before := m.currentStep
			next, _ = m.Update(nextMsg{})
			m = next.(model)
			if m.currentStep == before {
				break
			}
		}
	}
	return m
}

func readEnv(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	return string(data)
}

func TestWizard_Defaults(t *testing.T) {
	dir := t.TempDir()
	m := press(t, initialModel(dir), enter, enter, enter)

	require.Equal(t, len(m.steps), m.currentStep, "wizard should be complete")
	assert.Equal(t, "TERMCORE_BRIDGE_ADDR=127.0.0.1:8080\n"+
		"TERMCORE_DEBUG=0\n"+
		"TERMCORE_ENABLE_TELEGRAM=false\n"+
		"TERMCORE_HISTORY_BACKEND=file\n", readEnv(t, dir))
	assert.FileExists(t, filepath.Join(dir, "history.txt"))
}

func TestWizard_SQLiteAndTelegram(t *testing.T) {
	dir := t.TempDir()
	m := press(t, initialModel(dir),
		down, enter, // sqlite
		typed("0.0.0.0:9000"), enter,
		down, enter, // telegram on
		typed("123:abc"), enter,
		typed("x"), enter, // rejected
	)
	assert.Contains(t, m.View(), "owner ID must be a number")

	m = press(t, m, bksp, typed("42"), enter)
	require.Equal(t, len(m.steps), m.currentStep)

	env := readEnv(t, dir)
	assert.Contains(t, env, "TERMCORE_HISTORY_BACKEND=sqlite\n")
	assert.Contains(t, env, "TERMCORE_BRIDGE_ADDR=0.0.0.0:9000\n")
	assert.Contains(t, env, "TERMCORE_ENABLE_TELEGRAM=true\n")
	assert.Contains(t, env, "TELEGRAM_TOKEN=123:abc\n")
	assert.Contains(t, env, "TELEGRAM_OWNER_ID=42\n")
	assert.FileExists(t, filepath.Join(dir, "history.db"))
}

func TestWizard_InvalidAddress(t *testing.T) {
	m := press(t, initialModel(t.TempDir()), enter, typed("nope"), enter)
	assert.Equal(t, 1, m.currentStep)
	assert.Contains(t, m.View(), "expected host:port")
}

func TestWizard_ExistingEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KEEP=1\n"), 0600))

	m := press(t, initialModel(dir), enter, enter, enter)
	assert.Less(t, m.currentStep, len(m.steps))
	assert.Contains(t, m.View(), ".env file already exists")
	assert.Equal(t, "KEEP=1\n", readEnv(t, dir))
}

func TestWizard_CtrlC(t *testing.T) {
	m := press(t, initialModel(t.TempDir()), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}
