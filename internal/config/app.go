package config

import (
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/termcore/internal/core"
)

const (
	HistoryBackendFile   = "file"
	HistoryBackendSQLite = "sqlite"
)

var (
	_ core.BridgeConfig  = (*AppConfig)(nil)
	_ core.HistoryConfig = (*AppConfig)(nil)
)

type AppConfig struct {
	RuntimePath string `env:"TERMCORE_RUNTIME_PATH"`

	// History
	HistoryBackend string `env:"TERMCORE_HISTORY_BACKEND" envDefault:"file"`
	HistoryFile    string `env:"TERMCORE_HISTORY_FILE"`
	HistoryLimit   int    `env:"TERMCORE_HISTORY_LIMIT" envDefault:"500"`

	// Remote bridge
	BridgeAddr        string        `env:"TERMCORE_BRIDGE_ADDR" envDefault:"127.0.0.1:8080"`
	BridgeMaxConns    int           `env:"TERMCORE_BRIDGE_MAX_CONNS" envDefault:"64"`
	BridgeIdleTimeout time.Duration `env:"TERMCORE_BRIDGE_IDLE_TIMEOUT" envDefault:"5m"`

	// Transport Flags
	EnableTelegram bool `env:"TERMCORE_ENABLE_TELEGRAM" envDefault:"false"`

	// Full-screen UI
	TUITick time.Duration `env:"TERMCORE_TUI_TICK" envDefault:"100ms"`
}

// ParseAppConfig reads AppConfig from the environment and fills the paths
// derived from the runtime directory.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.RuntimePath == "" {
		c.RuntimePath = GetRuntimePath()
	}
	if c.HistoryFile == "" {
		c.HistoryFile = filepath.Join(c.RuntimePath, "history.txt")
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "termcore.log")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetHistoryBackend() string {
	return c.HistoryBackend
}

func (c AppConfig) GetHistoryFilePath() string {
	return c.HistoryFile
}

func (c AppConfig) GetHistoryDBPath() string {
	return filepath.Join(c.RuntimePath, "history.db")
}

func (c AppConfig) GetHistoryLimit() int {
	return c.HistoryLimit
}

func (c AppConfig) GetAddr() string {
	return c.BridgeAddr
}

func (c AppConfig) GetMaxConns() int {
	return c.BridgeMaxConns
}

func (c AppConfig) GetIdleTimeout() time.Duration {
	return c.BridgeIdleTimeout
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
