package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/termcore/internal/config"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/command"
	"github.com/sandevgo/termcore/internal/service/state"
	"github.com/sandevgo/termcore/internal/storage/file"
	"github.com/sandevgo/termcore/internal/storage/sqlite"
	"github.com/sandevgo/termcore/internal/transport/bridge"
	"github.com/sandevgo/termcore/internal/transport/telegram"
	"github.com/sandevgo/termcore/pkg/log"
	"github.com/sandevgo/termcore/pkg/srv"
)

// loadConfig reads <runtime>/.env, then the environment, and makes sure the
// runtime directory exists.
func loadConfig(ctx context.Context) (*config.AppConfig, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	cfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}
	return cfg, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}

func newHistoryRepo(ctx context.Context, cfg core.HistoryConfig) (core.HistoryRepository, error) {
	switch cfg.GetHistoryBackend() {
	case config.HistoryBackendFile:
		return file.NewHistory(cfg.GetHistoryFilePath(), cfg.GetHistoryLimit()), nil
	case config.HistoryBackendSQLite:
		db, err := sqlite.NewDB(ctx, cfg.GetHistoryDBPath())
		if err != nil {
			return nil, err
		}
		return sqlite.NewHistory(db, cfg.GetHistoryLimit()), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.GetHistoryBackend())
	}
}

func newDispatcher() (*command.Router, *state.Workdir) {
	wd := state.NewWorkdir()
	return command.NewRouter(wd), wd
}

// NewServices builds everything `serve` runs: the bridge and, when enabled,
// the Telegram bot. They share one dispatcher and so one working directory,
// which is put back to where it started once they have all stopped.
func NewServices(ctx context.Context, cfg *config.AppConfig) ([]srv.Service, error) {
	router, wd := newDispatcher()

	startDir, err := wd.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	// services shut down in reverse, so the restore runs last
	services := []srv.Service{
		srv.NewCleanup(func() error {
			_, err := wd.Change(startDir)
			return err
		}),
		bridge.NewServer(cfg, router),
	}

	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}
