package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/termcore/pkg/log"
)

type TelegramConfig struct {
	Token   string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"TELEGRAM_OWNER_ID,required"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c, err := ParseTelegramConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

// ParseTelegramConfig always returns a config; on error it holds whatever
// could be parsed.
func ParseTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	err := env.Parse(c)
	return c, err
}
