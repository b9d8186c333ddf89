// Package telegram exposes the dispatcher to a single Telegram owner.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/termcore/internal/config"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/pkg/log"
	"github.com/sandevgo/termcore/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot        *tele.Bot
	dispatcher core.Dispatcher
	ownerID    int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	dispatcher core.Dispatcher,
) (*Bot, error) {
	logger := log.FromCtx(ctx)

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error().Err(err).Msg("telegram handler error")
		},
	}

	var b *tele.Bot
	retrier := retry.NewDefaultRetrier().OnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("telegram bot creation failed, retrying")
	})
	err := retrier.Do(ctx, func() error {
		var err error
		b, err = tele.NewBot(pref)
		if errors.Is(err, tele.ErrUnauthorized) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return newBot(ctx, b, dispatcher, cfg.OwnerID), nil
}

func newBot(ctx context.Context, b *tele.Bot, dispatcher core.Dispatcher, ownerID int64) *Bot {
	bot := &Bot{
		bot:        b,
		dispatcher: dispatcher,
		ownerID:    ownerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})
	b.Use(bot.ownerOnly)

	b.Handle(tele.OnText, bot.handleMessage)

	return bot
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Int64("owner", b.ownerID).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

// ownerOnly drops every update that does not come from the owner.
func (b *Bot) ownerOnly(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil || c.Sender().ID != b.ownerID {
			return nil
		}
		return next(c)
	}
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx, ok := c.Get(baseContextKey).(context.Context)
	if !ok {
		ctx = context.Background()
	}

	line := strings.TrimSpace(c.Text())
	if line == "" {
		return nil
	}

	_ = c.Notify(tele.Typing)

	log.FromCtx(ctx).Debug().Str("line", line).Msg("telegram command")
	return sendResult(ctx, c, b.dispatcher.Execute(ctx, line))
}
