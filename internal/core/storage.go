package core

import (
	"context"
	"errors"
)

// ErrNoHistory is returned by Load when no history has been stored yet.
var ErrNoHistory = errors.New("no previous history")

// HistoryRepository persists the interactive session history as an ordered
// list of lines. Save replaces whatever was stored before.
type HistoryRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, lines []string) error
	Close() error
}
