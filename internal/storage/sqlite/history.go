package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/pkg/log"
)

var _ core.HistoryRepository = (*History)(nil)

type History struct {
	db    *sql.DB
	limit int
}

// NewHistory keeps at most limit lines; limit <= 0 keeps everything.
func NewHistory(db *sql.DB, limit int) *History {
	return &History{db: db, limit: limit}
}

func (h *History) Load(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT line FROM history ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan history line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, core.ErrNoHistory
	}

	log.FromCtx(ctx).Debug().Int("count", len(lines)).Msg("loaded history")
	return lines, nil
}

// Save replaces the stored history with lines in one transaction.
func (h *History) Save(ctx context.Context, lines []string) error {
	if h.limit > 0 && len(lines) > h.limit {
		lines = lines[len(lines)-h.limit:]
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO history (line) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, line := range lines {
		if _, err := stmt.ExecContext(ctx, line); err != nil {
			return fmt.Errorf("failed to insert history line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("count", len(lines)).Msg("saved history")
	return nil
}

func (h *History) Close() error {
	return h.db.Close()
}
