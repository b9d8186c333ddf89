package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/pkg/log"
)

var _ core.HistoryRepository = (*History)(nil)

// History stores one command line per line of a plain text file.
type History struct {
	path  string
	limit int
}

// NewHistory keeps at most limit lines; limit <= 0 keeps everything.
func NewHistory(path string, limit int) *History {
	return &History{path: path, limit: limit}
}

func (h *History) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrNoHistory
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	// an empty file holds no history, same as a missing one
	if len(lines) == 0 {
		return nil, core.ErrNoHistory
	}

	log.FromCtx(ctx).Debug().Int("count", len(lines)).Str("path", h.path).Msg("loaded history")
	return lines, nil
}

// Save overwrites the file. The content goes to a temp file first so a
// crash mid-write leaves the previous history intact.
func (h *History) Save(ctx context.Context, lines []string) error {
	if h.limit > 0 && len(lines) > h.limit {
		lines = lines[len(lines)-h.limit:]
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("failed to replace history: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("count", len(lines)).Str("path", h.path).Msg("saved history")
	return nil
}

func (h *History) Close() error {
	return nil
}
