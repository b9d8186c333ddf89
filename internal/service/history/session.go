package history

import (
	"context"
	"errors"
	"sync"

	"github.com/sandevgo/termcore/internal/core"
)

// Session is the in-memory history of one interactive session. It is loaded
// once from the repository and written back once at the end.
type Session struct {
	mu    sync.Mutex
	repo  core.HistoryRepository
	lines []string
}

func NewSession(repo core.HistoryRepository) *Session {
	return &Session{repo: repo}
}

// Load reads the stored history. found is false when nothing was stored yet,
// which is not an error.
func (s *Session) Load(ctx context.Context) (found bool, err error) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, core.ErrNoHistory) {
			return false, nil
		}
		return false, err
	}

	s.mu.Lock()
	s.lines = append(lines, s.lines...)
	s.mu.Unlock()
	return true, nil
}

// Append records a line. Empty lines and repeats of the last line are
// dropped.
func (s *Session) Append(line string) bool {
	if line == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.lines); n > 0 && s.lines[n-1] == line {
		return false
	}
	s.lines = append(s.lines, line)
	return true
}

func (s *Session) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, len(s.lines))
	copy(res, s.lines)
	return res
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// At returns the i-th line, oldest first.
func (s *Session) At(i int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

func (s *Session) Save(ctx context.Context) error {
	return s.repo.Save(ctx, s.Lines())
}
