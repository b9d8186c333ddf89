package history

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	lines   []string
	loadErr error
	saved   [][]string
}

func (m *memRepo) Load(ctx context.Context) ([]string, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]string(nil), m.lines...), nil
}

func (m *memRepo) Save(ctx context.Context, lines []string) error {
	m.saved = append(m.saved, lines)
	m.lines = lines
	return nil
}

func (m *memRepo) Close() error { return nil }

func TestSession_LoadAppendSave(t *testing.T) {
	repo := &memRepo{lines: []string{"ls", "pwd"}}
	s := NewSession(repo)
	ctx := context.Background()

	found, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	assert.True(t, s.Append("cd /tmp"))
	assert.False(t, s.Append("cd /tmp"), "consecutive duplicate")
	assert.False(t, s.Append(""), "empty line")
	assert.True(t, s.Append("pwd"))

	require.NoError(t, s.Save(ctx))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, []string{"ls", "pwd", "cd /tmp", "pwd"}, repo.saved[0])
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "ls", s.At(0))
	assert.Equal(t, "", s.At(10))
}

func TestSession_LoadMissing(t *testing.T) {
	s := NewSession(&memRepo{loadErr: core.ErrNoHistory})

	found, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, s.Len())
}

func TestSession_LoadFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	s := NewSession(&memRepo{loadErr: boom})

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}
