package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Load(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    []string
		wantErr error
	}{
		{name: "missing_file", content: nil, wantErr: core.ErrNoHistory},
		{name: "empty_file", content: strPtr(""), wantErr: core.ErrNoHistory},
		{name: "blank_lines_only", content: strPtr("\n\r\n\n"), wantErr: core.ErrNoHistory},
		{name: "lines", content: strPtr("ls\npwd\n"), want: []string{"ls", "pwd"}},
		{name: "no_trailing_newline", content: strPtr("ls\npwd"), want: []string{"ls", "pwd"}},
		{name: "crlf_and_blank", content: strPtr("ls\r\n\r\necho a b\r\n"), want: []string{"ls", "echo a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.txt")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0600))
			}

			got, err := NewHistory(path, 0).Load(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistory_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history.txt")
	h := NewHistory(path, 0)
	ctx := context.Background()

	require.NoError(t, h.Save(ctx, []string{"a", "b"}))
	require.NoError(t, h.Save(ctx, []string{"c"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "c\n", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestHistory_SaveLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	h := NewHistory(path, 2)
	ctx := context.Background()

	require.NoError(t, h.Save(ctx, []string{"1", "2", "3", "4"}))
	got, err := h.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, got)
}

func strPtr(s string) *string { return &s }
