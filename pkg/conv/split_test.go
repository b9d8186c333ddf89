package conv

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   []string
	}{
		{name: "short", input: "abc", maxLen: 10, want: []string{"abc"}},
		{name: "exact", input: "abcd", maxLen: 4, want: []string{"abcd"}},
		{name: "hard cut", input: "abcdefghij", maxLen: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "newline preferred", input: "aaaa\nbbbbbb", maxLen: 6, want: []string{"aaaa\n", "bbbbbb"}},
		{name: "early newline ignored", input: "a\nbbbbbbbbb", maxLen: 6, want: []string{"a\nbbbb", "bbbbb"}},
		{name: "multibyte boundary", input: "ééé", maxLen: 3, want: []string{"é", "é", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitText(tt.input, tt.maxLen))
		})
	}
}

func TestSplitText_Reassembles(t *testing.T) {
	input := strings.Repeat("línea número\n", 500)
	chunks := SplitText(input, 4000)

	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 4000)
		assert.True(t, utf8.ValidString(c))
	}
	assert.Equal(t, input, strings.Join(chunks, ""))
}
