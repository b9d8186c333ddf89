package conv

import (
	"strings"
	"unicode/utf8"
)

// SplitText cuts text into chunks of at most maxLen bytes, preferring to
// break at a newline in the last two thirds of a chunk. Chunks never split
// a UTF-8 sequence.
func SplitText(text string, maxLen int) []string {
	if len(text) <= maxLen || maxLen <= 0 {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if idx := strings.LastIndex(text[:cut], "\n"); idx > maxLen/3 {
			cut = idx + 1
		}
		if cut == 0 {
			// a single rune wider than maxLen
			_, size := utf8.DecodeRuneInString(text)
			cut = size
		}

		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return chunks
}
