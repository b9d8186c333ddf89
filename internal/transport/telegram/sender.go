package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/pkg/conv"
	"github.com/sandevgo/termcore/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const (
	maxTelegramMsgLen = 4000 // Safety margin below 4096
	// raw text per chunk, leaving room for HTML escaping
	maxChunkText = 3000

	emptyReply   = "(no output)"
	clearedReply = "(screen cleared)"
)

// renderResult turns one dispatcher result into Telegram HTML messages, one
// code block per chunk.
func renderResult(result string) []string {
	switch result {
	case "":
		return []string{emptyReply}
	case core.ClearScreen:
		return []string{clearedReply}
	}

	return renderChunks(result, maxChunkText)
}

// renderChunks halves the raw chunk size until every rendered chunk fits,
// since HTML escaping can grow text up to five times.
func renderChunks(text string, limit int) []string {
	var messages []string
	for _, part := range conv.SplitText(text, limit) {
		html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(conv.CodeBlock(part))))
		if len(html) > maxTelegramMsgLen && limit > 1 {
			messages = append(messages, renderChunks(part, limit/2)...)
			continue
		}
		messages = append(messages, html)
	}
	return messages
}

// sendResult sends every rendered chunk in order, stopping at the first
// failure.
func sendResult(ctx context.Context, c tele.Context, result string) error {
	logger := log.FromCtx(ctx)

	for i, chunk := range renderResult(result) {
		opts := []interface{}{tele.ModeHTML}
		if chunk == emptyReply || chunk == clearedReply {
			opts = nil
		}
		if err := c.Send(chunk, opts...); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}
