package telegram

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type recordingDispatcher struct {
	lines []string
	reply func(line string) string
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, line string) core.Result {
	return core.Success(d.Execute(ctx, line))
}

func (d *recordingDispatcher) Execute(_ context.Context, line string) string {
	d.lines = append(d.lines, line)
	if d.reply != nil {
		return d.reply(line)
	}
	return strings.TrimPrefix(line, "echo ")
}

func (d *recordingDispatcher) ListCommands() []core.Command { return nil }

type sentMessage struct {
	what string
	opts []interface{}
}

// fakeContext implements the parts of tele.Context the handlers touch.
type fakeContext struct {
	tele.Context
	sender *tele.User
	text   string
	store  map[string]interface{}
	sent   []sentMessage
}

func (c *fakeContext) Sender() *tele.User { return c.sender }
func (c *fakeContext) Text() string       { return c.text }
func (c *fakeContext) Notify(tele.ChatAction) error {
	return nil
}
func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, sentMessage{what: what.(string), opts: opts})
	return nil
}
func (c *fakeContext) Get(key string) interface{} { return c.store[key] }
func (c *fakeContext) Set(key string, v interface{}) {
	if c.store == nil {
		c.store = map[string]interface{}{}
	}
	c.store[key] = v
}

func newTestBot(d core.Dispatcher) *Bot {
	return &Bot{dispatcher: d, ownerID: 42}
}

func TestBot_IgnoresStrangers(t *testing.T) {
	d := &recordingDispatcher{}
	bot := newTestBot(d)
	handler := bot.ownerOnly(bot.handleMessage)

	for _, c := range []*fakeContext{
		{sender: &tele.User{ID: 7}, text: "pwd"},
		{sender: nil, text: "pwd"},
	} {
		require.NoError(t, handler(c))
		assert.Empty(t, c.sent)
	}
	assert.Empty(t, d.lines)
}

func TestBot_OwnerCommand(t *testing.T) {
	d := &recordingDispatcher{}
	bot := newTestBot(d)
	handler := bot.ownerOnly(bot.handleMessage)

	c := &fakeContext{sender: &tele.User{ID: 42}, text: "  echo a < b  "}
	c.Set(baseContextKey, context.Background())
	require.NoError(t, handler(c))

	assert.Equal(t, []string{"echo a < b"}, d.lines)
	require.Len(t, c.sent, 1)
	assert.Equal(t, "<pre><code>a &lt; b\n</code></pre>", c.sent[0].what)
	assert.Equal(t, []interface{}{tele.ModeHTML}, c.sent[0].opts)
}

func TestBot_BlankMessage(t *testing.T) {
	d := &recordingDispatcher{}
	bot := newTestBot(d)

	c := &fakeContext{sender: &tele.User{ID: 42}, text: "   "}
	require.NoError(t, bot.ownerOnly(bot.handleMessage)(c))
	assert.Empty(t, d.lines)
	assert.Empty(t, c.sent)
}

func TestRenderResult(t *testing.T) {
	assert.Equal(t, []string{emptyReply}, renderResult(""))
	assert.Equal(t, []string{clearedReply}, renderResult(core.ClearScreen))
	assert.Equal(t, []string{"<pre><code>Unknown command: x\n</code></pre>"}, renderResult("Unknown command: x"))
}

func TestRenderResult_LongOutput(t *testing.T) {
	long := strings.Repeat("0123456789 & <tag>\n", 600)
	messages := renderResult(long)

	require.Greater(t, len(messages), 1)
	for _, m := range messages {
		assert.LessOrEqual(t, len(m), maxTelegramMsgLen)
		assert.True(t, strings.HasPrefix(m, "<pre><code>"), "chunk should be its own code block")
	}
}

func TestSendResult_PlainForPlaceholders(t *testing.T) {
	c := &fakeContext{}
	require.NoError(t, sendResult(context.Background(), c, ""))
	require.Len(t, c.sent, 1)
	assert.Equal(t, emptyReply, c.sent[0].what)
	assert.Empty(t, c.sent[0].opts)
}
