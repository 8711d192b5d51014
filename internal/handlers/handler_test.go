package handlers

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemma-demo-webui/internal/synth"
	"gemma-demo-webui/internal/telegram"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeMessenger struct {
	sent   []sentMessage
	typing int
}

func (f *fakeMessenger) SendText(chatID int64, text string) error {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeMessenger) SendTyping(int64) {
	f.typing++
}

func command(text string) *tgbotapi.Message {
	name := strings.SplitN(text, " ", 2)[0]
	return &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: 42},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}
}

func newHandler() (*Handler, *fakeMessenger) {
	fm := &fakeMessenger{}
	return New(Options{Telegram: fm}), fm
}

func handle(t *testing.T, h *Handler, msg *tgbotapi.Message) {
	t.Helper()
	require.NoError(t, h.HandleUpdate(context.Background(), telegram.Update{Message: msg}))
}

func TestHandleUpdateIgnoresEmpty(t *testing.T) {
	h, fm := newHandler()
	require.NoError(t, h.HandleUpdate(context.Background(), telegram.Update{}))
	assert.Empty(t, fm.sent)
}

func TestHandleCommands(t *testing.T) {
	h, fm := newHandler()

	handle(t, h, command("/load"))
	handle(t, h, command("/text 请解释量子计算"))
	handle(t, h, command("/text"))
	handle(t, h, command("/bogus"))

	require.Len(t, fm.sent, 4)
	assert.Equal(t, synth.ModelStatus(), fm.sent[0].text)
	assert.Contains(t, fm.sent[1].text, "最大长度：200 tokens")
	assert.True(t, strings.HasPrefix(fm.sent[2].text, "请输入文本提示"))
	assert.Contains(t, fm.sent[3].text, "/help")
	for _, m := range fm.sent {
		assert.Equal(t, int64(42), m.chatID)
	}
}

func TestHandlePhotoWithCaption(t *testing.T) {
	h, fm := newHandler()

	handle(t, h, &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: 7},
		Caption: "Describe this.",
		Photo:   []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large"}},
	})

	require.Len(t, fm.sent, 1)
	assert.Contains(t, fm.sent[0].text, "已接收图像输入")
	assert.Contains(t, fm.sent[0].text, "Describe this."+synth.Ellipsis)
	assert.Equal(t, 1, fm.typing)
}

func TestHandlePhotoWithoutCaption(t *testing.T) {
	h, fm := newHandler()

	handle(t, h, &tgbotapi.Message{
		Chat:  &tgbotapi.Chat{ID: 7},
		Photo: []tgbotapi.PhotoSize{{FileID: "only"}},
	})

	require.Len(t, fm.sent, 1)
	assert.Equal(t, synth.Synthesize(synth.Absent(), true, synth.DefaultExcerptLength), fm.sent[0].text)
}

func TestHandleText(t *testing.T) {
	h, fm := newHandler()

	handle(t, h, &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}, Text: "hello"})
	handle(t, h, &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}, Text: "   "})

	require.Len(t, fm.sent, 1)
	assert.Equal(t, synth.Synthesize(synth.TextFrom("hello"), false, synth.DefaultExcerptLength), fm.sent[0].text)
}

func TestHandleUpdateCanceledContext(t *testing.T) {
	h, fm := newHandler()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.HandleUpdate(ctx, telegram.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 1}, Text: "hi"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fm.sent)
}
