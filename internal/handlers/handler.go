package handlers

import (
	"context"
	"log/slog"
	"strings"

	"gemma-demo-webui/internal/logging"
	"gemma-demo-webui/internal/synth"
	"gemma-demo-webui/internal/telegram"
)

// Messenger is the part of the Telegram client the handler talks to.
type Messenger interface {
	SendText(chatID int64, text string) error
	SendTyping(chatID int64)
}

type Options struct {
	Telegram    Messenger
	Synthesizer *synth.Synthesizer
	Logger      *slog.Logger
}

type Handler struct {
	tg     Messenger
	synth  *synth.Synthesizer
	logger *slog.Logger
}

func New(opts Options) *Handler {
	s := opts.Synthesizer
	if s == nil {
		s = synth.New(synth.Options{})
	}

	return &Handler{
		tg:     opts.Telegram,
		synth:  s,
		logger: logging.OrDiscard(opts.Logger),
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update telegram.Update) error {
	if update.Message == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := update.Message
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		return h.handleCommand(chatID, msg)
	}

	if len(msg.Photo) > 0 {
		return h.handlePhoto(chatID, msg)
	}

	if msg.Text != "" {
		return h.handleText(chatID, msg.Text)
	}

	return nil
}

func (h *Handler) handleCommand(chatID int64, msg *telegram.Message) error {
	switch msg.Command() {
	case "start":
		return h.tg.SendText(chatID,
			synth.ModelName()+" 演示机器人\n\n"+
				"发送文本或带说明的图片，即可查看模型的演示响应。\n\n"+
				"命令：\n"+
				"/start - 启动\n"+
				"/help - 帮助\n"+
				"/load - 加载模型（演示）\n"+
				"/text <提示> - 纯文本生成",
		)
	case "help":
		return h.tg.SendText(chatID,
			"发送文本 — 返回文本演示响应。\n"+
				"发送图片（可附说明）— 返回图像-文本演示响应。\n"+
				"/text <提示> — 纯文本生成演示。\n\n"+
				"说明：当前为演示模式，未加载任何模型参数。",
		)
	case "load":
		return h.tg.SendText(chatID, synth.ModelStatus())
	case "text":
		h.tg.SendTyping(chatID)
		text := synth.TextFrom(msg.CommandArguments())
		return h.tg.SendText(chatID, synth.GenerateText(text, synth.MaxTokens.Default))
	default:
		return h.tg.SendText(chatID, "未知命令。请使用 /help 查看帮助。")
	}
}

// handlePhoto never downloads the photo: its presence is all the response
// depends on.
func (h *Handler) handlePhoto(chatID int64, msg *telegram.Message) error {
	h.tg.SendTyping(chatID)

	photo := msg.Photo[len(msg.Photo)-1]
	resp := h.synth.Respond(synth.Request{
		Image: &synth.Image{MimeType: "image/jpeg"},
		Text:  synth.TextFrom(msg.Caption),
	})
	h.logger.Debug("photo response", "chat_id", chatID, "file_id", photo.FileID, "template", resp.Template)

	return h.tg.SendText(chatID, resp.Text)
}

func (h *Handler) handleText(chatID int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	h.tg.SendTyping(chatID)
	resp := h.synth.Respond(synth.Request{Text: synth.TextFrom(text)})
	return h.tg.SendText(chatID, resp.Text)
}
