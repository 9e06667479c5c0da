// Package handler is the telebot glue: it converts Telegram updates
// into the inbound envelope and hands them to the dispatcher.
package handler

import (
	"strings"
	"unicode"

	"askbot/internal/dispatcher"
	"askbot/internal/processor"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler registers the bot handlers and feeds the dispatcher
type Handler struct {
	bot        *tele.Bot
	dispatcher *dispatcher.Dispatcher
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, d *dispatcher.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		dispatcher: d,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleText)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleText feeds a free-text message through the dispatcher
func (h *Handler) handleText(c tele.Context) error {
	in := processor.Incoming{
		ChatID:   c.Chat().ID,
		SenderID: c.Sender().ID,
		Text:     c.Text(),
	}

	h.dispatch(in)
	return nil
}

// handleCallback feeds an inline button press through the dispatcher
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	in := processor.Incoming{
		ChatID:   c.Chat().ID,
		SenderID: c.Sender().ID,
		Callback: cleanCallbackData(callback.Data),
	}

	h.dispatch(in)
	return c.Respond()
}

// dispatch runs the update through the state machine. Internal errors
// are logged for operators only, the user never sees them.
func (h *Handler) dispatch(in processor.Incoming) {
	if err := h.dispatcher.Dispatch(in); err != nil {
		h.logger.Error("Failed to process update",
			zap.Int64("chat_id", in.ChatID),
			zap.Int64("sender_id", in.SenderID),
			zap.Error(err),
		)
	}
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
