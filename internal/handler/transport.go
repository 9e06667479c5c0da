package handler

import (
	"askbot/internal/processor"

	tele "gopkg.in/telebot.v3"
)

// Transport sends outbound messages over the Telegram bot API.
// It backs both the dispatcher (conversation replies) and the
// publisher (channel fan-out).
type Transport struct {
	bot *tele.Bot
}

// NewTransport creates a transport over the given bot
func NewTransport(bot *tele.Bot) *Transport {
	return &Transport{bot: bot}
}

// Send delivers a message with an optional inline keyboard
// to a conversation
func (t *Transport) Send(chatID int64, text string, keyboard [][]processor.Button) error {
	if keyboard == nil {
		_, err := t.bot.Send(tele.ChatID(chatID), text)
		return err
	}
	_, err := t.bot.Send(tele.ChatID(chatID), text, inlineMarkup(keyboard))
	return err
}

// SendTo delivers a message to a channel by its identifier,
// either a numeric chat id or an @username
func (t *Transport) SendTo(channelID string, text string) error {
	_, err := t.bot.Send(channelRecipient(channelID), text)
	return err
}

// channelRecipient lets a raw channel identifier string
// satisfy tele.Recipient
type channelRecipient string

func (r channelRecipient) Recipient() string {
	return string(r)
}

// inlineMarkup converts processor button rows into a telebot
// inline keyboard
func inlineMarkup(keyboard [][]processor.Button) *tele.ReplyMarkup {
	rows := make([][]tele.InlineButton, 0, len(keyboard))
	for _, row := range keyboard {
		btns := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, tele.InlineButton{Text: b.Label, Data: b.Data})
		}
		rows = append(rows, btns)
	}
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}
