package middleware

import (
	"gopkg.in/telebot.v3"
)

// EditOrSend edits the message behind a callback, falling back to a fresh
// message when editing is not possible (e.g. the message is too old).
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		if err := c.Edit(text, markup); err != nil {
			return c.Send(text, markup)
		}
		return nil
	}
	if err := c.Edit(text); err != nil {
		return c.Send(text)
	}
	return nil
}
