package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// isNotModified reports Telegram's refusal to edit a message into identical content
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// editOrSend edits the message behind a callback, or sends a new one for commands.
// The callback itself must be acknowledged by the caller.
func (h *Handler) editOrSend(c tele.Context, what string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(what, markup)
	}

	err := c.Edit(what, markup)
	if err == nil {
		return nil
	}
	// Message was already modified by another callback
	if isNotModified(err) {
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("callback_id", c.Callback().ID),
	)
	return c.Send(what, markup)
}

// handleCallback handles callback queries no button handler claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Chat().ID),
	)
	return c.Respond(&tele.CallbackResponse{Text: "This button is no longer active."})
}
