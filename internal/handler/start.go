package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the menu button
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	if c.Callback() == nil {
		h.logger.Info("User started bot",
			zap.Int64("chat_id", chatID),
			zap.String("username", c.Sender().Username),
		)
	}

	h.ResetState(chatID)
	h.endSession(chatID)
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	chatID := c.Chat().ID

	h.ResetState(chatID)
	h.endSession(chatID)
	if c.Callback() != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: "Cancelled"})
	}
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}
