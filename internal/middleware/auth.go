package middleware

import (
	"flashvocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const adminOnlyText = "Admin access required. Use /admin to enter the passcode."

// AdminOnly rejects admin buttons from chats that have not entered the passcode
func AdminOnly(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chatID := c.Chat().ID

			if !authService.IsAuthorized(chatID) {
				logger.Info("Rejected admin action from locked chat",
					zap.Int64("chat_id", chatID),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: adminOnlyText, ShowAlert: true})
				}
				return c.Send(adminOnlyText)
			}

			// Chat is unlocked, continue
			return next(c)
		}
	}
}
