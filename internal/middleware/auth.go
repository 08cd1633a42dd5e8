package middleware

import (
	"context"

	"wordheist/internal/domain"
	"wordheist/internal/handler"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// TelegramUsers resolves a Telegram sender to an account
type TelegramUsers interface {
	EnsureTelegramUser(ctx context.Context, telegramID int64, username string) (*domain.User, error)
}

// AuthMiddleware resolves the sender to an account and stores its id on the context
func AuthMiddleware(users TelegramUsers, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			u, err := users.EnsureTelegramUser(context.Background(), sender.ID, sender.Username)
			if err != nil {
				logger.Error("Failed to resolve telegram user",
					zap.Int64("telegram_id", sender.ID),
					zap.Error(err),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Something went wrong. Please try again later."})
				}
				return c.Send("Something went wrong. Please try again later.")
			}

			c.Set(handler.UserIDKey, u.ID)
			return next(c)
		}
	}
}
