package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", userIDFrom(c)),
		zap.Int64("telegram_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	return c.Send(welcomeText, caseMarkup())
}

// handlePuzzle handles /puzzle command and the Case file button
func (h *Handler) handlePuzzle(c tele.Context) error {
	ctx := context.Background()
	userID := userIDFrom(c)

	p, err := h.puzzles.Today(ctx)
	if err != nil {
		h.logger.Error("Failed to load today's puzzle", zap.Error(err))
		return c.Send(errorMessage(err))
	}

	view, err := h.game.Progress(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load progress", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(errorMessage(err))
	}

	return c.Send(formatCase(p, view), caseMarkup())
}
