package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText treats every non-command message as a guess
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}
	if text == "" {
		return nil
	}

	userID := userIDFrom(c)
	unlock := h.lockUser(userID)
	defer unlock()

	result, err := h.game.SubmitWord(context.Background(), userID, text)
	if err != nil {
		h.logger.Error("Failed to submit word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", text),
		)
		return c.Send(errorMessage(err))
	}

	return c.Send(formatWordResult(result), caseMarkup())
}
