package handler

import (
	"context"
	"strings"
	"time"
	"unicode"

	"wordheist/internal/domain"

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

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Same text as before: another tap already rendered it
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userIDFrom(c)); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// alert answers a callback with a popup, or a message for commands
func alert(c tele.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

// handleCallback handles callbacks not matched by a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	key := callback.Unique
	if key == "" {
		key = data
	}

	switch key {
	case btnHint.Unique:
		return h.handleHint(c)
	case btnSubmit.Unique:
		return h.handleSubmit(c)
	case btnLeaderboard.Unique:
		return h.handleLeaderboard(c)
	case btnStats.Unique:
		return h.handleStats(c)
	case btnCaseFile.Unique:
		return h.handleCaseFile(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleHint reveals the next unfound word
func (h *Handler) handleHint(c tele.Context) error {
	userID := userIDFrom(c)
	unlock := h.lockUser(userID)
	defer unlock()

	result, err := h.game.Hint(context.Background(), userID)
	if err != nil {
		if !isUserError(err) {
			h.logger.Error("Failed to dispense hint", zap.Int64("user_id", userID), zap.Error(err))
		}
		return alert(c, errorMessage(err))
	}

	return h.show(c, formatHint(result), caseMarkup())
}

// handleSubmit files the player's current progress as a score
func (h *Handler) handleSubmit(c tele.Context) error {
	ctx := context.Background()
	userID := userIDFrom(c)
	unlock := h.lockUser(userID)
	defer unlock()

	view, err := h.game.Progress(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load progress", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, errorMessage(err))
	}
	if view.StartedAt.IsZero() {
		return alert(c, "Find at least one word before filing the case.")
	}

	elapsed := h.puzzles.Now().Sub(view.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	result, err := h.scores.Submit(ctx, domain.ScoreSubmission{
		UserID:     userID,
		PuzzleID:   view.PuzzleID,
		Score:      view.Score,
		TimeTaken:  int(elapsed / time.Second),
		WordsFound: view.FoundWords,
	})
	if err != nil {
		h.logger.Error("Failed to submit score", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, errorMessage(err))
	}

	return h.show(c, formatSubmit(result, view), caseMarkup())
}

// handleLeaderboard shows today's ranking
func (h *Handler) handleLeaderboard(c tele.Context) error {
	ctx := context.Background()

	p, err := h.puzzles.Today(ctx)
	if err != nil {
		h.logger.Error("Failed to load today's puzzle", zap.Error(err))
		return alert(c, errorMessage(err))
	}

	entries, err := h.leaderboard.Leaderboard(ctx, domain.PeriodDaily, &p.ID)
	if err != nil {
		h.logger.Error("Failed to load leaderboard", zap.Int64("puzzle_id", p.ID), zap.Error(err))
		return alert(c, errorMessage(err))
	}

	return h.show(c, formatLeaderboard(p.CaseTitle, entries), caseMarkup())
}

// handleStats shows the player's record
func (h *Handler) handleStats(c tele.Context) error {
	userID := userIDFrom(c)

	stats, err := h.stats.UserStats(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, errorMessage(err))
	}

	return h.show(c, formatStats(stats), caseMarkup())
}

// handleCaseFile re-renders today's case in place
func (h *Handler) handleCaseFile(c tele.Context) error {
	ctx := context.Background()
	userID := userIDFrom(c)

	p, err := h.puzzles.Today(ctx)
	if err != nil {
		h.logger.Error("Failed to load today's puzzle", zap.Error(err))
		return alert(c, errorMessage(err))
	}

	view, err := h.game.Progress(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load progress", zap.Int64("user_id", userID), zap.Error(err))
		return alert(c, errorMessage(err))
	}

	return h.show(c, formatCase(p, view), caseMarkup())
}
