package service

import (
	"context"
	"fmt"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/game"
	"wordheist/internal/repository"

	"go.uber.org/zap"
)

// ScoreService records finished sessions and keeps streaks
type ScoreService struct {
	tx      repository.TxRunner
	puzzles *PuzzleService
	logger  *zap.Logger
	now     func() time.Time
}

// NewScoreService creates a new score service
func NewScoreService(tx repository.TxRunner, puzzles *PuzzleService, logger *zap.Logger) *ScoreService {
	return &ScoreService{
		tx:      tx,
		puzzles: puzzles,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the time source
func (s *ScoreService) WithClock(now func() time.Time) *ScoreService {
	s.now = now
	return s
}

// Submit stores a session result. A resubmission only replaces the stored row
// when it scores strictly higher, and never touches the streak; the streak is
// reconciled once, when the first row for the puzzle is created.
func (s *ScoreService) Submit(ctx context.Context, sub domain.ScoreSubmission) (*domain.SubmitResult, error) {
	if sub.Score < 0 || sub.TimeTaken < 0 {
		return nil, fmt.Errorf("%w: score and time must not be negative", domain.ErrInvalidInput)
	}
	if sub.PuzzleID <= 0 {
		return nil, fmt.Errorf("%w: puzzle id is required", domain.ErrInvalidInput)
	}

	p, err := s.puzzles.ByID(ctx, sub.PuzzleID)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(sub.WordsFound))
	completed := false
	for _, w := range sub.WordsFound {
		w = game.NormalizeWord(w)
		if w == "" {
			continue
		}
		words = append(words, w)
		if w == p.MysteryWord {
			completed = true
		}
	}

	var result *domain.SubmitResult
	err = inTx(ctx, s.tx, func(r repository.Repos) error {
		existing, err := r.Scores.GetForUpdate(ctx, sub.UserID, sub.PuzzleID)
		if err != nil {
			return err
		}

		if existing != nil {
			result = &domain.SubmitResult{BestScore: existing.Score}
			if sub.Score > existing.Score {
				existing.Score = sub.Score
				existing.TimeTaken = sub.TimeTaken
				existing.WordsFound = words
				existing.Completed = completed
				if err := r.Scores.Update(ctx, existing); err != nil {
					return fmt.Errorf("update score: %w", err)
				}
				result.Improved = true
				result.BestScore = sub.Score
			}

			user, err := r.Users.GetByID(ctx, sub.UserID)
			if err != nil {
				return err
			}
			if user != nil {
				result.Streak = user.Streak
			}
			return nil
		}

		score := &domain.Score{
			UserID:     sub.UserID,
			PuzzleID:   sub.PuzzleID,
			Score:      sub.Score,
			TimeTaken:  sub.TimeTaken,
			WordsFound: words,
			Completed:  completed,
		}
		if err := r.Scores.Create(ctx, score); err != nil {
			return err
		}

		user, err := r.Users.GetByIDForUpdate(ctx, sub.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", sub.UserID, domain.ErrNotFound)
		}

		today := domain.DateOf(s.now())
		streak := game.NextStreak(user.Streak, user.LastPlayed, today)
		if err := r.Users.UpdateStreak(ctx, sub.UserID, streak, today); err != nil {
			return fmt.Errorf("update streak: %w", err)
		}

		result = &domain.SubmitResult{
			Created:   true,
			Improved:  true,
			BestScore: sub.Score,
			Streak:    streak,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Score submitted",
		zap.Int64("user_id", sub.UserID),
		zap.Int64("puzzle_id", sub.PuzzleID),
		zap.Int("score", sub.Score),
		zap.Bool("created", result.Created),
		zap.Bool("improved", result.Improved),
		zap.Int("streak", result.Streak),
	)
	return result, nil
}
