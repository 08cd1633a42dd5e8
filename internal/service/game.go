package service

import (
	"context"
	"fmt"

	"wordheist/internal/domain"
	"wordheist/internal/game"
	"wordheist/internal/repository"

	"go.uber.org/zap"
)

// GameService applies guesses and hints to a player's progress on today's case
type GameService struct {
	tx      repository.TxRunner
	repos   repository.Repos
	puzzles *PuzzleService
	logger  *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(tx repository.TxRunner, repos repository.Repos, puzzles *PuzzleService, logger *zap.Logger) *GameService {
	return &GameService{
		tx:      tx,
		repos:   repos,
		puzzles: puzzles,
		logger:  logger,
	}
}

// SubmitWord classifies a guess and, when it is new and valid, credits the
// progress and the user's total in one transaction.
func (s *GameService) SubmitWord(ctx context.Context, userID int64, raw string) (*domain.WordResult, error) {
	word := game.NormalizeWord(raw)
	if word == "" {
		return nil, fmt.Errorf("%w: word is required", domain.ErrInvalidInput)
	}

	p, err := s.puzzles.Today(ctx)
	if err != nil {
		return nil, err
	}

	var result *domain.WordResult
	err = inTx(ctx, s.tx, func(r repository.Repos) error {
		prog, err := progressForUpdate(ctx, r, userID, p.ID)
		if err != nil {
			return err
		}

		class, points := game.Classify(p, prog, word)
		if class.Awards() {
			game.Apply(prog, word, class, points)
			if err := r.Progress.Update(ctx, prog); err != nil {
				return fmt.Errorf("update progress: %w", err)
			}
			if err := r.Users.AddScore(ctx, userID, points); err != nil {
				return fmt.Errorf("add user score: %w", err)
			}
		}

		result = &domain.WordResult{
			Word:           word,
			Classification: class,
			Points:         points,
			Score:          prog.Score,
			Completed:      prog.Completed,
			FoundWords:     append([]string(nil), prog.FoundWords...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Classification.Awards() {
		s.logger.Info("Word found",
			zap.Int64("user_id", userID),
			zap.Int64("puzzle_id", p.ID),
			zap.String("word", word),
			zap.String("result", string(result.Classification)),
			zap.Int("points", result.Points),
		)
	}
	return result, nil
}

// Hint reveals the next word not yet found or revealed. Costs one hint unless
// the user is premium.
func (s *GameService) Hint(ctx context.Context, userID int64) (*domain.HintResult, error) {
	p, err := s.puzzles.Today(ctx)
	if err != nil {
		return nil, err
	}

	var result *domain.HintResult
	err = inTx(ctx, s.tx, func(r repository.Repos) error {
		// progress before user, same lock order as SubmitWord
		prog, err := progressForUpdate(ctx, r, userID, p.ID)
		if err != nil {
			return err
		}

		user, err := r.Users.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		if !user.CanTakeHint() {
			return domain.ErrHintsExhausted
		}

		word, ok := game.NextHint(p, prog)
		if !ok {
			return domain.ErrNoWordsRemaining
		}

		if !user.Premium {
			user.HintsRemaining--
			if err := r.Users.SetHintsRemaining(ctx, userID, user.HintsRemaining); err != nil {
				return fmt.Errorf("spend hint: %w", err)
			}
		}
		prog.RevealedWords = append(prog.RevealedWords, word)
		prog.HintsUsed++
		if err := r.Progress.Update(ctx, prog); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}

		result = &domain.HintResult{
			Word:           word,
			HintsUsed:      prog.HintsUsed,
			HintsRemaining: user.HintsRemaining,
			Premium:        user.Premium,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Hint dispensed",
		zap.Int64("user_id", userID),
		zap.Int64("puzzle_id", p.ID),
		zap.Int("hints_used", result.HintsUsed),
		zap.Int("hints_remaining", result.HintsRemaining),
	)
	return result, nil
}

// Progress returns the player's state on today's case without creating a row
func (s *GameService) Progress(ctx context.Context, userID int64) (*domain.ProgressView, error) {
	p, err := s.puzzles.Today(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}

	view := &domain.ProgressView{
		PuzzleID:       p.ID,
		FoundWords:     []string{},
		RevealedWords:  []string{},
		HintsRemaining: user.HintsRemaining,
		Premium:        user.Premium,
		TotalWords:     p.ValidWords.Total(),
	}

	prog, err := s.repos.Progress.Get(ctx, userID, p.ID)
	if err != nil {
		return nil, err
	}
	if prog != nil {
		view.FoundWords = prog.FoundWords
		view.RevealedWords = prog.RevealedWords
		view.Score = prog.Score
		view.HintsUsed = prog.HintsUsed
		view.Completed = prog.Completed
		view.StartedAt = prog.CreatedAt
	}
	return view, nil
}
