package service

import (
	"context"
	"fmt"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/puzzle"
	"wordheist/internal/repository"

	"go.uber.org/zap"
)

// PuzzleService hands out the daily case, creating it on first access
type PuzzleService struct {
	puzzles repository.PuzzleRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewPuzzleService creates a new puzzle service
func NewPuzzleService(puzzles repository.PuzzleRepository, logger *zap.Logger) *PuzzleService {
	return &PuzzleService{
		puzzles: puzzles,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock replaces the time source
func (s *PuzzleService) WithClock(now func() time.Time) *PuzzleService {
	s.now = now
	return s
}

// Now returns the current time of the service clock
func (s *PuzzleService) Now() time.Time {
	return s.now()
}

// Today returns the puzzle of the current UTC date
func (s *PuzzleService) Today(ctx context.Context) (*domain.Puzzle, error) {
	return s.ForDate(ctx, s.now())
}

// ForDate returns the stored puzzle of a date, generating and storing it if absent.
// Concurrent first requests converge on a single row.
func (s *PuzzleService) ForDate(ctx context.Context, date time.Time) (*domain.Puzzle, error) {
	day := domain.DateOf(date)

	p, err := s.puzzles.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", domain.DateString(day), err)
	}
	if p != nil {
		return p, nil
	}

	generated := puzzle.Generate(day)
	created, err := s.puzzles.Insert(ctx, generated)
	if err != nil && !domain.IsRetryable(err) {
		return nil, fmt.Errorf("store puzzle %s: %w", domain.DateString(day), err)
	}
	if created {
		s.logger.Info("Puzzle created",
			zap.String("date", domain.DateString(day)),
			zap.Int64("puzzle_id", generated.ID),
			zap.String("theme", generated.Theme),
			zap.Int("case_number", generated.CaseNumber),
		)
		return generated, nil
	}

	// someone else stored it first
	p, err = s.puzzles.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("reload puzzle %s: %w", domain.DateString(day), err)
	}
	if p == nil {
		return nil, fmt.Errorf("puzzle %s missing after insert conflict: %w", domain.DateString(day), domain.ErrConstraintConflict)
	}
	return p, nil
}

// ByID returns a stored puzzle
func (s *PuzzleService) ByID(ctx context.Context, puzzleID int64) (*domain.Puzzle, error) {
	p, err := s.puzzles.GetByID(ctx, puzzleID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("puzzle %d: %w", puzzleID, domain.ErrNotFound)
	}
	return p, nil
}
