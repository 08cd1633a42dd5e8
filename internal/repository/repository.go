package repository

import (
	"context"
	"time"

	"wordheist/internal/domain"
)

// Lookups return (nil, nil) when the row does not exist.
// Unique violations surface as domain.ErrConstraintConflict.

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, userID int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	AddScore(ctx context.Context, userID int64, points int) error
	SetHintsRemaining(ctx context.Context, userID int64, hints int) error
	UpdateStreak(ctx context.Context, userID int64, streak int, lastPlayed time.Time) error
	SetPremium(ctx context.Context, userID int64, until time.Time) error
}

// PuzzleRepository defines puzzle data operations
type PuzzleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.Puzzle, error)
	GetByID(ctx context.Context, puzzleID int64) (*domain.Puzzle, error)
	// Insert stores p unless a puzzle for its date exists; reports whether it wrote
	Insert(ctx context.Context, p *domain.Puzzle) (bool, error)
}

// ProgressRepository defines progress data operations
type ProgressRepository interface {
	Get(ctx context.Context, userID, puzzleID int64) (*domain.Progress, error)
	GetForUpdate(ctx context.Context, userID, puzzleID int64) (*domain.Progress, error)
	Create(ctx context.Context, p *domain.Progress) error
	Update(ctx context.Context, p *domain.Progress) error
}

// ScoreRepository defines score data operations
type ScoreRepository interface {
	GetForUpdate(ctx context.Context, userID, puzzleID int64) (*domain.Score, error)
	Create(ctx context.Context, s *domain.Score) error
	Update(ctx context.Context, s *domain.Score) error
	Aggregate(ctx context.Context, userID int64) (domain.ScoreAggregate, error)
	Leaderboard(ctx context.Context, q domain.LeaderboardQuery) ([]domain.LeaderboardEntry, error)
}

// Repos groups repositories bound to the same connection or transaction
type Repos struct {
	Users    UserRepository
	Puzzles  PuzzleRepository
	Progress ProgressRepository
	Scores   ScoreRepository
}

// TxRunner runs a unit of work inside one transaction.
// A non-nil error from fn rolls the transaction back.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(r Repos) error) error
}
