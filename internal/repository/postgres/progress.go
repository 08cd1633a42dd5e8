package postgres

import (
	"context"
	"database/sql"

	"wordheist/internal/domain"

	"github.com/lib/pq"
)

const progressColumns = `id, user_id, puzzle_id, found_words, revealed_words, score, hints_used, completed, created_at, updated_at`

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db DBTX
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db DBTX) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Get returns the progress of a user on a puzzle
func (r *ProgressRepo) Get(ctx context.Context, userID, puzzleID int64) (*domain.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE user_id = $1 AND puzzle_id = $2`
	return r.getOne(ctx, query, userID, puzzleID)
}

// GetForUpdate returns the progress and locks the row until the transaction ends
func (r *ProgressRepo) GetForUpdate(ctx context.Context, userID, puzzleID int64) (*domain.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress WHERE user_id = $1 AND puzzle_id = $2 FOR UPDATE`
	return r.getOne(ctx, query, userID, puzzleID)
}

// Create inserts an empty progress row
func (r *ProgressRepo) Create(ctx context.Context, p *domain.Progress) error {
	if p.FoundWords == nil {
		p.FoundWords = []string{}
	}
	if p.RevealedWords == nil {
		p.RevealedWords = []string{}
	}
	query := `
		INSERT INTO progress (user_id, puzzle_id, found_words, revealed_words, score, hints_used, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.PuzzleID, pq.Array(p.FoundWords), pq.Array(p.RevealedWords), p.Score, p.HintsUsed, p.Completed,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// Update writes back found and revealed words, score, hints used and completion
func (r *ProgressRepo) Update(ctx context.Context, p *domain.Progress) error {
	query := `
		UPDATE progress
		SET found_words = $2, revealed_words = $3, score = $4, hints_used = $5, completed = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, pq.Array(p.FoundWords), pq.Array(p.RevealedWords), p.Score, p.HintsUsed, p.Completed,
	)
	return err
}

func (r *ProgressRepo) getOne(ctx context.Context, query string, userID, puzzleID int64) (*domain.Progress, error) {
	var p domain.Progress
	err := r.db.QueryRowContext(ctx, query, userID, puzzleID).Scan(
		&p.ID, &p.UserID, &p.PuzzleID, pq.Array(&p.FoundWords), pq.Array(&p.RevealedWords), &p.Score, &p.HintsUsed, &p.Completed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
