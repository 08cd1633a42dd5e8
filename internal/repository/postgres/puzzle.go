package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"wordheist/internal/domain"

	"github.com/lib/pq"
)

const puzzleColumns = `id, date, letters, mystery_word, valid_words, theme, case_number, case_title, difficulty, created_at`

// PuzzleRepo implements repository.PuzzleRepository
type PuzzleRepo struct {
	db DBTX
}

// NewPuzzleRepo creates a new puzzle repository
func NewPuzzleRepo(db DBTX) *PuzzleRepo {
	return &PuzzleRepo{db: db}
}

// GetByDate returns the puzzle of a calendar date
func (r *PuzzleRepo) GetByDate(ctx context.Context, date time.Time) (*domain.Puzzle, error) {
	query := `SELECT ` + puzzleColumns + ` FROM puzzles WHERE date = $1`
	return r.getOne(ctx, query, domain.DateOf(date))
}

// GetByID returns a puzzle by id
func (r *PuzzleRepo) GetByID(ctx context.Context, puzzleID int64) (*domain.Puzzle, error) {
	query := `SELECT ` + puzzleColumns + ` FROM puzzles WHERE id = $1`
	return r.getOne(ctx, query, puzzleID)
}

// Insert stores a generated puzzle. When the date already has a puzzle nothing
// is written and false is returned; the caller re-reads.
func (r *PuzzleRepo) Insert(ctx context.Context, p *domain.Puzzle) (bool, error) {
	validWords, err := json.Marshal(p.ValidWords)
	if err != nil {
		return false, fmt.Errorf("encode valid words: %w", err)
	}

	query := `
		INSERT INTO puzzles (date, letters, mystery_word, valid_words, theme, case_number, case_title, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date) DO NOTHING
		RETURNING id, created_at
	`
	err = r.db.QueryRowContext(ctx, query,
		domain.DateOf(p.Date), pq.Array(p.Letters), p.MysteryWord, validWords,
		p.Theme, p.CaseNumber, p.CaseTitle, p.Difficulty,
	).Scan(&p.ID, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, translate(err)
	}
	return true, nil
}

func (r *PuzzleRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.Puzzle, error) {
	var p domain.Puzzle
	var validWords []byte

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Date, pq.Array(&p.Letters), &p.MysteryWord, &validWords,
		&p.Theme, &p.CaseNumber, &p.CaseTitle, &p.Difficulty, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(validWords, &p.ValidWords); err != nil {
		return nil, fmt.Errorf("decode valid words of puzzle %d: %w", p.ID, err)
	}
	return &p, nil
}
