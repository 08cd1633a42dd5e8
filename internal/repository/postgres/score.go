package postgres

import (
	"context"
	"database/sql"

	"wordheist/internal/domain"

	"github.com/lib/pq"
)

const scoreColumns = `id, user_id, puzzle_id, score, time_taken, words_found, completed, created_at, updated_at`

// ScoreRepo implements repository.ScoreRepository
type ScoreRepo struct {
	db DBTX
}

// NewScoreRepo creates a new score repository
func NewScoreRepo(db DBTX) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// GetForUpdate returns the stored score and locks the row until the transaction ends
func (r *ScoreRepo) GetForUpdate(ctx context.Context, userID, puzzleID int64) (*domain.Score, error) {
	var s domain.Score
	query := `SELECT ` + scoreColumns + ` FROM scores WHERE user_id = $1 AND puzzle_id = $2 FOR UPDATE`
	err := r.db.QueryRowContext(ctx, query, userID, puzzleID).Scan(
		&s.ID, &s.UserID, &s.PuzzleID, &s.Score, &s.TimeTaken, pq.Array(&s.WordsFound), &s.Completed, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts the first score of a user on a puzzle
func (r *ScoreRepo) Create(ctx context.Context, s *domain.Score) error {
	if s.WordsFound == nil {
		s.WordsFound = []string{}
	}
	query := `
		INSERT INTO scores (user_id, puzzle_id, score, time_taken, words_found, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.PuzzleID, s.Score, s.TimeTaken, pq.Array(s.WordsFound), s.Completed,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return translate(err)
}

// Update overwrites score, time and words together
func (r *ScoreRepo) Update(ctx context.Context, s *domain.Score) error {
	if s.WordsFound == nil {
		s.WordsFound = []string{}
	}
	query := `
		UPDATE scores
		SET score = $2, time_taken = $3, words_found = $4, completed = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Score, s.TimeTaken, pq.Array(s.WordsFound), s.Completed)
	return err
}

// Aggregate returns count, sum, average and best over a user's scores
func (r *ScoreRepo) Aggregate(ctx context.Context, userID int64) (domain.ScoreAggregate, error) {
	var agg domain.ScoreAggregate
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(score), 0),
			COALESCE(AVG(score), 0),
			COALESCE(MAX(score), 0),
			COUNT(*) FILTER (WHERE completed)
		FROM scores
		WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&agg.Count, &agg.Sum, &agg.Average, &agg.Best, &agg.Completed)
	return agg, err
}

// Leaderboard returns the top scores. The query orders rows so LIMIT keeps the
// right ones; ranks are assigned by domain.RankEntries.
func (r *ScoreRepo) Leaderboard(ctx context.Context, q domain.LeaderboardQuery) ([]domain.LeaderboardEntry, error) {
	var puzzleID sql.NullInt64
	if q.PuzzleID != nil {
		puzzleID = sql.NullInt64{Int64: *q.PuzzleID, Valid: true}
	}
	var since sql.NullTime
	if q.Since != nil {
		since = sql.NullTime{Time: *q.Since, Valid: true}
	}
	limit := q.Limit
	if limit <= 0 || limit > domain.LeaderboardLimit {
		limit = domain.LeaderboardLimit
	}

	query := `
		SELECT s.id, u.username, s.score, s.time_taken, s.created_at
		FROM scores s
		JOIN users u ON u.id = s.user_id
		WHERE ($1::BIGINT IS NULL OR s.puzzle_id = $1)
			AND ($2::TIMESTAMPTZ IS NULL OR s.created_at >= $2)
		ORDER BY s.score DESC, s.created_at ASC, s.id ASC
		LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, puzzleID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.ScoreID, &e.Username, &e.Score, &e.TimeTaken, &e.SubmittedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	domain.RankEntries(entries)
	return entries, nil
}
