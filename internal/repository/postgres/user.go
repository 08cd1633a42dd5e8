package postgres

import (
	"context"
	"database/sql"
	"time"

	"wordheist/internal/domain"
)

const userColumns = `id, username, COALESCE(email, ''), COALESCE(password_hash, ''), telegram_id,
	total_score, streak, last_played, hints_remaining, premium, premium_until, created_at`

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db DBTX
}

// NewUserRepo creates a new user repository
func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user and fills in its id and creation time
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, telegram_id, hints_remaining)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
		RETURNING id, created_at
	`
	var telegramID sql.NullInt64
	if u.TelegramID != nil {
		telegramID = sql.NullInt64{Int64: *u.TelegramID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, telegramID, u.HintsRemaining,
	).Scan(&u.ID, &u.CreatedAt)
	return translate(err)
}

// GetByID returns a user by id
func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

// GetByIDForUpdate returns a user by id and locks the row until the transaction ends
func (r *UserRepo) GetByIDForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, userID)
}

// GetByUsername returns a user by case-insensitive username
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)`, username)
}

// GetByTelegramID returns the user linked to a Telegram account
func (r *UserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
}

// AddScore increments the accumulated score
func (r *UserRepo) AddScore(ctx context.Context, userID int64, points int) error {
	query := `UPDATE users SET total_score = total_score + $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, userID, points)
	return err
}

// SetHintsRemaining stores the hint balance
func (r *UserRepo) SetHintsRemaining(ctx context.Context, userID int64, hints int) error {
	query := `UPDATE users SET hints_remaining = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, userID, hints)
	return err
}

// UpdateStreak stores the streak and the day it was last extended
func (r *UserRepo) UpdateStreak(ctx context.Context, userID int64, streak int, lastPlayed time.Time) error {
	query := `UPDATE users SET streak = $2, last_played = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, userID, streak, lastPlayed)
	return err
}

// SetPremium marks the user premium until the given time
func (r *UserRepo) SetPremium(ctx context.Context, userID int64, until time.Time) error {
	query := `UPDATE users SET premium = TRUE, premium_until = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, userID, until)
	return err
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var u domain.User
	var telegramID sql.NullInt64
	var lastPlayed, premiumUntil sql.NullTime

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &telegramID,
		&u.TotalScore, &u.Streak, &lastPlayed, &u.HintsRemaining, &u.Premium, &premiumUntil, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if telegramID.Valid {
		u.TelegramID = &telegramID.Int64
	}
	if lastPlayed.Valid {
		u.LastPlayed = &lastPlayed.Time
	}
	if premiumUntil.Valid {
		u.PremiumUntil = &premiumUntil.Time
	}
	return &u, nil
}
