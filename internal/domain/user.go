package domain

import "time"

// User is a player account
type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   string
	TelegramID     *int64
	TotalScore     int
	Streak         int
	LastPlayed     *time.Time
	HintsRemaining int
	Premium        bool
	PremiumUntil   *time.Time
	CreatedAt      time.Time
}

// CanTakeHint reports whether the user may receive a hint
func (u *User) CanTakeHint() bool {
	return u.Premium || u.HintsRemaining > 0
}

// UserStats aggregates a user's submitted scores
type UserStats struct {
	Username       string  `json:"username"`
	GamesPlayed    int     `json:"games_played"`
	Completed      int     `json:"completed"`
	TotalScore     int     `json:"total_score"`
	AverageScore   float64 `json:"average_score"`
	BestScore      int     `json:"best_score"`
	Streak         int     `json:"streak"`
	HintsRemaining int     `json:"hints_remaining"`
	Premium        bool    `json:"premium"`
}

// ScoreAggregate is the per-user sum/average over stored scores
type ScoreAggregate struct {
	Count     int
	Sum       int
	Average   float64
	Best      int
	Completed int
}
