package service

import (
	"context"
	"fmt"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/repository"
)

// LeaderboardService ranks submitted scores. Read only.
type LeaderboardService struct {
	scores repository.ScoreRepository
	now    func() time.Time
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(scores repository.ScoreRepository) *LeaderboardService {
	return &LeaderboardService{scores: scores, now: time.Now}
}

// WithClock replaces the time source
func (s *LeaderboardService) WithClock(now func() time.Time) *LeaderboardService {
	s.now = now
	return s
}

// Leaderboard returns at most 100 ranked rows.
// Daily needs a puzzle; weekly covers every puzzle over the trailing seven days.
func (s *LeaderboardService) Leaderboard(ctx context.Context, period domain.Period, puzzleID *int64) ([]domain.LeaderboardEntry, error) {
	q := domain.LeaderboardQuery{Limit: domain.LeaderboardLimit}

	switch period {
	case domain.PeriodDaily:
		if puzzleID == nil {
			return nil, fmt.Errorf("%w: daily leaderboard needs a puzzle id", domain.ErrInvalidInput)
		}
		q.PuzzleID = puzzleID
	case domain.PeriodWeekly:
		since := s.now().Add(-7 * 24 * time.Hour)
		q.Since = &since
	}

	entries, err := s.scores.Leaderboard(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	domain.RankEntries(entries)
	return entries, nil
}
