package service

import (
	"context"
	"fmt"

	"wordheist/internal/domain"
	"wordheist/internal/repository"

	"go.uber.org/zap"
)

// StatsService summarises a player's record
type StatsService struct {
	users  repository.UserRepository
	scores repository.ScoreRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(users repository.UserRepository, scores repository.ScoreRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		users:  users,
		scores: scores,
		logger: logger,
	}
}

// UserStats combines the user row with the aggregate over their scores
func (s *StatsService) UserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}

	agg, err := s.scores.Aggregate(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to aggregate scores", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &domain.UserStats{
		Username:       u.Username,
		GamesPlayed:    agg.Count,
		Completed:      agg.Completed,
		TotalScore:     u.TotalScore,
		AverageScore:   agg.Average,
		BestScore:      agg.Best,
		Streak:         u.Streak,
		HintsRemaining: u.HintsRemaining,
		Premium:        u.Premium,
	}, nil
}
