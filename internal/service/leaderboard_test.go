package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_Leaderboard(t *testing.T) {
	puzzleID := int64(11)
	weekAgo := testutil.FixedNow.Add(-7 * 24 * time.Hour)

	tests := []struct {
		name          string
		period        domain.Period
		puzzleID      *int64
		expectedQuery *domain.LeaderboardQuery
		expectedError error
	}{
		{
			name:          "daily for a puzzle",
			period:        domain.PeriodDaily,
			puzzleID:      &puzzleID,
			expectedQuery: &domain.LeaderboardQuery{PuzzleID: &puzzleID, Limit: domain.LeaderboardLimit},
		},
		{
			name:          "daily without puzzle",
			period:        domain.PeriodDaily,
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "weekly spans every puzzle",
			period:        domain.PeriodWeekly,
			puzzleID:      &puzzleID,
			expectedQuery: &domain.LeaderboardQuery{Since: &weekAgo, Limit: domain.LeaderboardLimit},
		},
		{
			name:          "all time",
			period:        domain.PeriodAllTime,
			expectedQuery: &domain.LeaderboardQuery{Limit: domain.LeaderboardLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := new(testutil.MockScoreRepository)
			if tt.expectedQuery != nil {
				scores.On("Leaderboard", mock.Anything, *tt.expectedQuery).Return([]domain.LeaderboardEntry{
					{Username: "holmes", Score: 300, TimeTaken: 80},
					{Username: "watson", Score: 300, TimeTaken: 95},
					{Username: "lestrade", Score: 120, TimeTaken: 40},
				}, nil)
			}

			svc := NewLeaderboardService(scores).WithClock(testutil.Clock(testutil.FixedNow))
			entries, err := svc.Leaderboard(context.Background(), tt.period, tt.puzzleID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				scores.AssertNotCalled(t, "Leaderboard", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			require.Len(t, entries, 3)
			for i, e := range entries {
				assert.Equal(t, i+1, e.Rank)
			}
			assert.Equal(t, "watson", entries[1].Username)
			scores.AssertExpectations(t)
		})
	}
}

func TestLeaderboardService_Leaderboard_Empty(t *testing.T) {
	scores := new(testutil.MockScoreRepository)
	scores.On("Leaderboard", mock.Anything, mock.Anything).Return([]domain.LeaderboardEntry{}, nil)

	entries, err := NewLeaderboardService(scores).Leaderboard(context.Background(), domain.PeriodAllTime, nil)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboardService_Leaderboard_Error(t *testing.T) {
	scores := new(testutil.MockScoreRepository)
	scores.On("Leaderboard", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := NewLeaderboardService(scores).Leaderboard(context.Background(), domain.PeriodAllTime, nil)

	assert.Error(t, err)
}
