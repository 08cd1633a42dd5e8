package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// LeaderboardLimit caps the number of ranked rows
const LeaderboardLimit = 100

// Period selects the leaderboard window
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodAllTime Period = "all"
)

// ParsePeriod maps a query value to a period. Unrecognised values mean all-time.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodDaily:
		return PeriodDaily
	case PeriodWeekly:
		return PeriodWeekly
	default:
		return PeriodAllTime
	}
}

// LeaderboardQuery filters the score ranking
type LeaderboardQuery struct {
	PuzzleID *int64
	Since    *time.Time
	Limit    int
}

// LeaderboardEntry is one ranked row
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	Username    string    `json:"username"`
	Score       int       `json:"score"`
	TimeTaken   int       `json:"time"`
	SubmittedAt time.Time `json:"submitted_at"`
	ScoreID     int64     `json:"-"`
}

// RankEntries orders entries by score, highest first, breaking ties by the
// earlier submission and then the lower score id, and numbers them from 1.
func RankEntries(entries []LeaderboardEntry) {
	slices.SortStableFunc(entries, func(a, b LeaderboardEntry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.SubmittedAt.Compare(b.SubmittedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ScoreID, b.ScoreID)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}
