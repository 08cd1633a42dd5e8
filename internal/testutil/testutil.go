package testutil

import (
	"time"

	"wordheist/internal/domain"

	"go.uber.org/zap"
)

// FixedNow is the clock used across service and transport tests
var FixedNow = time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// Clock returns a time source fixed at t
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestUser creates a test user with the given hint allowance
func NewTestUser(userID int64, hints int) *domain.User {
	return &domain.User{
		ID:             userID,
		Username:       "sleuth",
		Email:          "sleuth@example.com",
		HintsRemaining: hints,
		CreatedAt:      FixedNow,
	}
}

// NewTestPuzzle creates the CRIMES case
func NewTestPuzzle(puzzleID int64, date time.Time) *domain.Puzzle {
	return &domain.Puzzle{
		ID:          puzzleID,
		Date:        domain.DateOf(date),
		Letters:     []string{"S", "C", "R", "I", "M", "E"},
		MysteryWord: "CRIMES",
		ValidWords: domain.WordBuckets{
			3: {"ICE", "IRE", "SIR", "RIM"},
			4: {"RICE", "MICE", "RISE", "SIRE", "MIRE"},
			5: {"CRIME", "CRIES", "MISER"},
			6: {"CRIMES"},
		},
		Theme:      "Mystery",
		CaseNumber: 71,
		CaseTitle:  "Case #071: The Maltese Mystery",
		Difficulty: "hard",
		CreatedAt:  date,
	}
}

// NewTestProgress creates progress with the given words already found
func NewTestProgress(userID, puzzleID int64, found ...string) *domain.Progress {
	if found == nil {
		found = []string{}
	}
	return &domain.Progress{
		ID:            1,
		UserID:        userID,
		PuzzleID:      puzzleID,
		FoundWords:    found,
		RevealedWords: []string{},
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	}
}
