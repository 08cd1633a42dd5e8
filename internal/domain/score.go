package domain

import "time"

// Score is the best submitted result of a user on a puzzle
type Score struct {
	ID         int64
	UserID     int64
	PuzzleID   int64
	Score      int
	TimeTaken  int
	WordsFound []string
	Completed  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ScoreSubmission is a finished session reported by a client
type ScoreSubmission struct {
	UserID     int64
	PuzzleID   int64
	Score      int
	TimeTaken  int
	WordsFound []string
}

// SubmitResult reports what a submission changed
type SubmitResult struct {
	Created   bool `json:"created"`
	Improved  bool `json:"improved"`
	BestScore int  `json:"best_score"`
	Streak    int  `json:"streak"`
}
