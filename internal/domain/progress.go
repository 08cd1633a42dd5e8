package domain

import "time"

// Progress is a user's state on one puzzle
type Progress struct {
	ID            int64
	UserID        int64
	PuzzleID      int64
	FoundWords    []string
	RevealedWords []string // handed out as hints, in order
	Score         int
	HintsUsed     int
	Completed     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasFound reports whether word was already discovered
func (p *Progress) HasFound(word string) bool {
	for _, w := range p.FoundWords {
		if w == word {
			return true
		}
	}
	return false
}

// HasRevealed reports whether word was already given out as a hint
func (p *Progress) HasRevealed(word string) bool {
	for _, w := range p.RevealedWords {
		if w == word {
			return true
		}
	}
	return false
}

// ProgressView is returned to clients
type ProgressView struct {
	PuzzleID       int64    `json:"puzzle_id"`
	FoundWords     []string `json:"found_words"`
	RevealedWords  []string `json:"revealed_words"`
	Score          int      `json:"score"`
	HintsUsed      int      `json:"hints_used"`
	Completed      bool     `json:"completed"`
	HintsRemaining int      `json:"hints_remaining"`
	Premium        bool     `json:"premium"`
	TotalWords     int      `json:"total_words"`
	// StartedAt is when the first guess or hint was made; zero before that
	StartedAt time.Time `json:"started_at"`
}
