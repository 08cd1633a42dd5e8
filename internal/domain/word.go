package domain

// Classification is the outcome of checking a submitted word
type Classification string

const (
	ClassInvalid   Classification = "invalid"
	ClassValid     Classification = "valid"
	ClassDuplicate Classification = "duplicate"
	ClassMystery   Classification = "mystery"
)

// Scoring constants
const (
	PointsPerLetter = 10
	MysteryBonus    = 100
)

// Awards reports whether the classification changes state
func (c Classification) Awards() bool {
	return c == ClassValid || c == ClassMystery
}

// WordResult is the outcome of a word submission after state was applied
type WordResult struct {
	Word           string         `json:"word"`
	Classification Classification `json:"result"`
	Points         int            `json:"points"`
	Score          int            `json:"score"`
	Completed      bool           `json:"completed"`
	FoundWords     []string       `json:"found_words"`
}

// HintResult is a dispensed hint
type HintResult struct {
	Word           string `json:"hint"`
	HintsUsed      int    `json:"hints_used"`
	HintsRemaining int    `json:"hints_remaining"`
	Premium        bool   `json:"premium"`
}
