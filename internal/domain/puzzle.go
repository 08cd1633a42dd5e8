package domain

import (
	"sort"
	"strings"
	"time"
)

// Word lengths a puzzle can hold
const (
	MinWordLength = 3
	MaxWordLength = 6
)

// WordBuckets maps a word length to its valid words in stored order
type WordBuckets map[int][]string

// Contains reports whether word is listed under its own length
func (b WordBuckets) Contains(word string) bool {
	for _, w := range b[len(word)] {
		if w == word {
			return true
		}
	}
	return false
}

// Lengths returns the bucket keys in ascending order
func (b WordBuckets) Lengths() []int {
	lengths := make([]int, 0, len(b))
	for l := range b {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// Total returns the number of valid words across all buckets
func (b WordBuckets) Total() int {
	n := 0
	for _, words := range b {
		n += len(words)
	}
	return n
}

// Puzzle is the daily case. Immutable once stored.
type Puzzle struct {
	ID          int64
	Date        time.Time
	Letters     []string
	MysteryWord string
	ValidWords  WordBuckets
	Theme       string
	CaseNumber  int
	CaseTitle   string
	Difficulty  string
	CreatedAt   time.Time
}

// PuzzleView is the client payload. The mystery word is never exposed, only its length.
type PuzzleView struct {
	ID            int64    `json:"id"`
	Date          string   `json:"date"`
	Letters       []string `json:"letters"`
	MysteryLength int      `json:"mystery_length"`
	Theme         string   `json:"theme"`
	CaseNumber    int      `json:"case_number"`
	CaseTitle     string   `json:"case_title"`
	Difficulty    string   `json:"difficulty"`
	TotalWords    int      `json:"total_words"`
}

// View renders the public payload
func (p *Puzzle) View() PuzzleView {
	return PuzzleView{
		ID:            p.ID,
		Date:          DateString(p.Date),
		Letters:       p.Letters,
		MysteryLength: len(p.MysteryWord),
		Theme:         p.Theme,
		CaseNumber:    p.CaseNumber,
		CaseTitle:     p.CaseTitle,
		Difficulty:    p.Difficulty,
		TotalWords:    p.ValidWords.Total(),
	}
}

// LetterString joins the letters, e.g. "C R I M E S"
func (p *Puzzle) LetterString() string {
	return strings.Join(p.Letters, " ")
}
