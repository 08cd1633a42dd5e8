// Package game holds the rules of a case: word classification, hint order
// and streak arithmetic. Nothing here touches storage.
package game

import (
	"strings"

	"wordheist/internal/domain"
)

// NormalizeWord trims and uppercases a raw guess
func NormalizeWord(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Classify checks a normalized word against the puzzle and the player's progress.
// Duplicates are only reported for words that are valid in the first place.
func Classify(p *domain.Puzzle, prog *domain.Progress, word string) (domain.Classification, int) {
	if !p.ValidWords.Contains(word) {
		return domain.ClassInvalid, 0
	}
	if prog != nil && prog.HasFound(word) {
		return domain.ClassDuplicate, 0
	}

	points := len(word) * domain.PointsPerLetter
	if word == p.MysteryWord {
		return domain.ClassMystery, points + domain.MysteryBonus
	}
	return domain.ClassValid, points
}

// Apply records an awarding classification on the progress. Other classes are a no-op.
func Apply(prog *domain.Progress, word string, class domain.Classification, points int) {
	if !class.Awards() {
		return
	}
	prog.FoundWords = append(prog.FoundWords, word)
	prog.Score += points
	if class == domain.ClassMystery {
		prog.Completed = true
	}
}
