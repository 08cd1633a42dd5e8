package puzzle

import (
	"fmt"

	"wordheist/internal/domain"
)

// Validate checks that every word is spellable from the letters and that the
// mystery word sits in its own length bucket.
func (t Template) Validate() error {
	if len(t.Letters) != 6 {
		return fmt.Errorf("%s: want 6 letters, got %q", t.Theme, t.Letters)
	}
	if l := len(t.Mystery); l < domain.MinWordLength || l > domain.MaxWordLength {
		return fmt.Errorf("%s: mystery word length %d out of range", t.Theme, l)
	}
	if !t.Words.Contains(t.Mystery) {
		return fmt.Errorf("%s: mystery word %q missing from bucket %d", t.Theme, t.Mystery, len(t.Mystery))
	}

	seen := make(map[string]bool)
	for length, words := range t.Words {
		if length < domain.MinWordLength || length > domain.MaxWordLength {
			return fmt.Errorf("%s: bucket %d out of range", t.Theme, length)
		}
		for _, w := range words {
			if len(w) != length {
				return fmt.Errorf("%s: %q filed under length %d", t.Theme, w, length)
			}
			if seen[w] {
				return fmt.Errorf("%s: duplicate word %q", t.Theme, w)
			}
			seen[w] = true
			if !spellable(w, t.Letters) {
				return fmt.Errorf("%s: %q cannot be spelled from %s", t.Theme, w, t.Letters)
			}
		}
	}
	return nil
}

// spellable reports whether word uses each letter at most as often as letters provides it
func spellable(word, letters string) bool {
	counts := make(map[rune]int, len(letters))
	for _, r := range letters {
		counts[r]++
	}
	for _, r := range word {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}
	return true
}

func validatePool(pool []Template) error {
	if len(pool) == 0 {
		return fmt.Errorf("template pool is empty")
	}
	for i, t := range pool {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("template %d (%s): %w", i, t.Theme, err)
		}
	}
	return nil
}
