package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"wordheist/internal/domain"
)

// Generate builds the puzzle for the calendar date of day.
// The result depends on the date only: same date, same letters, mystery word and case.
func Generate(day time.Time) *domain.Puzzle {
	return generateFrom(templates, day)
}

func generateFrom(pool []Template, day time.Time) *domain.Puzzle {
	epochDay := domain.EpochDay(day)
	rng := rand.New(rand.NewSource(epochDay))
	t := pool[rng.Intn(len(pool))]

	letters := strings.Split(t.Letters, "")
	rng.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })

	caseNumber := caseNumberFor(epochDay)

	return &domain.Puzzle{
		Date:        domain.DateOf(day),
		Letters:     letters,
		MysteryWord: t.Mystery,
		ValidWords:  cloneBuckets(t.Words),
		Theme:       t.Theme,
		CaseNumber:  caseNumber,
		CaseTitle:   fmt.Sprintf("Case #%03d: %s", caseNumber, t.Title),
		Difficulty:  t.Difficulty,
	}
}

// caseNumberFor returns (epochDay mod 1000) + 1, in 1..1000 for any day
func caseNumberFor(epochDay int64) int {
	m := epochDay % 1000
	if m < 0 {
		m += 1000
	}
	return int(m) + 1
}

func cloneBuckets(b domain.WordBuckets) domain.WordBuckets {
	out := make(domain.WordBuckets, len(b))
	for l, words := range b {
		out[l] = append([]string(nil), words...)
	}
	return out
}
