package game

import (
	"testing"
	"time"

	"wordheist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crimesPuzzle() *domain.Puzzle {
	return &domain.Puzzle{
		ID:          1,
		Letters:     []string{"C", "R", "I", "M", "E", "S"},
		MysteryWord: "CRIMES",
		ValidWords: domain.WordBuckets{
			6: {"CRIMES"},
			3: {"ICE", "IRE", "SIR"},
			5: {"CRIME", "CRIES"},
			4: {"RICE", "MICE"},
		},
	}
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "RICE", NormalizeWord("  rice\n"))
	assert.Equal(t, "", NormalizeWord("   "))
}

func TestClassify(t *testing.T) {
	p := crimesPuzzle()

	tests := []struct {
		name           string
		found          []string
		word           string
		expectedClass  domain.Classification
		expectedPoints int
	}{
		{
			name:           "valid four letter word",
			word:           "RICE",
			expectedClass:  domain.ClassValid,
			expectedPoints: 40,
		},
		{
			name:           "mystery word earns bonus",
			word:           "CRIMES",
			expectedClass:  domain.ClassMystery,
			expectedPoints: 160,
		},
		{
			name:          "word not in list",
			word:          "MESS",
			expectedClass: domain.ClassInvalid,
		},
		{
			name:          "length without bucket",
			word:          "CR",
			expectedClass: domain.ClassInvalid,
		},
		{
			name:          "already found",
			found:         []string{"RICE"},
			word:          "RICE",
			expectedClass: domain.ClassDuplicate,
		},
		{
			name:          "mystery already found",
			found:         []string{"CRIMES"},
			word:          "CRIMES",
			expectedClass: domain.ClassDuplicate,
		},
		{
			name:          "invalid word is never duplicate",
			found:         []string{"MESS"},
			word:          "MESS",
			expectedClass: domain.ClassInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := &domain.Progress{FoundWords: tt.found}
			class, points := Classify(p, prog, tt.word)
			assert.Equal(t, tt.expectedClass, class)
			assert.Equal(t, tt.expectedPoints, points)
		})
	}
}

func TestApply(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{}

	class, points := Classify(p, prog, "RICE")
	Apply(prog, "RICE", class, points)
	assert.Equal(t, []string{"RICE"}, prog.FoundWords)
	assert.Equal(t, 40, prog.Score)
	assert.False(t, prog.Completed)

	// same word again: duplicate, no change
	class, points = Classify(p, prog, "RICE")
	Apply(prog, "RICE", class, points)
	assert.Equal(t, domain.ClassDuplicate, class)
	assert.Equal(t, []string{"RICE"}, prog.FoundWords)
	assert.Equal(t, 40, prog.Score)

	class, points = Classify(p, prog, "CRIMES")
	Apply(prog, "CRIMES", class, points)
	assert.Equal(t, []string{"RICE", "CRIMES"}, prog.FoundWords)
	assert.Equal(t, 200, prog.Score)
	assert.True(t, prog.Completed)

	Apply(prog, "MESS", domain.ClassInvalid, 0)
	assert.Len(t, prog.FoundWords, 2)
}

func TestNextHint_Order(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{}

	var got []string
	for {
		w, ok := NextHint(p, prog)
		if !ok {
			break
		}
		got = append(got, w)
		prog.RevealedWords = append(prog.RevealedWords, w)
	}

	assert.Equal(t, []string{"ICE", "IRE", "SIR", "RICE", "MICE", "CRIME", "CRIES", "CRIMES"}, got)
}

func TestNextHint_SkipsFound(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{FoundWords: []string{"ICE", "SIR", "CRIMES"}}

	w, ok := NextHint(p, prog)
	require.True(t, ok)
	assert.Equal(t, "IRE", w)
}

func TestNextHint_MysteryIsLastCandidate(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{FoundWords: []string{"ICE", "IRE", "SIR", "RICE", "MICE", "CRIME", "CRIES"}}

	w, ok := NextHint(p, prog)
	require.True(t, ok)
	assert.Equal(t, "CRIMES", w)
}

func TestNextHint_SkipsFoundAndRevealed(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{
		FoundWords:    []string{"IRE"},
		RevealedWords: []string{"ICE"},
	}

	w, ok := NextHint(p, prog)
	require.True(t, ok)
	assert.Equal(t, "SIR", w)
}

func TestNextHint_EverythingRevealed(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{
		FoundWords:    []string{"ICE", "IRE", "SIR"},
		RevealedWords: []string{"RICE", "MICE", "CRIME", "CRIES", "CRIMES"},
	}

	_, ok := NextHint(p, prog)
	assert.False(t, ok)
}

func TestNextHint_NoneLeft(t *testing.T) {
	p := crimesPuzzle()
	prog := &domain.Progress{FoundWords: []string{"CRIMES", "ICE", "IRE", "SIR", "RICE", "MICE", "CRIME", "CRIES"}}

	_, ok := NextHint(p, prog)
	assert.False(t, ok)
}

func TestNextStreak(t *testing.T) {
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	at := func(offset int) *time.Time {
		d := day.AddDate(0, 0, offset).Add(15 * time.Hour)
		return &d
	}

	tests := []struct {
		name       string
		current    int
		lastPlayed *time.Time
		expected   int
	}{
		{name: "first game", current: 0, lastPlayed: nil, expected: 1},
		{name: "consecutive day", current: 4, lastPlayed: at(-1), expected: 5},
		{name: "gap resets", current: 4, lastPlayed: at(-2), expected: 1},
		{name: "long gap resets", current: 9, lastPlayed: at(-30), expected: 1},
		{name: "same day keeps streak", current: 3, lastPlayed: at(0), expected: 3},
		{name: "same day with empty streak", current: 0, lastPlayed: at(0), expected: 1},
		{name: "future last played", current: 2, lastPlayed: at(1), expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextStreak(tt.current, tt.lastPlayed, day))
		})
	}
}

func TestNextStreak_Sequences(t *testing.T) {
	d := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	streak := 0
	var last *time.Time
	var got []int
	for _, offset := range []int{0, 1, 2} {
		today := d.AddDate(0, 0, offset)
		streak = NextStreak(streak, last, today)
		last = &today
		got = append(got, streak)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	streak, last, got = 0, nil, nil
	for _, offset := range []int{0, 5} {
		today := d.AddDate(0, 0, offset)
		streak = NextStreak(streak, last, today)
		last = &today
		got = append(got, streak)
	}
	assert.Equal(t, []int{1, 1}, got)
}
