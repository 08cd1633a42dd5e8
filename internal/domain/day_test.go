package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "2024-12-12",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-01",
		},
		{
			name:     "non-UTC zone is normalised",
			date:     time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: "2024-03-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateString(tt.date))
		})
	}
}

func TestEpochDay(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int64
	}{
		{
			name:     "epoch itself",
			date:     Epoch,
			expected: 0,
		},
		{
			name:     "late on the epoch day",
			date:     time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "leap year end",
			date:     time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC),
			expected: 365,
		},
		{
			name:     "before epoch",
			date:     time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC),
			expected: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EpochDay(tt.date))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(1), DaysBetween(a, b))
	assert.Equal(t, int64(-1), DaysBetween(b, a))
	assert.Equal(t, int64(0), DaysBetween(a, a.Add(30*time.Minute)))
}
