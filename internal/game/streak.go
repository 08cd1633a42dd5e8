package game

import (
	"time"

	"wordheist/internal/domain"
)

// NextStreak returns the streak after a first submission on today.
//
//	never played      -> 1
//	played yesterday  -> current + 1
//	gap of 2+ days    -> 1
//	already today     -> unchanged
func NextStreak(current int, lastPlayed *time.Time, today time.Time) int {
	if lastPlayed == nil {
		return 1
	}

	days := domain.DaysBetween(*lastPlayed, today)
	switch {
	case days == 1:
		return current + 1
	case days > 1:
		return 1
	default:
		// same day or clock skew: never double count
		if current < 1 {
			return 1
		}
		return current
	}
}
