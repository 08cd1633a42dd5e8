package domain

import "errors"

// Error taxonomy shared by services and transports
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("not found")
	ErrHintsExhausted   = errors.New("no hints remaining")
	ErrNoWordsRemaining = errors.New("all words already found")

	// ErrConstraintConflict signals a concurrent uniqueness violation; re-read and retry
	ErrConstraintConflict = errors.New("constraint conflict")

	// ErrUsernameTaken is a conflict that retrying cannot resolve
	ErrUsernameTaken = errors.New("username or email already registered")
)

// IsRetryable reports whether the caller may retry the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConstraintConflict)
}
