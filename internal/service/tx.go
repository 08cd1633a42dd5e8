package service

import (
	"context"

	"wordheist/internal/domain"
	"wordheist/internal/repository"
)

// maxTxAttempts bounds re-runs after losing a uniqueness race
const maxTxAttempts = 3

// inTx runs fn in a transaction and re-runs it from the top when a concurrent
// writer created the same row first. fn must not keep state between attempts.
func inTx(ctx context.Context, tx repository.TxRunner, fn func(r repository.Repos) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = tx.RunInTx(ctx, fn)
		if !domain.IsRetryable(err) {
			return err
		}
	}
	return err
}

// progressForUpdate locks the user's progress row, creating an empty one first if needed
func progressForUpdate(ctx context.Context, r repository.Repos, userID, puzzleID int64) (*domain.Progress, error) {
	prog, err := r.Progress.GetForUpdate(ctx, userID, puzzleID)
	if err != nil {
		return nil, err
	}
	if prog != nil {
		return prog, nil
	}

	prog = &domain.Progress{
		UserID:        userID,
		PuzzleID:      puzzleID,
		FoundWords:    []string{},
		RevealedWords: []string{},
	}
	if err := r.Progress.Create(ctx, prog); err != nil {
		return nil, err
	}
	return prog, nil
}
