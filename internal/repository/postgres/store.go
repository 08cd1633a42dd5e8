package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wordheist/internal/domain"
	"wordheist/internal/repository"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE for unique_violation
const uniqueViolation = "23505"

// DBTX is satisfied by both *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Store implements repository.TxRunner on a connection pool
type Store struct {
	db *sql.DB
}

// NewStore creates a new store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Repos returns repositories bound to the pool, outside any transaction
func (s *Store) Repos() repository.Repos {
	return reposOn(s.db)
}

// RunInTx runs fn in a read-committed transaction. Row locks taken inside fn
// with SELECT ... FOR UPDATE are held until commit. A panic in fn rolls the
// transaction back before it propagates.
func (s *Store) RunInTx(ctx context.Context, fn func(r repository.Repos) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(reposOn(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return translate(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func reposOn(db DBTX) repository.Repos {
	return repository.Repos{
		Users:    NewUserRepo(db),
		Puzzles:  NewPuzzleRepo(db),
		Progress: NewProgressRepo(db),
		Scores:   NewScoreRepo(db),
	}
}

// translate maps driver errors onto the domain taxonomy
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConstraintConflict, pqErr.Constraint)
	}
	return err
}
