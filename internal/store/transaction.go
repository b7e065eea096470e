// Package store provides abstractions and implementations for data persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lifequest/lifequest-api/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled
// back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// TxRunner runs a function inside a database transaction. Services
// depend on this interface rather than *sql.DB so the transaction
// boundary can be substituted in tests.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn TxFn) error
}

// sqlTxRunner is the production TxRunner backed by a *sql.DB.
type sqlTxRunner struct {
	db *sql.DB
}

// NewTxRunner returns a TxRunner that opens transactions on db.
func NewTxRunner(db *sql.DB) TxRunner {
	if db == nil {
		panic("db cannot be nil")
	}
	return &sqlTxRunner{db: db}
}

func (r *sqlTxRunner) RunInTransaction(ctx context.Context, fn TxFn) error {
	return RunInTransaction(ctx, r.db, fn)
}

// RunInTransaction executes the given function within a database
// transaction, handling commit, rollback and panic recovery. Errors
// returned by fn are passed through unchanged so callers can still
// match sentinel errors.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to roll back transaction after panic",
					"error", rbErr, "panic", p)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				"rollback_error", rbErr, "original_error", err)
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		log.Debug("rolled back transaction due to error", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
