package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tuffpuff/internal/db"
	"github.com/nikolayk812/tuffpuff/internal/port"
)

// withTx executes fn within a transaction if the repository was created with a pool,
// or uses the existing transaction if the repository was created with a transaction
func withTx[T any](ctx context.Context, dbtx db.DBTX, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	if tx, ok := dbtx.(pgx.Tx); ok {
		return fn(db.New(tx))
	}

	pool, ok := dbtx.(*pgxpool.Pool)
	if !ok {
		return zero, fmt.Errorf("dbtx is neither pgx.Tx nor *pgxpool.Pool: %T", dbtx)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(db.New(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}

// maxTxAttempts bounds how often a transaction that lost a serialization
// race or deadlock is replayed before the error reaches the caller.
const maxTxAttempts = 2

type txRunner struct {
	pool        *pgxpool.Pool
	maxAttempts int
}

// NewTxRunner hands out repositories bound to a single read committed transaction.
func NewTxRunner(pool *pgxpool.Pool) port.TxRunner {
	return &txRunner{pool: pool, maxAttempts: maxTxAttempts}
}

func (r *txRunner) InTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	var err error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = r.inTxOnce(ctx, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
	}

	return fmt.Errorf("gave up after %d attempts: %w", r.maxAttempts, err)
}

func (r *txRunner) inTxOnce(ctx context.Context, fn func(repos port.Repositories) error) (txErr error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("pool.BeginTx: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	repos := port.Repositories{
		Orders:    NewOrderWithTx(tx),
		Products:  NewProductWithTx(tx),
		Addresses: NewAddressWithTx(tx),
		Users:     NewUserWithTx(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}
