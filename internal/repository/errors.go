package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// IsRetryable reports whether the transaction that produced err lost a
// serialization race and can be replayed as a whole.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// oneOrNotFound runs a single-row lookup that is already scoped by id and,
// where applicable, by owner. A missing row becomes a not found error for
// entity, so rows belonging to other users are indistinguishable from
// rows that do not exist.
func oneOrNotFound[T any](entity, op string, fetch func() (T, error)) (T, error) {
	result, err := fetch()
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result, fmt.Errorf("%s: %w", op, domain.NotFound(entity))
		}
		return result, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
