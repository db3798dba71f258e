package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound means no row matched the id/owner predicate.
	ErrNotFound = errors.New("record not found")
	// ErrUniqueViolation means a unique index rejected the write (SQLSTATE 23505).
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// DB is the subset of pgxpool.Pool the repositories need. pgxmock's pool
// satisfies it too, which keeps the SQL layer testable without a database.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
