package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx.
type dbtx interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// translateError maps driver errors onto the errs taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errs.ErrConflict
		case pqForeignKeyViolation, pqCheckViolation:
			return errs.ErrClient
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return errs.ErrInternalServer
}
