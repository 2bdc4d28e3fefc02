package dbx

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/adboard/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes we translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyError turns driver errors into the project's sentinel errors.
//
//	sql.ErrNoRows           -> common.ErrorNotFound
//	unique_violation        -> common.ErrorAlreadyExists
//	foreign_key_violation   -> common.ErrorNotFound (referenced row is missing)
//
// Violations name the constraint in the message; anything else is wrapped
// as "db error". A nil error stays nil.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, constraintOf(pgErr))
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", common.ErrorNotFound, constraintOf(pgErr))
		}
	}

	return fmt.Errorf("db error: %w", err)
}

func constraintOf(e *pgconn.PgError) string {
	if e.ConstraintName != "" {
		return e.ConstraintName
	}
	return e.Message
}
