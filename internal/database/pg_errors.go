package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode       = "23505"
	checkViolationCode        = "23514"
	stringTooLongCode         = "22001"
	characterNotInRepertoire  = "22021"
	invalidTextRepresentation = "22P02"
)

// isInvalidDataError reports whether Postgres rejected the values themselves
// rather than failing to run the statement.
func isInvalidDataError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	switch pgErr.Code {
	case checkViolationCode, stringTooLongCode, characterNotInRepertoire, invalidTextRepresentation:
		return pgErr, true
	}
	return pgErr, false
}
