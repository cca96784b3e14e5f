package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"delivery-dispatch/internal/apperr"
)

const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// IsDuplicate reports a unique key violation.
func IsDuplicate(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// IsCheckViolation reports a rejected CHECK constraint.
func IsCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// IsNotFound reports an empty single-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// classify wraps constraint violations into the domain taxonomy.
func classify(err error, op string) error {
	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgerr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w: %s", op, apperr.ErrConflict, pgerr.ConstraintName)
	case codeCheckViolation:
		return fmt.Errorf("%s: %w: %s", op, apperr.ErrInvalid, pgerr.ConstraintName)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func pgCode(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}
