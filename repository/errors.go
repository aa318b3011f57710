package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by the repositories
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrPersonaNotFound      = errors.New("buyer persona not found")
	ErrInvalidReference     = errors.New("referenced record does not exist")
	ErrConstraintViolation  = errors.New("constraint violation")
)

// mapPostgresError maps PostgreSQL error codes to sentinel errors.
// Errors that are not *pgconn.PgError are returned unchanged.
func mapPostgresError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == "users_email_key" {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: unique %s", ErrConstraintViolation, pgErr.ConstraintName)

	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.Detail)

	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)

	case pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Message)

	default:
		return fmt.Errorf("postgres error [%s]: %s (detail: %s): %w",
			pgErr.Code, pgErr.Message, pgErr.Detail, err)
	}
}
