package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("database: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("database: duplicate key")
)

// SQLSTATE unique_violation
const uniqueViolation = "23505"

// Error keeps the driver error behind one of the sentinel kinds so callers can
// use errors.Is(err, ErrDuplicateKey) and still reach the *pgconn.PgError.
type Error struct {
	Kind  error
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (cause: %v)", e.Kind, e.Cause)
}

func (e *Error) Is(target error) bool { return e.Kind == target }
func (e *Error) Unwrap() error        { return e.Cause }

// MapError translates pgx errors into the sentinel kinds above. Errors it
// does not recognise are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var dbe *Error
	if errors.As(err, &dbe) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &Error{Kind: ErrNotFound, Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &Error{Kind: ErrDuplicateKey, Cause: err}
	}
	return err
}

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }
