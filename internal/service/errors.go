package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by all services. The HTTP layer maps these onto
// status codes; everything here is recoverable at the request layer and
// never fatal to the process.
var (
	// ErrForbidden means the actor lacks the required authority: not the
	// owner where ownership is required, or insufficient permission level.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means a referenced document, user, grant, or
	// notification does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidGrantee means an attempt to grant a collaboration to the
	// document's own owner, whose access is implicit and never stored.
	ErrInvalidGrantee = errors.New("cannot grant a collaboration to the document owner")

	// ErrConflict means a uniqueness constraint could not be resolved
	// (duplicate username or email).
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials means the email/password pair did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation wraps rejected user input (bad username, short
	// password, profile fields outside the role's schema).
	ErrValidation = errors.New("validation failed")

	ErrIDRequired         = errors.New("id is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrReaderNil          = errors.New("reader is nil")
	ErrInvalidPermission  = errors.New("invalid permission level")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
)

// uniqueViolation is the PostgreSQL error code for a unique-constraint
// violation.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, so callers can translate it to ErrConflict instead of
// surfacing a raw driver error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
