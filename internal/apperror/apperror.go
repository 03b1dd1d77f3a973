// Package apperror classifies domain failures so the transport layer can map
// them to status codes without knowing every sentinel.
package apperror

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type Kind string

const (
	KindInternal         Kind = "INTERNAL"
	KindNotFound         Kind = "NOT_FOUND"
	KindValidation       Kind = "VALIDATION"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindPermissionDenied Kind = "PERMISSION_DENIED"
	KindConflict         Kind = "CONFLICT"
)

// PostgreSQL error codes the repositories translate.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
	PgCheckViolation      = "23514"
	PgNumericOutOfRange   = "22003"
)

// ErrValueOutOfRange reports input the database cannot store, such as a
// price or total that overflows its column.
var ErrValueOutOfRange = Validation("value out of range")

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and message, so wrapped
// sentinels compare equal through errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) *Error         { return New(KindNotFound, message) }
func Validation(message string) *Error       { return New(KindValidation, message) }
func Unauthorized(message string) *Error     { return New(KindUnauthorized, message) }
func PermissionDenied(message string) *Error { return New(KindPermissionDenied, message) }
func Conflict(message string) *Error         { return New(KindConflict, message) }

// Wrap attaches a cause to a sentinel while keeping its kind and message.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// PgCode extracts the SQLSTATE of a lib/pq error, or "".
func PgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Normalize classifies driver errors that are caused by client input. Errors
// that already carry a kind are returned unchanged.
func Normalize(err error) error {
	var appErr *Error
	if err == nil || errors.As(err, &appErr) {
		return err
	}
	if PgCode(err) == PgNumericOutOfRange {
		return Wrap(ErrValueOutOfRange, err)
	}
	return err
}
