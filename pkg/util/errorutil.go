// Package util standardizes application errors.
//
// Every failure in the service is expressed as a *DomainError with one of a
// closed set of kinds. Components raise a DomainError at the point of failure
// and return it unchanged up the call chain; only the terminal HTTP middleware
// turns one into a response. The kind to status mapping is total and fixed.
package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind enumerates the failure categories exposed to clients.
type Kind string

const (
	KindBadRequest      Kind = "BAD_REQUEST"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindInternal        Kind = "INTERNAL"
)

// InternalMessage is the only body text ever returned for KindInternal.
// The underlying cause goes to the log, never to the client.
const InternalMessage = "internal server error"

// statusByKind is the complete kind to HTTP status mapping.
var statusByKind = map[Kind]int{
	KindBadRequest:      http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindInternal:        http.StatusInternalServerError,
}

// DomainError is the single failure record type used across the service.
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the fixed status for the error's kind.
func (e *DomainError) HTTPStatus() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ClientMessage returns the body text safe to send to a client. Internal
// failures collapse to a generic constant.
func (e *DomainError) ClientMessage() string {
	if e.Kind == KindInternal {
		return InternalMessage
	}
	return e.Message
}

func NewBadRequest(message string) error {
	return &DomainError{Kind: KindBadRequest, Message: message}
}

func NewUnauthenticated(message string) error {
	return &DomainError{Kind: KindUnauthenticated, Message: message}
}

func NewNotFound(resource string) error {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewConflict(message string) error {
	return &DomainError{Kind: KindConflict, Message: message}
}

func NewInternalError(err error) error {
	return &DomainError{Kind: KindInternal, Message: InternalMessage, Err: err}
}

// Postgres error codes recognized by the storage translator.
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgInvalidTextValue    = "22P02"
	pgForeignKeyViolation = "23503"
)

// TranslateStorageError maps a raw storage failure to a DomainError. The
// resource name feeds the not-found message. Already-translated errors pass
// through untouched; anything unrecognized becomes an internal error that
// still wraps the original cause.
func TranslateStorageError(resource string, err error) error {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return NewConflict(fmt.Sprintf("%s already exists", resource))
		case pgInvalidTextValue:
			return NewBadRequest(fmt.Sprintf("malformed %s identifier", resource))
		case pgCheckViolation:
			return NewBadRequest(fmt.Sprintf("invalid %s data", resource))
		case pgForeignKeyViolation:
			return NewNotFound(resource)
		}
	}

	return NewInternalError(err)
}

// ToDomainError converts any error into a *DomainError, defaulting to an
// internal failure. It never returns nil for a non-nil input.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{Kind: KindInternal, Message: InternalMessage, Err: err}
}
