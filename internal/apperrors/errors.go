package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal server error")
)

// Borrowing rule violations. Each one is reported to the caller as a 400 with
// the message of the AppError that wraps it.
var (
	ErrMemberInactive        = errors.New("member inactive")
	ErrBookNotAvailable      = errors.New("book not available")
	ErrBorrowLimitExceeded   = errors.New("borrow limit exceeded")
	ErrDuplicateBorrow       = errors.New("duplicate borrow")
	ErrBookAlreadyReturned   = errors.New("book already returned")
	ErrNoFineToCollect       = errors.New("no fine to collect")
	ErrInvalidCopyTransition = errors.New("invalid copy status transition")
)

// AppError carries an HTTP status code and a message that is safe to show to
// API callers. Err is the underlying cause and is never rendered for 5xx codes.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing entity, e.g. NewNotFoundError("member").
func NewNotFoundError(entity string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: entity + " not found", Err: ErrNotFound}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewRuleViolation wraps one of the borrowing rule kinds with a human readable message.
func NewRuleViolation(kind error, message string) *AppError {
	return &AppError{Code: HTTPStatus(kind), Message: message, Err: kind}
}

// statusTable maps error kinds to response codes. Order matters only in that
// the first match wins.
var statusTable = []struct {
	kind   error
	status int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrValidation, http.StatusBadRequest},
	{ErrMemberInactive, http.StatusBadRequest},
	{ErrBookNotAvailable, http.StatusBadRequest},
	{ErrBorrowLimitExceeded, http.StatusBadRequest},
	{ErrDuplicateBorrow, http.StatusBadRequest},
	{ErrBookAlreadyReturned, http.StatusBadRequest},
	{ErrNoFineToCollect, http.StatusBadRequest},
	{ErrInvalidCopyTransition, http.StatusBadRequest},
	{ErrDuplicate, http.StatusConflict},
	{ErrForbidden, http.StatusForbidden},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrInternal, http.StatusInternalServerError},
}

// HTTPStatus resolves the response code for err. An outermost AppError with a
// 5xx code wins; otherwise known kinds take precedence over an AppError's own
// code. Anything unrecognised is a 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var outer *AppError
	if errors.As(err, &outer) && outer.Code >= http.StatusInternalServerError {
		return outer.Code
	}
	for _, entry := range statusTable {
		if errors.Is(err, entry.kind) {
			return entry.status
		}
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the message to render for err. Internal failures are
// replaced with a generic text.
func PublicMessage(err error) string {
	if HTTPStatus(err) >= http.StatusInternalServerError {
		return "Internal server error"
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
