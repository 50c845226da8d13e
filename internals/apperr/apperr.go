// internals/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed taxonomy of request-local failures. Every service
// returns one of these; controllers map them to HTTP statuses.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindNotFound
	KindConflict
	KindPeriodResolution
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Authorization deliberately carries no detail about what would have been
// allowed, to avoid leaking scope structure.
func Authorization(message string) *Error {
	if message == "" {
		message = "You are not allowed to perform this action"
	}
	return New(KindAuthorization, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func PeriodResolution(message string) *Error {
	return New(KindPeriodResolution, message)
}

// KindOf unwraps err and returns its Kind, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool    { return KindOf(err) == KindValidation }
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }
func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool      { return KindOf(err) == KindConflict }
