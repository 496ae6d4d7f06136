// Package apperr classifies failures so the HTTP boundary can translate
// them to status codes without inspecting message strings.
package apperr

import "errors"

type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindConfig
)

// Error carries a machine-checkable kind and a human message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Invalid(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Config(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// KindOf reports the classification of err, if it has one.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
