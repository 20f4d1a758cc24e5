package users

import "errors"

// Kind classifies service errors so boundaries can map them to status
// codes without matching on message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func ErrConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func ErrNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ErrUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func ErrInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the classification from err; anything unclassified is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message for classified errors and a
// generic fallback otherwise, so internals never leak into responses.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "Internal server error"
}
