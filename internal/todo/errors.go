package todo

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidNumber   = errors.New("invalid todo number")
)

// UserError is a mistake in command arguments. It is reported to the user
// and does not stop the program.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

func missing(msg string) error {
	return &UserError{Kind: ErrMissingArgument, Message: msg}
}

func notExists(format string, arg string) error {
	return &UserError{Kind: ErrInvalidNumber, Message: fmt.Sprintf(format, arg)}
}
