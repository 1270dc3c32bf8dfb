// Package cli provides shared configuration and utilities for the specql CLI.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/zoobzio/specql"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitConfig      = 2
	ExitSpecParse   = 3
	ExitInvalidSpec = 4
	ExitUnsafe      = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Report prints the error to w and returns the exit code for it.
func Report(w io.Writer, err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(w, "Error:", exitErr.Error())
		return exitErr.Code
	}
	fmt.Fprintln(w, "Error:", err)
	return ExitGeneral
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// SpecParseError creates an ExitError with ExitSpecParse code.
func SpecParseError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitSpecParse, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// SpecError classifies a validation or rendering failure by its error class.
func SpecError(msg string, err error) *ExitError {
	switch {
	case errors.Is(err, specql.ErrUnsafeStatement):
		return &ExitError{Code: ExitUnsafe, Message: msg, Err: err}
	case errors.Is(err, specql.ErrInvalidSpec):
		return &ExitError{Code: ExitInvalidSpec, Message: msg, Err: err}
	default:
		return GeneralError(msg, err)
	}
}
