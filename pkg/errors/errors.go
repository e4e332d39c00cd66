// Package errors defines the coded errors shared by the CLI and the render
// service.
//
// Every failure a calendar request can hit carries a stable [Code]. The
// codes fall into four groups:
//   - layout: INVALID_FRACTION, EMPTY_RANGE, UNRESOLVED_GRID
//   - input: INVALID_* (papers, months, years, themes, overrides, holidays)
//   - lookup: NOT_FOUND, FILE_NOT_FOUND
//   - environment: INTERNAL_ERROR, UNSUPPORTED
//
// Layout and input errors are detected before anything is drawn. Callers
// branch on the code, not on the message:
//
//	if errors.Is(err, errors.ErrCodeEmptyRange) {
//	    // nothing to render
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	// Layout errors
	ErrCodeInvalidFraction Code = "INVALID_FRACTION"
	ErrCodeEmptyRange      Code = "EMPTY_RANGE"
	ErrCodeUnresolvedGrid  Code = "UNRESOLVED_GRID"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidPaper    Code = "INVALID_PAPER"
	ErrCodeInvalidMonth    Code = "INVALID_MONTH"
	ErrCodeInvalidYear     Code = "INVALID_YEAR"
	ErrCodeInvalidTheme    Code = "INVALID_THEME"
	ErrCodeInvalidOverride Code = "INVALID_OVERRIDE"
	ErrCodeInvalidHoliday  Code = "INVALID_HOLIDAY"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error. Message is meant for users; Cause is optional.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// outermost returns the first *Error in the chain of err.
func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost coded error in the chain of err has code.
func Is(err error, code Code) bool {
	e, ok := outermost(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost coded error, or "".
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without its code prefix,
// or err.Error() for other errors.
func UserMessage(err error) string {
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsUserError reports whether err was caused by bad input rather than a bug or
// an environment failure. The render service maps these to 400 responses.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptyRange, ErrCodeUnresolvedGrid, ErrCodeInvalidInput,
		ErrCodeInvalidFormat, ErrCodeInvalidStyle, ErrCodeInvalidPaper,
		ErrCodeInvalidMonth, ErrCodeInvalidYear, ErrCodeInvalidTheme,
		ErrCodeInvalidOverride, ErrCodeInvalidHoliday, ErrCodeInvalidPath,
		ErrCodeInvalidFraction:
		return true
	}
	return false
}

// Exit statuses of the command line tool.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps err to a process exit status: ExitUsage for user errors,
// ExitFailure for everything else.
func ExitCode(err error) int {
	if IsUserError(err) || Is(err, ErrCodeFileNotFound) || Is(err, ErrCodeNotFound) {
		return ExitUsage
	}
	return ExitFailure
}
