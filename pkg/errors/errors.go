// Package errors provides the coded error type shared by featprune's
// packages and its command-line harness.
//
// Every failure the pruning routine can surface carries one [Code]:
//   - INVALID_ARGUMENT: a caller-supplied parameter is out of its domain
//     (unknown ranking criterion, threshold outside (0,1), n_select < 1)
//   - CONFIGURATION: parameters are individually valid but inconsistent
//     (ranking by importance without importance scores)
//   - MISSING_IMPORTANCE: a feature in a ranked group has no importance entry
//   - INVALID_INPUT, INVALID_FORMAT, FILE_NOT_FOUND: an input file or the
//     feature matrix itself is unusable
//   - INTERNAL_ERROR: rendering or other unexpected failures
//
// Codes survive fmt.Errorf("%w") wrapping at stage boundaries:
//
//	err := fmt.Errorf("select: %w", errors.New(errors.ErrCodeMissingImportance, "no score for %q", f))
//	errors.Is(err, errors.ErrCodeMissingImportance) // true
//	errors.GetCode(err)                              // MISSING_IMPORTANCE
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure category.
type Code string

const (
	// Parameter errors.
	ErrCodeInvalidArgument   Code = "INVALID_ARGUMENT"
	ErrCodeConfiguration     Code = "CONFIGURATION"
	ErrCodeMissingImportance Code = "MISSING_IMPORTANCE"

	// Input errors.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a failure tagged with a [Code], optionally wrapping a cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches a bare code target (an *Error with no message), so that the
// standard errors.Is finds a code anywhere in the chain.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Cause == nil && t.Code == e.Code
}

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error that records cause behind a formatted message.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	return err != nil && errors.Is(err, &Error{Code: code})
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MissingImportanceError lists the features of ranked groups that have no
// importance score. It is reported wrapped in an ErrCodeMissingImportance
// *Error.
type MissingImportanceError struct {
	Features []string
}

func (e *MissingImportanceError) Error() string {
	if len(e.Features) == 1 {
		return fmt.Sprintf("no importance score for feature %q", e.Features[0])
	}
	return fmt.Sprintf("no importance score for features %q", e.Features)
}

// Code returns ErrCodeMissingImportance.
func (e *MissingImportanceError) Code() Code { return ErrCodeMissingImportance }
