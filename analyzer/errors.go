package analyzer

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrInvalidInput reports a malformed call, e.g. a relative path without a base directory
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotAComponentFile reports a path without a recognized component extension
	ErrNotAComponentFile = errors.New("not a component file")
	// ErrFileUnavailable reports a missing or unreadable file
	ErrFileUnavailable = errors.New("file unavailable")
	// ErrParseFailure reports a component that could not be split into regions
	ErrParseFailure = errors.New("parse failure")
	// ErrRouterNotFound reports a missing or empty router source
	ErrRouterNotFound = errors.New("router not found")
)

// FileError represents a recoverable failure of a single component file
type FileError struct {
	Kind error
	Path string
	Err  error
}

func newFileError(kind error, path string, err error) *FileError {
	if err != nil {
		err = withStackTrace(err)
	}
	return &FileError{Kind: kind, Path: path, Err: err}
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *FileError) Unwrap() []error {
	var result []error
	if e.Kind != nil {
		result = append(result, e.Kind)
	}
	if e.Err != nil {
		result = append(result, e.Err)
	}
	return result
}

// withStackTrace wraps err with the caller stack, an error with a stack is returned as is
func withStackTrace(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, 1)
}

// ErrorStack returns error message with a stack trace when one was captured
func ErrorStack(err error) string {
	var goErr *goerrors.Error
	if errors.As(err, &goErr) {
		return goErr.ErrorStack()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
