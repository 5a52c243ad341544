package ner

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials is returned when Google Cloud credentials are not configured.
	ErrMissingCredentials = errors.New("missing Google Cloud credentials: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS environment variable")

	// ErrAnalysisFailed is returned when the Natural Language API fails to analyze the text.
	ErrAnalysisFailed = errors.New("entity analysis failed")
)

// NERError wraps errors with additional context about the recognition failure.
type NERError struct {
	// Op is the operation that failed (e.g., "Entities").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *NERError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ner: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ner: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *NERError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *NERError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapNERError wraps an error as a NERError if it isn't already one.
func WrapNERError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var nerErr *NERError
	if errors.As(err, &nerErr) {
		return err // Already wrapped
	}

	return &NERError{Op: op, Err: err, Details: details}
}
