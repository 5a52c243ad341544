package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrExtractionFailed indicates the pipeline aborted on an internal fault.
	ErrExtractionFailed = errors.New("metadata extraction failed")

	// ErrUnsupportedLanguage indicates the document language gate rejected the
	// document before field extraction.
	ErrUnsupportedLanguage = errors.New("unsupported document language")
)

// ExtractionError provides structured error information for pipeline faults.
type ExtractionError struct {
	Op      string // operation that failed
	Err     error  // underlying error
	Details string // additional context
}

func (e *ExtractionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("extract %s: %v (%s)", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("extract %s: %v", e.Op, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapExtractionError creates an ExtractionError with the given operation and
// underlying error.
func WrapExtractionError(op string, err error, details string) *ExtractionError {
	return &ExtractionError{Op: op, Err: err, Details: details}
}
