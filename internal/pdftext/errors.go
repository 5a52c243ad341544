package pdftext

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPDF is returned when the file cannot be opened as a PDF document.
	ErrInvalidPDF = errors.New("invalid or corrupted PDF document")

	// ErrNoPageImage is returned by the renderer when a page yields no bitmap.
	ErrNoPageImage = errors.New("page contains no extractable image")
)

// AcquisitionError wraps errors with context about the failed acquisition.
type AcquisitionError struct {
	// Op is the operation that failed (e.g., "ExtractDocument", "RenderPage").
	Op string

	// Page is the zero-based page index, -1 when not page specific.
	Page int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *AcquisitionError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("pdftext: %s failed on page %d: %v", e.Op, e.Page, e.Err)
	}
	return fmt.Sprintf("pdftext: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *AcquisitionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
