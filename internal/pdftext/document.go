// Package pdftext acquires per-page plain text from academic PDF documents.
//
// Embedded text is read first; a page with no embedded text is rasterized via
// a rendering collaborator and transcribed with OCR. Both fallbacks are
// best-effort: a page that defeats OCR surfaces as an empty page text, never
// as an error.
package pdftext

import "strings"

// Document holds the acquired text of one PDF: the ordered per-page texts and
// the full concatenated text. Immutable once constructed; page order is the
// physical page order and is never changed.
type Document struct {
	pages    []string
	fullText string
}

// NewDocument builds a document from per-page texts, deriving the full text
// by joining pages with a newline separator.
func NewDocument(pages []string) *Document {
	return &Document{
		pages:    append([]string(nil), pages...),
		fullText: strings.Join(pages, "\n"),
	}
}

// NewDocumentWithFullText builds a document from per-page texts and a
// caller-provided pre-merged full text.
func NewDocumentWithFullText(pages []string, fullText string) *Document {
	return &Document{
		pages:    append([]string(nil), pages...),
		fullText: fullText,
	}
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns the text of page i (zero-based), or "" when out of range.
func (d *Document) Page(i int) string {
	if i < 0 || i >= len(d.pages) {
		return ""
	}
	return d.pages[i]
}

// Pages returns a copy of the per-page texts in physical order.
func (d *Document) Pages() []string {
	return append([]string(nil), d.pages...)
}

// FullText returns the full concatenated document text.
func (d *Document) FullText() string {
	return d.fullText
}
