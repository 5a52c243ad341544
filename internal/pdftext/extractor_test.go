package pdftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// stubRenderer writes a fake page bitmap to a temp directory and records
// whether its cleanup ran.
type stubRenderer struct {
	cleanedUp bool
	err       error
}

func (r *stubRenderer) RenderPage(_ context.Context, _ string, _ int, _ float64) (string, func(), error) {
	if r.err != nil {
		return "", nil, r.err
	}
	dir, err := os.MkdirTemp("", "render-test-*")
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(dir, "page.png")
	if err := os.WriteFile(path, []byte("not a real image"), 0600); err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	return path, func() {
		r.cleanedUp = true
		os.RemoveAll(dir)
	}, nil
}

// stubOCR fails every recognition call.
type stubOCR struct {
	err error
}

func (s *stubOCR) RecognizeImage(_ context.Context, _ []byte, _ []string) (string, error) {
	return "", s.err
}

func TestOCRPageCleansUpOnRecognitionFailure(t *testing.T) {
	renderer := &stubRenderer{}
	e := NewExtractor(WithOCRFallback(renderer, &stubOCR{err: errors.New("quota exceeded")}, []string{"en", "id"}))

	text := e.ocrPage(context.Background(), "doc.pdf", 0)
	if text != "" {
		t.Errorf("ocrPage() = %q, want empty on OCR failure", text)
	}
	if !renderer.cleanedUp {
		t.Error("rendered page bitmap was not cleaned up")
	}
}

func TestOCRPageRenderFailureIsNonFatal(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("no image on page")}
	e := NewExtractor(WithOCRFallback(renderer, &stubOCR{}, nil))

	if text := e.ocrPage(context.Background(), "doc.pdf", 0); text != "" {
		t.Errorf("ocrPage() = %q, want empty on render failure", text)
	}
}

func TestOCRPageWithoutCollaborators(t *testing.T) {
	e := NewExtractor()

	if text := e.ocrPage(context.Background(), "doc.pdf", 0); text != "" {
		t.Errorf("ocrPage() = %q, want empty without renderer and OCR", text)
	}
}

func TestDocumentAccessors(t *testing.T) {
	doc := NewDocument([]string{"first page", "second page"})

	if doc.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Page(1) != "second page" {
		t.Errorf("Page(1) = %q", doc.Page(1))
	}
	if doc.Page(5) != "" {
		t.Errorf("Page(5) = %q, want empty for out of range", doc.Page(5))
	}
	if doc.FullText() != "first page\nsecond page" {
		t.Errorf("FullText() = %q", doc.FullText())
	}

	pages := doc.Pages()
	pages[0] = "mutated"
	if doc.Page(0) != "first page" {
		t.Error("Pages() copy is not independent of the document")
	}
}

func TestExtractDocumentInvalidPDF(t *testing.T) {
	e := NewExtractor()

	_, err := e.ExtractDocument(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, ErrInvalidPDF) {
		t.Errorf("ExtractDocument() error = %v, want ErrInvalidPDF", err)
	}
}
