package pdftext

import (
	"context"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"pdfmeta/internal/logger"
	"pdfmeta/internal/ocr"
)

// defaultZoomFactor upscales the page render to aid recognition.
const defaultZoomFactor = 2.0

// Extractor acquires per-page text from a PDF file. Renderer and OCR are
// optional collaborators; when either is nil, pages without embedded text
// stay empty.
type Extractor struct {
	renderer      PageRenderer
	ocr           ocr.Service
	languageHints []string
	zoom          float64
	log           zerolog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithOCRFallback enables the render-then-OCR fallback for pages without
// embedded text. languageHints biases recognition (e.g. ["en", "id"]).
func WithOCRFallback(renderer PageRenderer, service ocr.Service, languageHints []string) ExtractorOption {
	return func(e *Extractor) {
		e.renderer = renderer
		e.ocr = service
		e.languageHints = languageHints
	}
}

// WithZoomFactor overrides the render upscale factor.
func WithZoomFactor(zoom float64) ExtractorOption {
	return func(e *Extractor) {
		if zoom > 0 {
			e.zoom = zoom
		}
	}
}

// NewExtractor creates a text acquisition adapter.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		zoom: defaultZoomFactor,
		log:  logger.WithComponent("pdftext"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractDocument acquires the text of every page of the PDF at path, in
// physical page order.
func (e *Extractor) ExtractDocument(ctx context.Context, path string) (*Document, error) {
	const op = "ExtractDocument"

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &AcquisitionError{Op: op, Page: -1, Err: ErrInvalidPDF}
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		text := e.pageText(reader, i)
		if strings.TrimSpace(text) == "" {
			text = e.ocrPage(ctx, path, i-1)
		}
		pages = append(pages, text)
	}

	e.log.Info().
		Str("file", path).
		Int("pages", numPages).
		Msg("document text acquired")

	return NewDocument(pages), nil
}

// pageText reads the embedded text of a page; a page that cannot be read
// yields "".
func (e *Extractor) pageText(reader *pdf.Reader, pageNo int) string {
	page := reader.Page(pageNo)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		e.log.Debug().
			Err(err).
			Int("page", pageNo).
			Msg("embedded text extraction failed")
		return ""
	}
	return text
}

// ocrPage renders and transcribes one page. Failures are non-fatal and yield
// an empty transcript; the rendered bitmap is removed on every exit path.
func (e *Extractor) ocrPage(ctx context.Context, path string, pageIdx int) string {
	if e.renderer == nil || e.ocr == nil {
		return ""
	}

	e.log.Info().
		Int("page", pageIdx).
		Msg("no embedded text, trying OCR")

	imagePath, cleanup, err := e.renderer.RenderPage(ctx, path, pageIdx, e.zoom)
	if err != nil {
		e.log.Warn().
			Err(err).
			Int("page", pageIdx).
			Msg("page render failed")
		return ""
	}
	defer cleanup()

	image, err := os.ReadFile(imagePath)
	if err != nil {
		e.log.Warn().
			Err(err).
			Int("page", pageIdx).
			Msg("rendered image unreadable")
		return ""
	}

	text, err := e.ocr.RecognizeImage(ctx, image, e.languageHints)
	if err != nil {
		e.log.Warn().
			Err(err).
			Int("page", pageIdx).
			Msg("OCR failed")
		return ""
	}

	e.log.Info().
		Int("page", pageIdx).
		Int("chars", len(text)).
		Msg("OCR transcript acquired")
	return text
}
