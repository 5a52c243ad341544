// Package ocr provides OCR (Optical Character Recognition) capabilities using
// Google Cloud Vision API.
//
// The extraction pipeline uses OCR only as a fallback: when a PDF page carries
// no embedded text, the page is rasterized and its bitmap is transcribed here.
// OCR failures are non-fatal to the pipeline; a failing page simply yields an
// empty transcript.
//
// Required Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
//   - GOOGLE_CLOUD_PROJECT: Google Cloud project ID
//
// Implementation Details:
//   - Uses synchronous document text detection on single page images
//   - Language hints bias recognition toward Latin-script languages (en, id)
package ocr

import "context"

// Service defines the interface for image text recognition.
type Service interface {
	// RecognizeImage transcribes the text visible in a page bitmap.
	// languageHints biases recognition (e.g. ["en", "id"]); it may be empty.
	RecognizeImage(ctx context.Context, image []byte, languageHints []string) (string, error)
}
