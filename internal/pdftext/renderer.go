package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageRenderer is the rendering collaborator: it produces a bitmap of one PDF
// page for OCR. The returned cleanup func releases any temporary storage and
// must be called on every exit path, success or failure.
type PageRenderer interface {
	// RenderPage writes a bitmap of page pageNo (zero-based) of the PDF at
	// path and returns the image file path. zoom requests an upscaled
	// resolution to aid recognition; implementations may treat it as advisory.
	RenderPage(ctx context.Context, path string, pageNo int, zoom float64) (imagePath string, cleanup func(), err error)
}

// PDFCPURenderer implements PageRenderer by extracting the page's embedded
// images with pdfcpu. Scanned documents, the case where OCR matters, carry
// the page as a single full-page image at scan resolution, so the largest
// extracted image stands in for a rasterized page. zoom is advisory here:
// the native scan resolution is kept.
type PDFCPURenderer struct{}

// NewPDFCPURenderer creates a renderer backed by pdfcpu image extraction.
func NewPDFCPURenderer() *PDFCPURenderer {
	return &PDFCPURenderer{}
}

// RenderPage extracts the images of one page into a temporary directory and
// returns the path of the largest one. The cleanup func removes the whole
// directory.
func (r *PDFCPURenderer) RenderPage(ctx context.Context, path string, pageNo int, zoom float64) (string, func(), error) {
	const op = "RenderPage"

	tmpDir, err := os.MkdirTemp("", "pdfmeta-page-*")
	if err != nil {
		return "", nil, &AcquisitionError{Op: op, Page: pageNo, Err: err}
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	// pdfcpu page selection is one-based.
	pages := []string{fmt.Sprintf("%d", pageNo+1)}
	if err := api.ExtractImagesFile(path, tmpDir, pages, nil); err != nil {
		cleanup()
		return "", nil, &AcquisitionError{Op: op, Page: pageNo, Err: err}
	}

	imagePath, err := largestFile(tmpDir)
	if err != nil {
		cleanup()
		return "", nil, &AcquisitionError{Op: op, Page: pageNo, Err: err}
	}

	return imagePath, cleanup, nil
}

// largestFile returns the path of the largest regular file in dir.
func largestFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var best string
	var bestSize int64 = -1
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Size() > bestSize {
			best = filepath.Join(dir, entry.Name())
			bestSize = info.Size()
		}
	}
	if best == "" {
		return "", ErrNoPageImage
	}
	return best, nil
}
