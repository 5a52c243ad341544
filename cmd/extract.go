package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pdfmeta/internal/config"
	"pdfmeta/internal/extract"
	"pdfmeta/internal/langid"
	"pdfmeta/internal/logger"
	"pdfmeta/internal/ner"
	"pdfmeta/internal/ocr"
	"pdfmeta/internal/pdftext"
	"pdfmeta/pkg/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf-file]",
	Short: "Extract bibliographic metadata from an academic PDF",
	Long: `Extract bibliographic metadata (title, authors, abstract, keywords,
identifiers, affiliation) from an academic PDF document.

Extraction runs heuristic pattern extractors over the document text. When
Google Cloud credentials are configured, three optional capabilities improve
the result: Cloud Vision OCR for pages without embedded text, Cloud Translation
language identification for the language gate, and Cloud Natural Language
entity recognition for author/affiliation fields. Without credentials the
command still works on heuristics alone.

Optional environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string
  GOOGLE_CLOUD_PROJECT - Your Google Cloud project ID`,
	Example: `  # Extract metadata from a paper to stdout
  pdfmeta extract paper.pdf

  # Output the record as JSON to a file
  pdfmeta extract thesis.pdf --json -o metadata.json

  # Extract with a longer timeout for scanned documents
  pdfmeta extract scanned.pdf --timeout 600`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().Bool("json", false, "Output as JSON")
	extractCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract-cmd")

	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	pdfPath := args[0]

	log.Info().
		Str("file", pdfPath).
		Str("output", outputPath).
		Bool("json", jsonOutput).
		Int("timeout", timeoutSecs).
		Msg("Starting metadata extraction")

	if err := validatePDFFile(pdfPath, log); err != nil {
		return err
	}

	ctx, cancel := createContextWithTimeout(timeoutSecs, log)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	caps := buildCapabilities(ctx, cfg, log)
	defer caps.close(log)

	extractor := pdftext.NewExtractor(
		pdftext.WithOCRFallback(caps.renderer, caps.ocr, cfg.OCRLanguageHints),
		pdftext.WithZoomFactor(cfg.OCRZoomFactor),
	)

	startTime := time.Now()
	doc, err := extractor.ExtractDocument(ctx, pdfPath)
	if err != nil {
		return handleExtractError(err, log)
	}

	pipeline := extract.NewPipeline(langid.NewDetector(caps.identifier), caps.registry)
	result, err := pipeline.Extract(ctx, doc)
	if err != nil {
		return handleExtractError(err, log)
	}

	log.Info().
		Bool("success", result.Success).
		Str("language", result.Data.Language).
		Dur("duration", time.Since(startTime)).
		Msg("Metadata extraction completed")

	return outputResult(result, outputPath, jsonOutput, log)
}

// capabilities bundles the optional Google Cloud backed collaborators. Any
// field may be nil; construction failures degrade the pipeline rather than
// aborting the command.
type capabilities struct {
	renderer   pdftext.PageRenderer
	ocr        ocr.Service
	identifier langid.Identifier
	registry   *ner.Registry
}

func buildCapabilities(ctx context.Context, cfg *config.Config, log zerolog.Logger) *capabilities {
	caps := &capabilities{}

	if !cfg.HasGoogleCredentials() {
		log.Info().Msg("Google Cloud credentials not configured, running heuristics only")
		return caps
	}

	caps.renderer = pdftext.NewPDFCPURenderer()

	if svc, err := ocr.NewGoogleVisionService(ctx); err != nil {
		log.Warn().Err(err).Msg("OCR capability unavailable")
	} else {
		caps.ocr = svc
	}

	if cfg.LangIDEnabled {
		if id, err := langid.NewGoogleTranslateIdentifier(ctx); err != nil {
			log.Warn().Err(err).Msg("Language identification capability unavailable")
		} else {
			caps.identifier = id
		}
	}

	reg, err := ner.NewRegistry(ctx, cfg.NEREnglishEnabled, cfg.NERIndonesianEnabled)
	if err != nil {
		log.Warn().Err(err).Msg("Entity recognition capability degraded")
	}
	caps.registry = reg

	return caps
}

func (c *capabilities) close(log zerolog.Logger) {
	type closer interface{ Close() error }
	for _, candidate := range []any{c.ocr, c.identifier} {
		if cl, ok := candidate.(closer); ok && cl != nil {
			if err := cl.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close capability client")
			}
		}
	}
	if c.registry != nil {
		for _, model := range []ner.Model{c.registry.English, c.registry.Indonesian} {
			if cl, ok := model.(closer); ok && cl != nil {
				if err := cl.Close(); err != nil {
					log.Warn().Err(err).Msg("Failed to close entity model client")
				}
			}
		}
	}
}

// validatePDFFile checks that the path is a readable, non-empty regular file.
func validatePDFFile(pdfPath string, log zerolog.Logger) error {
	fileInfo, err := os.Stat(pdfPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().
				Str("file", pdfPath).
				Msg("PDF file not found")
			return fmt.Errorf("PDF file not found: %s", pdfPath)
		}
		if os.IsPermission(err) {
			log.Error().
				Str("file", pdfPath).
				Msg("Permission denied accessing PDF file")
			return fmt.Errorf("permission denied accessing PDF file: %s", pdfPath)
		}
		return fmt.Errorf("error accessing PDF file: %w", err)
	}

	if !fileInfo.Mode().IsRegular() {
		log.Error().
			Str("file", pdfPath).
			Msg("Path is not a regular file")
		return fmt.Errorf("path is not a regular file: %s", pdfPath)
	}

	if !strings.HasSuffix(strings.ToLower(pdfPath), ".pdf") {
		log.Warn().
			Str("file", pdfPath).
			Msg("File does not have .pdf extension")
	}

	if fileInfo.Size() == 0 {
		log.Error().
			Str("file", pdfPath).
			Msg("PDF file is empty")
		return fmt.Errorf("PDF file is empty: %s", pdfPath)
	}

	return nil
}

// createContextWithTimeout creates a context with timeout and signal handling.
func createContextWithTimeout(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling processing")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// handleExtractError provides user-friendly error messages for extraction failures.
func handleExtractError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Metadata extraction failed")

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("processing timed out. Try increasing --timeout or processing a smaller file")
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("processing was canceled")
	case errors.Is(err, pdftext.ErrInvalidPDF):
		return fmt.Errorf("invalid or corrupted PDF file. Please check the file integrity")
	default:
		return fmt.Errorf("metadata extraction failed: %w", err)
	}
}

// outputResult writes the extraction result to stdout or the output file.
func outputResult(result *models.ExtractionResult, outputPath string, jsonOutput bool, log zerolog.Logger) error {
	var content string

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}
		content = string(data)
	} else {
		content = formatResultText(result)
	}

	if outputPath == "" {
		fmt.Println(content)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content+"\n"), 0644); err != nil {
		log.Error().
			Err(err).
			Str("output", outputPath).
			Msg("Failed to write output file")
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info().
		Str("output", outputPath).
		Msg("Result written to file")
	return nil
}

func formatResultText(result *models.ExtractionResult) string {
	var b strings.Builder

	if !result.Success {
		fmt.Fprintf(&b, "Extraction failed: %s\n", result.Message)
		if result.Data != nil && result.Data.Language != "" {
			fmt.Fprintf(&b, "Detected language: %s", result.Data.Language)
		}
		return b.String()
	}

	m := result.Data
	writeField := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-14s %s\n", name+":", value)
		}
	}

	writeField("Title", m.Title)
	writeField("Authors", strings.Join(m.Authors, "; "))
	writeField("Abstract", m.Abstract)
	writeField("Keywords", strings.Join(m.Keywords, ", "))
	writeField("Journal", m.Journal)
	writeField("Publisher", m.Publisher)
	if m.Year != 0 {
		writeField("Year", fmt.Sprintf("%d", m.Year))
	}
	writeField("Volume", m.Volume)
	writeField("Issue", m.Issue)
	writeField("Pages", m.Pages)
	writeField("DOI", m.DOI)
	writeField("ISBN", m.ISBN)
	writeField("ISSN", m.ISSN)
	writeField("Language", m.Language)
	writeField("Subject", m.Subject)
	writeField("Type", m.DocumentType)
	writeField("University", m.University)
	writeField("Department", m.Department)
	writeField("Advisor", m.Advisor)

	return strings.TrimRight(b.String(), "\n")
}
