package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pdfmeta/internal/config"
	"pdfmeta/internal/langid"
	"pdfmeta/internal/logger"
	"pdfmeta/internal/pdftext"
)

var detectCmd = &cobra.Command{
	Use:   "detect [pdf-file]",
	Short: "Detect the document language of a PDF",
	Long: `Detect whether a PDF document is written in English, Indonesian, both,
or an unsupported language.

Detection samples the first and last pages of the document. When Google Cloud
credentials are configured the Cloud Translation API identifies each sample;
otherwise a bilingual keyword count decides.`,
	Example: `  # Print the language verdict
  pdfmeta detect paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().Int("timeout", 120, "Processing timeout in seconds")
}

func runDetect(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("detect-cmd")

	timeoutSecs, _ := cmd.Flags().GetInt("timeout")
	pdfPath := args[0]

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

	verdict := langid.NewDetector(caps.identifier).Detect(ctx, doc.FullText(), doc.Pages())

	log.Info().
		Str("language", string(verdict)).
		Dur("duration", time.Since(startTime)).
		Msg("Language detection completed")

	fmt.Println(verdict)
	return nil
}
