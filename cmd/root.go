package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"pdfmeta/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "pdfmeta",
	Short: "pdfmeta - bibliographic metadata extraction for academic PDFs",
	Long: `pdfmeta extracts bibliographic metadata (title, authors, abstract,
keywords, identifiers, affiliation) from academic PDF documents.

Extraction is best-effort: heuristic pattern extractors run over the document
text, optionally assisted by OCR, language identification and named-entity
recognition backed by Google Cloud APIs when credentials are configured.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("pdfmeta executed")

		fmt.Println("pdfmeta - academic PDF metadata extraction")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
