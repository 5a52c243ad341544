package extract

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"pdfmeta/internal/langid"
	"pdfmeta/internal/logger"
	"pdfmeta/internal/ner"
	"pdfmeta/internal/pdftext"
	"pdfmeta/pkg/models"
)

// UnsupportedLanguageMessage is returned when the language gate rejects a
// document.
const UnsupportedLanguageMessage = "Only English and Indonesian PDFs are supported for metadata extraction."

// failureMessage is returned when the pipeline aborts on an internal fault.
const failureMessage = "Metadata extraction failed due to an internal error."

// Pipeline runs the full metadata extraction flow over an acquired document:
// header/footer scan, heuristic field extraction, language gating, and
// NER-assisted refinement. Both capabilities are optional; with a nil detector
// identifier and an empty registry the pipeline still produces a heuristic
// record.
type Pipeline struct {
	detector *langid.Detector
	registry *ner.Registry
	log      zerolog.Logger
}

// NewPipeline creates a pipeline around a language detector and a NER model
// registry. The registry may be nil.
func NewPipeline(detector *langid.Detector, registry *ner.Registry) *Pipeline {
	return &Pipeline{
		detector: detector,
		registry: registry,
		log:      logger.WithComponent("extract"),
	}
}

// Extract produces a metadata record from the document. Field extractors never
// fail individually; a panic anywhere in the flow is recovered into a generic
// failure result so one malformed document cannot take down the caller.
func (p *Pipeline) Extract(ctx context.Context, doc *pdftext.Document) (result *models.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			fault := WrapExtractionError("pipeline", ErrExtractionFailed, fmt.Sprint(r))
			p.log.Error().Err(fault).Msg("extraction pipeline panicked")
			result = &models.ExtractionResult{
				Success: false,
				Data:    models.NewMetadata(),
				Message: failureMessage,
			}
			err = nil
		}
	}()

	text := doc.FullText()
	pages := doc.Pages()
	record := models.NewMetadata()

	scan := ScanHeadersFooters(pages)
	p.log.Debug().
		Str("journal", scan.Journal).
		Str("issn", scan.ISSN).
		Str("eissn", scan.EISSN).
		Msg("scanned page headers and footers")

	record.Title = Title(text)

	// First NER pass runs before the language verdict exists, with the
	// English model. The post-verdict pass below may replace the result.
	heuristicAuthors := Authors(text)
	nerAuthors := AuthorsNER(ctx, p.registry.ForLanguage(string(langid.English)), text)
	record.Authors = MergeAuthors(heuristicAuthors, nerAuthors)

	record.Abstract = Abstract(text)
	record.Keywords = Keywords(text)
	record.Year = Year(text, pages)

	verdict := p.detector.Detect(ctx, text, pages)
	record.Language = string(verdict)
	if !verdict.Supported() {
		p.log.Info().
			Str("language", string(verdict)).
			Msg("document language not supported, skipping extraction")
		unsupported := models.NewMetadata()
		unsupported.Language = string(verdict)
		return &models.ExtractionResult{
			Success: false,
			Data:    unsupported,
			Message: UnsupportedLanguageMessage,
		}, nil
	}

	model := p.registry.ForLanguage(string(verdict))

	nerUniversity := UniversityNER(ctx, model, text)
	record.University = MergeUniversities(University(text), nerUniversity)
	record.Advisor = AdvisorNER(ctx, model, text)
	record.Department = DepartmentNER(ctx, model, text)
	record.Publisher = Publisher(text)
	record.Pages = PageRange(text)
	record.Subject = Subject(text)
	record.DocumentType = DocumentType(text)

	record.Journal = scan.Journal
	if record.Journal == "" {
		record.Journal = Journal(text)
	}
	record.Volume = scan.Volume
	if record.Volume == "" {
		record.Volume = Volume(text)
	}
	record.Issue = scan.Issue
	if record.Issue == "" {
		record.Issue = Issue(text)
	}
	record.DOI = scan.DOI
	if record.DOI == "" {
		record.DOI = DOI(text)
	}
	record.ISSN = scan.ISSN
	if record.ISSN == "" {
		record.ISSN = scan.EISSN
	}
	if record.ISSN == "" {
		record.ISSN = ISSN(text)
	}
	record.ISBN = ISBN(text)

	// Second NER pass with the verdict-selected model. A non-empty result
	// replaces the merged value outright.
	if authors := AuthorsNER(ctx, model, text); len(authors) > 0 {
		record.Authors = authors
	}
	if nerUniversity != "" {
		record.University = nerUniversity
	}

	p.log.Info().
		Str("language", record.Language).
		Str("document_type", record.DocumentType).
		Int("authors", len(record.Authors)).
		Bool("has_title", record.Title != "").
		Msg("metadata extraction complete")

	return &models.ExtractionResult{
		Success: true,
		Data:    record,
		Message: "Metadata extracted successfully.",
	}, nil
}
