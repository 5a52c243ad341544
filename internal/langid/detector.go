// Package langid classifies a document as English, Indonesian, bilingual or
// unknown. The verdict gates the whole extraction pipeline: it selects the
// NER model variant and unsupported verdicts abort extraction early.
//
// Classification tries a language-identification capability first (one call
// per text sample, failures skipped silently) and only falls back to counting
// fixed keyword sets when identification produced no usable result. That
// ordering is load-bearing: the capability may be absent or fail per sample.
package langid

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"pdfmeta/internal/logger"
)

// Verdict is the detected document language.
type Verdict string

const (
	English    Verdict = "English"
	Indonesian Verdict = "Indonesian"
	Bilingual  Verdict = "Bilingual (Indonesian/English)"
	Unknown    Verdict = "Unknown"
)

// Supported reports whether the verdict allows extraction to proceed.
func (v Verdict) Supported() bool {
	return v == English || v == Indonesian || v == Bilingual
}

// Identifier defines the language-identification capability. Identify returns
// an ISO 639-1 code for a text sample and may fail per call.
type Identifier interface {
	Identify(ctx context.Context, sample string) (string, error)
}

// sampleWindow is how much of the full text is sampled from each end when no
// page split is available.
const sampleWindow = 2000

// Keyword fallback sets. A language wins at two or more hits in the
// lowercased full text.
var (
	indonesianKeywords = []string{
		"abstrak", "kata kunci", "pendahuluan", "bab", "daftar pustaka",
		"universitas", "fakultas", "jurusan", "prodi", "penelitian",
		"hasil", "kesimpulan",
	}
	englishKeywords = []string{
		"abstract", "keywords", "introduction", "university", "faculty",
		"department", "research", "result", "conclusion", "references",
	}
)

// Detector classifies documents. The Identifier may be nil, in which case
// only the keyword fallback runs.
type Detector struct {
	identifier Identifier
	log        zerolog.Logger
}

// NewDetector creates a detector around an optional identification capability.
func NewDetector(identifier Identifier) *Detector {
	return &Detector{
		identifier: identifier,
		log:        logger.WithComponent("langid"),
	}
}

// Detect classifies the document from its page texts and full text.
// Samples are pages 1 and 2 plus the last and second-to-last pages, whichever
// exist; with no pages the first and last 2000 characters of fullText are
// sampled instead.
func (d *Detector) Detect(ctx context.Context, fullText string, pages []string) Verdict {
	samples := sampleTexts(fullText, pages)

	var detected []string
	if d.identifier != nil {
		for _, sample := range samples {
			code, err := d.identifier.Identify(ctx, sample)
			if err != nil {
				d.log.Debug().Err(err).Msg("language identification failed for sample")
				continue
			}
			if code != "" {
				detected = append(detected, code)
			}
		}
	}

	if verdict, ok := tally(detected); ok {
		d.log.Debug().
			Strs("codes", detected).
			Str("verdict", string(verdict)).
			Msg("language identified from samples")
		return verdict
	}

	verdict := keywordFallback(fullText)
	d.log.Debug().
		Str("verdict", string(verdict)).
		Msg("language determined by keyword fallback")
	return verdict
}

func sampleTexts(fullText string, pages []string) []string {
	var samples []string
	if len(pages) > 0 {
		samples = append(samples, pages[0])
	}
	if len(pages) > 1 {
		samples = append(samples, pages[1])
	}
	if len(pages) > 2 {
		samples = append(samples, pages[len(pages)-1])
	}
	if len(pages) > 3 {
		samples = append(samples, pages[len(pages)-2])
	}
	if len(samples) == 0 && fullText != "" {
		head := fullText
		if len(head) > sampleWindow {
			head = head[:sampleWindow]
		}
		tail := fullText
		if len(tail) > sampleWindow {
			tail = tail[len(tail)-sampleWindow:]
		}
		samples = append(samples, head, tail)
	}
	return samples
}

// tally turns per-sample ISO codes into a verdict. The second return is false
// when identification was inconclusive and the keyword fallback must decide.
func tally(detected []string) (Verdict, bool) {
	if len(detected) == 0 {
		return Unknown, false
	}
	var id, en int
	for _, code := range detected {
		switch code {
		case "id":
			id++
		case "en":
			en++
		}
	}
	if id > 0 && en > 0 {
		return Bilingual, true
	}
	if id > en {
		return Indonesian, true
	}
	if en > 0 {
		return English, true
	}
	return Unknown, false
}

func keywordFallback(fullText string) Verdict {
	lower := strings.ToLower(fullText)

	countID := 0
	for _, w := range indonesianKeywords {
		if strings.Contains(lower, w) {
			countID++
		}
	}
	if countID >= 2 {
		return Indonesian
	}

	countEN := 0
	for _, w := range englishKeywords {
		if strings.Contains(lower, w) {
			countEN++
		}
	}
	if countEN >= 2 {
		return English
	}

	if countID > 0 && countEN > 0 {
		return Bilingual
	}
	return Unknown
}
