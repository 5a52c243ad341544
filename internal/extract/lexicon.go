package extract

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// documentTypeRule maps a set of keywords to a document type label. Rules are
// evaluated in lexicon order; the first keyword hit wins.
type documentTypeRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// lexicon holds the bilingual keyword sets driving the heuristic extractors.
type lexicon struct {
	SectionMarkers       []string           `yaml:"section_markers"`
	AbstractInlineStops  []string           `yaml:"abstract_inline_stops"`
	AbstractSectionStops []string           `yaml:"abstract_section_stops"`
	UniversityKeywords   []string           `yaml:"university_keywords"`
	DepartmentKeywords   []string           `yaml:"department_keywords"`
	AffiliationKeywords  []string           `yaml:"affiliation_keywords"`
	PublisherKeywords    []string           `yaml:"publisher_keywords"`
	AdvisorKeywords      []string           `yaml:"advisor_keywords"`
	JournalKeywords      []string           `yaml:"journal_keywords"`
	YearContextKeywords  []string           `yaml:"year_context_keywords"`
	SubjectKeywords      []string           `yaml:"subject_keywords"`
	DocumentTypes        []documentTypeRule `yaml:"document_types"`
	PersonDenylist       []string           `yaml:"person_denylist"`
}

var lex = mustLoadLexicon()

func mustLoadLexicon() *lexicon {
	var l lexicon
	if err := yaml.Unmarshal(lexiconYAML, &l); err != nil {
		panic(fmt.Sprintf("extract: invalid embedded lexicon: %v", err))
	}
	return &l
}

// sectionMarkerRe matches lines starting with any section-header marker.
var sectionMarkerRe = regexp.MustCompile(`(?i)^(` + strings.Join(lex.SectionMarkers, "|") + `)`)

// Alternations used to terminate abstract capture.
var (
	abstractInlineStopAlt  = strings.Join(lex.AbstractInlineStops, "|")
	abstractSectionStopAlt = strings.Join(lex.AbstractSectionStops, "|")
	abstractStopAlt        = abstractInlineStopAlt + "|" + abstractSectionStopAlt
)

// containsAny reports whether the lowercased line contains any keyword.
func containsAny(lowerLine string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerLine, kw) {
			return true
		}
	}
	return false
}

// firstContained returns the first keyword contained in the lowercased line.
func firstContained(lowerLine string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lowerLine, kw) {
			return kw, true
		}
	}
	return "", false
}
