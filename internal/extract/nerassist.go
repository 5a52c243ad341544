package extract

import (
	"context"
	"strings"

	"pdfmeta/internal/ner"
)

// NER-assisted extractors. Each degrades gracefully: a nil model, a model
// error or an empty entity list yields empty output or the corresponding
// heuristic fallback, never a failure.

// authorScanLines bounds person-name recognition to the top of the document,
// where author names live and where inference stays cheap.
const authorScanLines = 40

// advisorContextLines is how many lines after a keyword line are included in
// the recognition window.
const advisorContextLines = 2

// AuthorsNER extracts author names from the first forty lines using person
// entities. Entities containing institutional or domain nouns are rejected,
// only 2-4 token names are accepted, and at most five names are returned.
func AuthorsNER(ctx context.Context, model ner.Model, text string) []string {
	if model == nil {
		return nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) > authorScanLines {
		lines = lines[:authorScanLines]
	}
	entities, err := model.Entities(ctx, strings.Join(lines, "\n"))
	if err != nil {
		return nil
	}

	var authors []string
	for _, e := range entities {
		if e.Label != ner.Person {
			continue
		}
		name := strings.TrimSpace(e.Text)
		words := strings.Fields(name)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if containsAny(strings.ToLower(name), lex.PersonDenylist) {
			continue
		}
		if !containsString(authors, name) {
			authors = append(authors, name)
		}
		if len(authors) >= 5 {
			break
		}
	}
	return authors
}

// UniversityNER extracts the university via organization entities, preferring
// one containing a university/institute keyword over the first organization
// found.
func UniversityNER(ctx context.Context, model ner.Model, text string) string {
	if model == nil {
		return ""
	}
	entities, err := model.Entities(ctx, text)
	if err != nil {
		return ""
	}

	first := ""
	for _, e := range entities {
		if e.Label != ner.Organization {
			continue
		}
		org := strings.TrimSpace(e.Text)
		if containsAny(strings.ToLower(org), lex.UniversityKeywords) {
			return org
		}
		if first == "" {
			first = org
		}
	}
	return first
}

// AdvisorNER scans for advisor keyword lines and recognizes entities only on
// that line plus the next two, returning the first person entity with at
// least two tokens. Delegates to the heuristic extractor when the model is
// unavailable or finds nothing.
func AdvisorNER(ctx context.Context, model ner.Model, text string) string {
	if model == nil {
		return Advisor(text)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), lex.AdvisorKeywords) {
			continue
		}
		entities, err := model.Entities(ctx, contextWindow(lines, i))
		if err != nil {
			continue
		}
		for _, e := range entities {
			if e.Label == ner.Person && len(strings.Fields(e.Text)) >= 2 {
				return strings.TrimSpace(e.Text)
			}
		}
	}
	return Advisor(text)
}

// DepartmentNER scans for department/faculty keyword lines and recognizes
// entities only on that line plus the next two, returning the first
// organization entity. Delegates to the heuristic extractor when the model
// is unavailable or finds nothing.
func DepartmentNER(ctx context.Context, model ner.Model, text string) string {
	if model == nil {
		return Department(text)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), lex.DepartmentKeywords) {
			continue
		}
		entities, err := model.Entities(ctx, contextWindow(lines, i))
		if err != nil {
			continue
		}
		for _, e := range entities {
			if e.Label == ner.Organization {
				return strings.TrimSpace(e.Text)
			}
		}
	}
	return Department(text)
}

// contextWindow joins lines[i] with the following two lines.
func contextWindow(lines []string, i int) string {
	end := i + advisorContextLines + 1
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[i:end], "\n")
}
