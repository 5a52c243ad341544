package extract

import (
	"regexp"
	"strings"
)

// HeaderFooter holds running-head metadata recovered from page headers and
// footers. ISSN and EISSN are kept under distinct keys so a document carrying
// both identifiers loses neither.
type HeaderFooter struct {
	Journal string
	Volume  string
	Issue   string
	ISSN    string
	EISSN   string
	DOI     string
}

var (
	headerVolumeRe = regexp.MustCompile(`(?i)vol(?:ume)?[\s:.,-]*([0-9]{1,4})`)
	headerIssueRe  = regexp.MustCompile(`(?i)(no\.|number|issue)[\s:.,-]*([0-9]{1,4})`)
	headerISSNRe   = regexp.MustCompile(`(?i)(e?issn)[\s:]*([0-9]{4}-[0-9]{3}[0-9Xx])`)
	headerDOIRe    = regexp.MustCompile(`(?i)doi[:\s]*(10\.\d{4,9}/[-._;()/:A-Z0-9]+)`)
)

// ScanHeadersFooters scans at most the first two and last two non-blank lines
// of every page for running-head metadata. The journal name is first-wins
// across the document; every other field may be overwritten by a later page,
// since running heads repeat and later pages can clarify a value.
func ScanHeadersFooters(pages []string) HeaderFooter {
	var hf HeaderFooter
	for _, page := range pages {
		for _, line := range headerFooterLines(page) {
			lower := strings.ToLower(line)

			if hf.Journal == "" && containsAny(lower, lex.JournalKeywords) {
				hf.Journal = line
			}
			if m := headerVolumeRe.FindStringSubmatch(line); m != nil {
				hf.Volume = m[1]
			}
			if m := headerIssueRe.FindStringSubmatch(line); m != nil {
				hf.Issue = m[2]
			}
			if m := headerISSNRe.FindStringSubmatch(line); m != nil {
				value := strings.ToUpper(m[2])
				if strings.EqualFold(m[1], "eissn") {
					hf.EISSN = value
				} else {
					hf.ISSN = value
				}
			}
			if m := headerDOIRe.FindStringSubmatch(line); m != nil {
				hf.DOI = m[1]
			}
		}
	}
	return hf
}

// headerFooterLines returns the first two and last two non-blank lines of a
// page, or all of them when the page has fewer.
func headerFooterLines(page string) []string {
	var lines []string
	for _, l := range strings.Split(page, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) <= 4 {
		return lines
	}
	return append(append([]string(nil), lines[:2]...), lines[len(lines)-2:]...)
}
