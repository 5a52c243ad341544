package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Heuristic field extractors. Each is a pure function of the document text
// (plus page texts where noted); none of them returns an error — a field that
// cannot be determined is an empty string, empty list or zero.

var (
	whitespaceRe     = regexp.MustCompile(`\s+`)
	authorSplitRe    = regexp.MustCompile(`,|\d+\)?|\)|\s{2,}`)
	authorTrailingRe = regexp.MustCompile(`[\d)]+$`)

	abstractStopTail = `(?:\s*(?:` + abstractInlineStopAlt + `)\b|\n\s*(?:` + abstractSectionStopAlt + `)\b|\s*$)`

	abstractRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\babstract\b\s*[:\-–]?\s*([\s\S]{20,1000}?[\s\S]{0,1000}?)` + abstractStopTail),
		regexp.MustCompile(`(?i)\babstrak\b\s*[:\-–]?\s*([\s\S]{20,1000}?[\s\S]{0,1000}?)` + abstractStopTail),
		regexp.MustCompile(`(?i)\bsummary\b\s*[:\-–]?\s*([\s\S]{20,1000}?[\s\S]{0,1000}?)` + abstractStopTail),
	}
	abstractStopLineRe = regexp.MustCompile(`(?i)^(` + abstractStopAlt + `)\b`)

	keywordRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)keywords?[:\s]*([^\n.;]+)`),
		regexp.MustCompile(`(?i)key words[:\s]*([^\n.;]+)`),
		regexp.MustCompile(`(?i)index terms[:\s]*([^\n.;]+)`),
		regexp.MustCompile(`(?i)kata kunci[:\s]*([^\n.;]+)`),
	}

	yearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	universityFallbackRe = regexp.MustCompile(`(?i)(universitas|university|institute|institut|college|politeknik|polytechnic)[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`)
	departmentFallbackRe = regexp.MustCompile(`(?i)(prodi|program studi|jurusan|fakultas|faculty|departemen|department|school of)[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`)
	publisherFallbackRe  = regexp.MustCompile(`(?i)(publisher|diterbitkan oleh|published by|penerbit)[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`)
	advisorFallbackRe    = regexp.MustCompile(`(?i)(advisor|supervisor|pembimbing|dosen pembimbing|dibimbing oleh|under the supervision of)[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`)
	journalFallbackRe    = regexp.MustCompile(`(?i)(journal|jurnal|proceedings|prosiding)[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`)

	pagesRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:pp\.|pages|halaman)[\s:.,-]*([0-9]+\s*-\s*[0-9]+)`),
		regexp.MustCompile(`(?i)(?:pp\.|pages|halaman)[\s:.,-]*([0-9]+)`),
		regexp.MustCompile(`(?i)pages?[\s:.,-]*([0-9]+\s*-\s*[0-9]+)`),
		regexp.MustCompile(`(?i)pages?[\s:.,-]*([0-9]+)`),
	}

	subjectRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)subject[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`),
		regexp.MustCompile(`(?i)bidang[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`),
		regexp.MustCompile(`(?i)field of study[\s:.,-]*([A-Z][A-Za-z\s&.'-]{3,100})`),
	}

	issnRe         = regexp.MustCompile(`(?i)ISSN[\s:]*([0-9]{4}-[0-9]{3}[0-9Xx])`)
	issnBareRe     = regexp.MustCompile(`([0-9]{4}-[0-9]{3}[0-9Xx])`)
	isbnRe         = regexp.MustCompile(`(?i)ISBN[\s:]*(97[89][- ]?[0-9]{1,5}[- ]?[0-9]{1,7}[- ]?[0-9]{1,7}[- ]?[0-9Xx])`)
	isbnBareRe     = regexp.MustCompile(`(97[89][- ]?[0-9]{1,5}[- ]?[0-9]{1,7}[- ]?[0-9]{1,7}[- ]?[0-9Xx])`)
	doiRe          = regexp.MustCompile(`(?i)doi[:\s]*(10\.\d{4,9}/[-._;()/:A-Z0-9]+)`)
	doiBareRe      = regexp.MustCompile(`(?i)(10\.\d{4,9}/[-._;()/:A-Z0-9]+)`)
	volumeRe       = regexp.MustCompile(`(?i)vol(?:ume)?[\s:.,-]*([0-9]{1,4})`)
	issueRe        = regexp.MustCompile(`(?i)(no\.|number|issue)[\s:.,-]*([0-9]{1,4})`)
	emailRe        = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	yearContextRes = buildYearContextRes()
)

func buildYearContextRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(lex.YearContextKeywords))
	for _, kw := range lex.YearContextKeywords {
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)+`[^\n\d]{0,20}(19\d{2}|20\d{2})`))
	}
	return res
}

const fieldTrimCutset = " ,.-:"

// Title scans the first ten lines for a run of title-styled lines: all
// upper-case, or starting upper-case with at least three capitalized words.
// Collection stops at a section header or at a line that breaks the style of
// the run. Falls back to the first line longer than ten characters among the
// first twenty that is not a section header.
func Title(text string) string {
	lines := strings.Split(text, "\n")

	var titleLines []string
	upperRun := false
collect:
	for i := 0; i < len(lines) && i < 10; i++ {
		l := strings.TrimSpace(lines[i])
		if l == "" || len(l) < 8 {
			continue
		}
		if sectionMarkerRe.MatchString(l) {
			break
		}
		upper := isUpperLine(l)
		titled := firstRuneUpper(l) && capitalizedWords(l) >= 3
		switch {
		case len(titleLines) == 0:
			if upper || titled {
				titleLines = append(titleLines, l)
				upperRun = upper
			}
		case upperRun && upper, !upperRun && (upper || titled):
			titleLines = append(titleLines, l)
		default:
			// A line that breaks the style of the run ends the title. In
			// particular a mixed-case author line after an upper-case title
			// run is not part of the title.
			break collect
		}
	}
	if len(titleLines) > 0 {
		return collapseWhitespace(strings.Join(titleLines, " "))
	}

	for i := 0; i < len(lines) && i < 20; i++ {
		l := strings.TrimSpace(lines[i])
		if len(l) > 10 && !sectionMarkerRe.MatchString(l) {
			return l
		}
	}
	return ""
}

// Authors locates the block between the end of the title and the first
// abstract line (or ten lines past the title when no abstract is found) and
// splits candidate lines on commas, digits/superscripts and double-space
// runs. A fragment counts as a name when it has two to four space-separated
// words, each starting with a capital letter. At most five candidates.
func Authors(text string) []string {
	lines := strings.Split(text, "\n")

	titleIdx := -1
	abstractIdx := -1
	for i := 0; i < len(lines) && i < 40; i++ {
		l := strings.ToLower(strings.TrimSpace(lines[i]))
		if titleIdx == -1 && len(strings.TrimSpace(lines[i])) > 10 && !sectionMarkerRe.MatchString(l) {
			titleIdx = i
		}
		if strings.Contains(l, "abstract") || strings.Contains(l, "abstrak") {
			abstractIdx = i
			break
		}
	}

	start := 0
	if titleIdx >= 0 {
		start = titleIdx + 1
	}
	end := start + 10
	if abstractIdx > start {
		end = abstractIdx
	}
	if end > len(lines) {
		end = len(lines)
	}

	var candidates []string
	for i := start; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) > 100 {
			continue
		}
		for _, part := range authorSplitRe.Split(line, -1) {
			name := strings.TrimSpace(authorTrailingRe.ReplaceAllString(strings.TrimSpace(part), ""))
			if name == "" {
				continue
			}
			words := strings.Fields(name)
			if len(words) < 2 || len(words) > 4 || !allWordsCapitalized(words) {
				continue
			}
			if !containsString(candidates, name) {
				candidates = append(candidates, name)
			}
			if len(candidates) >= 5 {
				return candidates
			}
		}
	}
	return candidates
}

// Abstract pattern-matches an abstract/abstrak/summary header followed by 20
// to 2000 characters up to the next section marker or end of text, falling
// back to collecting up to fifteen non-empty lines after a header line.
func Abstract(text string) string {
	for _, re := range abstractRes {
		if m := re.FindStringSubmatch(text); m != nil {
			abstract := collapseWhitespace(m[1])
			if len(abstract) > 20 && len(abstract) < 2000 {
				return abstract
			}
		}
	}

	// Fallback: paragraph following the header line.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		l := strings.ToLower(strings.TrimSpace(line))
		if !strings.HasPrefix(l, "abstract") && !strings.HasPrefix(l, "abstrak") && !strings.HasPrefix(l, "summary") {
			continue
		}
		var collected []string
		for j := i + 1; j < len(lines) && j <= i+20; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				break
			}
			if abstractStopLineRe.MatchString(next) {
				break
			}
			collected = append(collected, next)
			if len(collected) > 15 {
				break
			}
		}
		abstract := collapseWhitespace(strings.Join(collected, " "))
		if len(abstract) > 20 && len(abstract) < 2000 {
			return abstract
		}
	}
	return ""
}

// Keywords pattern-matches a keywords/key words/index terms/kata kunci header
// and splits the captured span on commas and semicolons. Patterns are tried
// in a fixed priority order; the first match wins outright.
func Keywords(text string) []string {
	for _, re := range keywordRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var keywords []string
		for _, k := range regexp.MustCompile(`[;,]`).Split(m[1], -1) {
			k = strings.TrimSpace(k)
			if len(k) > 1 && !containsString(keywords, k) {
				keywords = append(keywords, k)
			}
		}
		return keywords
	}
	return nil
}

// Year extracts the publication year. A year immediately following a context
// keyword ("published", "copyright", "tahun", ...) is returned immediately;
// otherwise 4-digit candidates from the first two and last two pages and the
// full text are collected and the single candidate, or the most recent of
// several, wins. 0 means unknown.
func Year(text string, pages []string) int {
	currentYear := time.Now().Year()

	// Contextual match short-circuits candidate voting.
	for _, re := range yearContextRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if y := parseYear(m[1], currentYear); y != 0 {
				return y
			}
		}
	}

	candidates := make(map[int]bool)
	for _, page := range sampleYearPages(pages) {
		for _, m := range yearRe.FindAllStringSubmatch(page, -1) {
			if y := parseYear(m[1], currentYear); y != 0 {
				candidates[y] = true
			}
		}
	}
	for _, m := range yearRe.FindAllStringSubmatch(text, -1) {
		if y := parseYear(m[1], currentYear); y != 0 {
			candidates[y] = true
		}
	}

	if len(candidates) == 0 {
		return 0
	}
	best := 0
	for y := range candidates {
		if y > best {
			best = y
		}
	}
	return best
}

func sampleYearPages(pages []string) []string {
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
	return samples
}

func parseYear(s string, currentYear int) int {
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > currentYear {
		return 0
	}
	return y
}

// AffiliationLines collects every line containing a university, faculty or
// department keyword, verbatim and without deduplication.
func AffiliationLines(text string) []string {
	var affiliations []string
	for _, line := range strings.Split(text, "\n") {
		if containsAny(strings.ToLower(line), lex.AffiliationKeywords) {
			affiliations = append(affiliations, strings.TrimSpace(line))
		}
	}
	return affiliations
}

// University extracts the university name. On a line carrying both a
// university and a department keyword, the line is split on commas and
// semicolons and the fragment nearest the end containing a university
// keyword wins.
func University(text string) string {
	for _, line := range strings.Split(text, "\n") {
		l := strings.ToLower(line)
		if !containsAny(l, lex.UniversityKeywords) {
			continue
		}
		if containsAny(l, lex.DepartmentKeywords) {
			parts := splitFragments(line)
			for i := len(parts) - 1; i >= 0; i-- {
				if containsAny(strings.ToLower(parts[i]), lex.UniversityKeywords) {
					return parts[i]
				}
			}
		}
		return strings.Trim(line, fieldTrimCutset+"\t")
	}
	if m := universityFallbackRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1] + " " + m[2])
	}
	return ""
}

// Department extracts the department/faculty name. On a line also carrying a
// university keyword, the fragment nearest the start containing a department
// keyword wins.
func Department(text string) string {
	for _, line := range strings.Split(text, "\n") {
		l := strings.ToLower(line)
		if !containsAny(l, lex.DepartmentKeywords) {
			continue
		}
		if containsAny(l, lex.UniversityKeywords) {
			for _, part := range splitFragments(line) {
				if containsAny(strings.ToLower(part), lex.DepartmentKeywords) {
					return part
				}
			}
		}
		return strings.Trim(line, fieldTrimCutset+"\t")
	}
	if m := departmentFallbackRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1] + " " + m[2])
	}
	return ""
}

// Publisher locates a line containing a publisher keyword (8-120 chars),
// takes up to ten tokens after the keyword, and accepts the result only when
// it starts with a capital letter; otherwise the whole stripped line is
// returned. Final fallback is a standalone pattern match.
func Publisher(text string) string {
	for _, line := range strings.Split(text, "\n") {
		l := strings.ToLower(line)
		kw, ok := firstContained(l, lex.PublisherKeywords)
		if !ok {
			continue
		}
		stripped := strings.TrimSpace(line)
		if len(stripped) <= 8 || len(stripped) >= 120 {
			continue
		}
		if org := afterKeyword(line, kw, 10); org != "" && firstRuneUpper(org) {
			return org
		}
		return strings.Trim(stripped, fieldTrimCutset)
	}
	if m := publisherFallbackRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	return ""
}

// Advisor locates a line containing an advisor/supervisor keyword (8-100
// chars), takes up to five tokens after the keyword, and accepts the result
// only when every alphabetic token starts with a capital letter; otherwise
// the whole stripped line is returned. Final fallback is a standalone
// pattern match.
func Advisor(text string) string {
	for _, line := range strings.Split(text, "\n") {
		l := strings.ToLower(line)
		kw, ok := firstContained(l, lex.AdvisorKeywords)
		if !ok {
			continue
		}
		stripped := strings.TrimSpace(line)
		if len(stripped) <= 8 || len(stripped) >= 100 {
			continue
		}
		if name := afterKeyword(line, kw, 5); name != "" && alphabeticTokensCapitalized(name) {
			return name
		}
		return strings.Trim(stripped, fieldTrimCutset)
	}
	if m := advisorFallbackRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	return ""
}

// PageRange extracts a page number or page range.
func PageRange(text string) string {
	for _, re := range pagesRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// Subject extracts the subject or field of study.
func Subject(text string) string {
	for _, re := range subjectRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if !containsAny(strings.ToLower(line), lex.SubjectKeywords) {
			continue
		}
		stripped := strings.TrimSpace(line)
		if len(stripped) > 8 && len(stripped) < 200 {
			return stripped
		}
	}
	return ""
}

// DocumentType classifies the document from keyword presence, in a fixed
// rule order; the default is "paper".
func DocumentType(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range lex.DocumentTypes {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label
			}
		}
	}
	return "paper"
}

// ISSN extracts an ISSN, preferring a tagged match over a bare pattern.
func ISSN(text string) string {
	if m := issnRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	if m := issnBareRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

// ISBN extracts an ISBN-13, preferring a tagged match over a bare pattern.
func ISBN(text string) string {
	if m := isbnRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(strings.ReplaceAll(m[1], " ", ""))
	}
	if m := isbnBareRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(strings.ReplaceAll(m[1], " ", ""))
	}
	return ""
}

// DOI extracts a DOI, preferring a tagged match over a bare pattern.
func DOI(text string) string {
	if m := doiRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := doiBareRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Journal extracts the journal or proceedings name from the first and last
// twenty lines, falling back to a standalone pattern match.
func Journal(text string) string {
	lines := strings.Split(text, "\n")
	scan := lines
	if len(lines) > 40 {
		scan = append(append([]string(nil), lines[:20]...), lines[len(lines)-20:]...)
	}
	for _, line := range scan {
		if !containsAny(strings.ToLower(line), lex.JournalKeywords) {
			continue
		}
		stripped := strings.TrimSpace(line)
		if len(stripped) > 6 && len(stripped) < 120 {
			return strings.Trim(stripped, fieldTrimCutset)
		}
	}
	if m := journalFallbackRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1] + " " + m[2])
	}
	return ""
}

// Volume extracts the volume number.
func Volume(text string) string {
	if m := volumeRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Issue extracts the issue number.
func Issue(text string) string {
	if m := issueRe.FindStringSubmatch(text); m != nil {
		return m[2]
	}
	return ""
}

// Emails collects email addresses found anywhere in the text.
func Emails(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// afterKeyword returns up to maxTokens tokens following keyword in line,
// stripped of leading separators and trailing punctuation.
func afterKeyword(line, keyword string, maxTokens int) string {
	idx := strings.Index(strings.ToLower(line), keyword)
	if idx < 0 {
		return ""
	}
	after := strings.TrimLeft(line[idx+len(keyword):], ":.- \\")
	tokens := strings.Fields(after)
	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	return strings.Trim(strings.Join(tokens, " "), fieldTrimCutset)
}

// splitFragments splits a line on commas and semicolons, trimming each part.
func splitFragments(line string) []string {
	parts := regexp.MustCompile(`[,;]`).Split(line, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, fieldTrimCutset); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isUpperLine reports whether every cased rune is upper case and at least
// one cased rune exists.
func isUpperLine(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// firstRuneUpper reports whether the first rune is upper case.
func firstRuneUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// capitalizedWords counts space-separated words starting with a capital.
func capitalizedWords(s string) int {
	n := 0
	for _, w := range strings.Fields(s) {
		if firstRuneUpper(w) {
			n++
		}
	}
	return n
}

// allWordsCapitalized reports whether every word starts with a capital.
func allWordsCapitalized(words []string) bool {
	for _, w := range words {
		if !firstRuneUpper(w) {
			return false
		}
	}
	return true
}

func alphabeticTokensCapitalized(s string) bool {
	for _, w := range strings.Fields(s) {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
