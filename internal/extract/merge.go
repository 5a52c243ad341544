package extract

import "strings"

// MergeAuthors reconciles heuristic and NER author candidates: heuristic
// names first, then NER names, filtered. Empty and single-character entries,
// names containing digits and all-uppercase names are dropped; duplicates are
// removed case-insensitively, first occurrence kept.
func MergeAuthors(heuristic, nerAuthors []string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, name := range append(append([]string(nil), heuristic...), nerAuthors...) {
		name = strings.TrimSpace(name)
		if name == "" || len(name) <= 1 {
			continue
		}
		if strings.ContainsAny(name, "0123456789") {
			continue
		}
		if isUpperLine(name) {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, name)
	}
	return merged
}

// MergeUniversities prefers the NER result when it contains a
// university/institute keyword, then the heuristic result, then the NER
// result as last resort (possibly empty).
func MergeUniversities(heuristic, nerUniversity string) string {
	if nerUniversity != "" && containsAny(strings.ToLower(nerUniversity), lex.UniversityKeywords) {
		return nerUniversity
	}
	if heuristic != "" {
		return heuristic
	}
	return nerUniversity
}
