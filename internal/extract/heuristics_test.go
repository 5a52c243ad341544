package extract

import (
	"reflect"
	"testing"
)

func TestTitleUppercaseRun(t *testing.T) {
	text := "ONTOLOGY DRIVEN DOCUMENT RETRIEVAL\nFOR ACADEMIC REPOSITORIES\nJohn Smith, Jane Doe\n\nAbstract: irrelevant here"

	got := Title(text)
	want := "ONTOLOGY DRIVEN DOCUMENT RETRIEVAL FOR ACADEMIC REPOSITORIES"
	if got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestTitleStopsAtMixedCaseLine(t *testing.T) {
	text := "A STUDY OF DISTRIBUTED CACHES\nJohn Smith, Jane Doe\nSomewhere Else Entirely Now"

	got := Title(text)
	want := "A STUDY OF DISTRIBUTED CACHES"
	if got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestTitleFallbackFirstLongLine(t *testing.T) {
	text := "a study of lowercase titling in metadata extraction\nmore lowercase text follows here"

	got := Title(text)
	want := "a study of lowercase titling in metadata extraction"
	if got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestTitleEmptyText(t *testing.T) {
	if got := Title(""); got != "" {
		t.Errorf("Title(\"\") = %q, want empty", got)
	}
}

func TestAuthorsBetweenTitleAndAbstract(t *testing.T) {
	text := "A COMPARISON OF GRAPH STORES\nJohn Smith, Jane Doe\nAbstract: comparing storage engines at scale"

	got := Authors(text)
	want := []string{"John Smith", "Jane Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Authors() = %v, want %v", got, want)
	}
}

func TestAuthorsStripSuperscripts(t *testing.T) {
	text := "A COMPARISON OF GRAPH STORES\nAlice Wong1), Bob Tan2)\nAbstract: comparing storage engines at scale"

	got := Authors(text)
	want := []string{"Alice Wong", "Bob Tan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Authors() = %v, want %v", got, want)
	}
}

func TestAuthorsRejectLowercaseFragments(t *testing.T) {
	text := "A COMPARISON OF GRAPH STORES\nwritten by nobody in particular\nAbstract: comparing storage engines at scale"

	if got := Authors(text); len(got) != 0 {
		t.Errorf("Authors() = %v, want none", got)
	}
}

func TestAbstractStopsAtInlineKeywords(t *testing.T) {
	text := "Abstract: Metadata extraction from scholarly documents remains a challenging problem. Keywords: ontology, retrieval, indexing"

	got := Abstract(text)
	want := "Metadata extraction from scholarly documents remains a challenging problem."
	if got != want {
		t.Errorf("Abstract() = %q, want %q", got, want)
	}
}

func TestAbstractStopsAtSectionHeader(t *testing.T) {
	text := "Abstract\nThis work presents a pipeline for extracting bibliographic records.\nIntroduction\nThe rest of the paper."

	got := Abstract(text)
	want := "This work presents a pipeline for extracting bibliographic records."
	if got != want {
		t.Errorf("Abstract() = %q, want %q", got, want)
	}
}

func TestKeywordsFirstPatternWins(t *testing.T) {
	text := "Keywords: ontology, retrieval, indexing\nKata kunci: ontologi, temu kembali"

	got := Keywords(text)
	want := []string{"ontology", "retrieval", "indexing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
}

func TestKeywordsKataKunci(t *testing.T) {
	text := "Kata kunci: ontologi, metadata, temu kembali"

	got := Keywords(text)
	want := []string{"ontologi", "metadata", "temu kembali"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
}

func TestYearContextShortCircuits(t *testing.T) {
	text := "Published 2020\nThe workshop was first announced in 2023."

	if got := Year(text, nil); got != 2020 {
		t.Errorf("Year() = %d, want 2020", got)
	}
}

func TestYearMostRecentCandidateWins(t *testing.T) {
	text := "The series started in 1998 and the final volume appeared in 2015."

	if got := Year(text, nil); got != 2015 {
		t.Errorf("Year() = %d, want 2015", got)
	}
}

func TestYearRejectsOutOfRange(t *testing.T) {
	text := "scheduled for 2099, originally drafted in 1850"

	if got := Year(text, nil); got != 0 {
		t.Errorf("Year() = %d, want 0", got)
	}
}

func TestYearIdempotent(t *testing.T) {
	text := "Copyright 2019\nsome body text with 2017 and 2018"
	pages := []string{"page one 2018", "page two 2017"}

	first := Year(text, pages)
	second := Year(text, pages)
	if first != second {
		t.Errorf("Year() not idempotent: %d then %d", first, second)
	}
}

func TestUniversityFragmentNearestEnd(t *testing.T) {
	text := "Fakultas Ilmu Komputer, Universitas Indonesia\nmore text"

	if got := University(text); got != "Universitas Indonesia" {
		t.Errorf("University() = %q, want %q", got, "Universitas Indonesia")
	}
}

func TestDepartmentFragmentNearestStart(t *testing.T) {
	text := "Fakultas Ilmu Komputer, Universitas Indonesia\nmore text"

	if got := Department(text); got != "Fakultas Ilmu Komputer" {
		t.Errorf("Department() = %q, want %q", got, "Fakultas Ilmu Komputer")
	}
}

func TestAffiliationLines(t *testing.T) {
	text := "Fakultas Teknik\nplain line\nUniversitas Gadjah Mada"

	got := AffiliationLines(text)
	want := []string{"Fakultas Teknik", "Universitas Gadjah Mada"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AffiliationLines() = %v, want %v", got, want)
	}
}

func TestAdvisorAfterKeyword(t *testing.T) {
	text := "some preamble\nPembimbing: Dr. Budi Santoso\nmore text"

	if got := Advisor(text); got != "Dr. Budi Santoso" {
		t.Errorf("Advisor() = %q, want %q", got, "Dr. Budi Santoso")
	}
}

func TestPublisherAfterKeyword(t *testing.T) {
	text := "Published by Springer Nature\nmore text"

	if got := Publisher(text); got != "Springer Nature" {
		t.Errorf("Publisher() = %q, want %q", got, "Springer Nature")
	}
}

func TestDocumentTypeRules(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Skripsi ini membahas sistem temu kembali", "skripsi"},
		{"A thesis submitted in partial fulfillment", "thesis"},
		{"An essay about nothing in particular", "paper"},
	}
	for _, tt := range tests {
		if got := DocumentType(tt.text); got != tt.want {
			t.Errorf("DocumentType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	text := "ISSN: 2089-3272\nISBN 978-3-16-148410-0\nDOI: 10.18280/isi.260402\nVol. 26, No. 4, pp. 123-130"

	if got := ISSN(text); got != "2089-3272" {
		t.Errorf("ISSN() = %q", got)
	}
	if got := ISBN(text); got != "978-3-16-148410-0" {
		t.Errorf("ISBN() = %q", got)
	}
	if got := DOI(text); got != "10.18280/isi.260402" {
		t.Errorf("DOI() = %q", got)
	}
	if got := Volume(text); got != "26" {
		t.Errorf("Volume() = %q", got)
	}
	if got := Issue(text); got != "4" {
		t.Errorf("Issue() = %q", got)
	}
	if got := PageRange(text); got != "123-130" {
		t.Errorf("PageRange() = %q", got)
	}
}

func TestISSNLowercaseXNormalized(t *testing.T) {
	if got := ISSN("issn 2460-123x"); got != "2460-123X" {
		t.Errorf("ISSN() = %q, want %q", got, "2460-123X")
	}
}

func TestJournalLine(t *testing.T) {
	text := "Jurnal Ilmu Komputer dan Informasi\nONTOLOGY DRIVEN RETRIEVAL\nbody"

	if got := Journal(text); got != "Jurnal Ilmu Komputer dan Informasi" {
		t.Errorf("Journal() = %q", got)
	}
}

func TestEmails(t *testing.T) {
	text := "contact alice@example.com or bob@cs.ui.ac.id for details"

	got := Emails(text)
	want := []string{"alice@example.com", "bob@cs.ui.ac.id"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Emails() = %v, want %v", got, want)
	}
}
