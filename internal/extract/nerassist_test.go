package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pdfmeta/internal/ner"
)

// stubModel returns a fixed entity list, recording the texts it was asked to
// analyze.
type stubModel struct {
	entities []ner.Entity
	err      error
	inputs   []string
}

func (s *stubModel) Entities(_ context.Context, text string) ([]ner.Entity, error) {
	s.inputs = append(s.inputs, text)
	if s.err != nil {
		return nil, s.err
	}
	return s.entities, nil
}

func TestAuthorsNERFiltersEntities(t *testing.T) {
	model := &stubModel{entities: []ner.Entity{
		{Text: "Budi Santoso", Label: ner.Person},
		{Text: "Plato", Label: ner.Person},                  // single token
		{Text: "Universitas Indonesia", Label: ner.Person},  // denylisted noun
		{Text: "Siti Rahma", Label: ner.Person},
		{Text: "Budi Santoso", Label: ner.Person},           // duplicate
		{Text: "Fakultas Ilmu Komputer", Label: ner.Organization},
	}}

	got := AuthorsNER(context.Background(), model, "some document text")
	want := []string{"Budi Santoso", "Siti Rahma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AuthorsNER() = %v, want %v", got, want)
	}
}

func TestAuthorsNERNilModel(t *testing.T) {
	if got := AuthorsNER(context.Background(), nil, "text"); got != nil {
		t.Errorf("AuthorsNER(nil model) = %v, want nil", got)
	}
}

func TestAuthorsNERModelError(t *testing.T) {
	model := &stubModel{err: errors.New("backend down")}
	if got := AuthorsNER(context.Background(), model, "text"); got != nil {
		t.Errorf("AuthorsNER(failing model) = %v, want nil", got)
	}
}

func TestUniversityNERPrefersKeywordOrganization(t *testing.T) {
	model := &stubModel{entities: []ner.Entity{
		{Text: "Acme Research Lab", Label: ner.Organization},
		{Text: "Universitas Indonesia", Label: ner.Organization},
	}}

	if got := UniversityNER(context.Background(), model, "text"); got != "Universitas Indonesia" {
		t.Errorf("UniversityNER() = %q, want %q", got, "Universitas Indonesia")
	}
}

func TestUniversityNERFirstOrganizationFallback(t *testing.T) {
	model := &stubModel{entities: []ner.Entity{
		{Text: "Budi Santoso", Label: ner.Person},
		{Text: "Acme Research Lab", Label: ner.Organization},
	}}

	if got := UniversityNER(context.Background(), model, "text"); got != "Acme Research Lab" {
		t.Errorf("UniversityNER() = %q, want %q", got, "Acme Research Lab")
	}
}

func TestAdvisorNERWindowsKeywordLines(t *testing.T) {
	model := &stubModel{entities: []ner.Entity{
		{Text: "Dr. Budi Santoso", Label: ner.Person},
	}}
	text := "line before\nPembimbing:\nDr. Budi Santoso\nline after\nline far away"

	got := AdvisorNER(context.Background(), model, text)
	if got != "Dr. Budi Santoso" {
		t.Errorf("AdvisorNER() = %q, want %q", got, "Dr. Budi Santoso")
	}
	if len(model.inputs) != 1 {
		t.Fatalf("model called %d times, want 1", len(model.inputs))
	}
	if want := "Pembimbing:\nDr. Budi Santoso\nline after"; model.inputs[0] != want {
		t.Errorf("recognition window = %q, want %q", model.inputs[0], want)
	}
}

func TestAdvisorNERFallsBackToHeuristic(t *testing.T) {
	text := "some preamble\nPembimbing: Dr. Budi Santoso\nmore text"

	if got := AdvisorNER(context.Background(), nil, text); got != "Dr. Budi Santoso" {
		t.Errorf("AdvisorNER(nil model) = %q, want heuristic result", got)
	}
}

func TestDepartmentNERFirstOrganizationInWindow(t *testing.T) {
	model := &stubModel{entities: []ner.Entity{
		{Text: "Fakultas Ilmu Komputer", Label: ner.Organization},
	}}
	text := "header\nFakultas Ilmu Komputer\nUniversitas Indonesia"

	if got := DepartmentNER(context.Background(), model, text); got != "Fakultas Ilmu Komputer" {
		t.Errorf("DepartmentNER() = %q, want %q", got, "Fakultas Ilmu Komputer")
	}
}
