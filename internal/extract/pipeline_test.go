package extract

import (
	"context"
	"testing"

	"pdfmeta/internal/langid"
	"pdfmeta/internal/ner"
	"pdfmeta/internal/pdftext"
)

func TestPipelineExtractIndonesianDocument(t *testing.T) {
	page1 := "ONTOLOGY DRIVEN DOCUMENT RETRIEVAL\n" +
		"Budi Santoso, Siti Rahma\n" +
		"Fakultas Ilmu Komputer, Universitas Indonesia\n" +
		"Abstrak: Penelitian ini membahas ekstraksi metadata dari dokumen akademik secara otomatis.\n" +
		"Kata kunci: ontologi, metadata, temu kembali"
	page2 := "Diterbitkan 2020\nDaftar pustaka"
	doc := pdftext.NewDocument([]string{page1, page2})

	model := &stubModel{entities: []ner.Entity{
		{Text: "Budi Santoso", Label: ner.Person},
		{Text: "Siti Rahma", Label: ner.Person},
		{Text: "Fakultas Ilmu Komputer", Label: ner.Organization},
		{Text: "Universitas Indonesia", Label: ner.Organization},
	}}
	registry := &ner.Registry{Indonesian: model}

	pipeline := NewPipeline(langid.NewDetector(nil), registry)
	result, err := pipeline.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("Extract() failed: %s", result.Message)
	}

	m := result.Data
	if m.Title != "ONTOLOGY DRIVEN DOCUMENT RETRIEVAL" {
		t.Errorf("Title = %q", m.Title)
	}
	if len(m.Authors) != 2 || m.Authors[0] != "Budi Santoso" || m.Authors[1] != "Siti Rahma" {
		t.Errorf("Authors = %v, want the two recognized names", m.Authors)
	}
	if m.Abstract != "Penelitian ini membahas ekstraksi metadata dari dokumen akademik secara otomatis." {
		t.Errorf("Abstract = %q", m.Abstract)
	}
	if len(m.Keywords) != 3 || m.Keywords[0] != "ontologi" {
		t.Errorf("Keywords = %v", m.Keywords)
	}
	if m.Year != 2020 {
		t.Errorf("Year = %d, want 2020", m.Year)
	}
	if m.Language != string(langid.Indonesian) {
		t.Errorf("Language = %q, want %q", m.Language, langid.Indonesian)
	}
	if m.University != "Universitas Indonesia" {
		t.Errorf("University = %q", m.University)
	}
	if m.Department != "Fakultas Ilmu Komputer" {
		t.Errorf("Department = %q", m.Department)
	}
	if m.DocumentType != "paper" {
		t.Errorf("DocumentType = %q, want default", m.DocumentType)
	}
}

func TestPipelineExtractUnsupportedLanguage(t *testing.T) {
	doc := pdftext.NewDocument([]string{"lorem ipsum dolor sit amet consectetur adipiscing elit"})

	pipeline := NewPipeline(langid.NewDetector(nil), nil)
	result, err := pipeline.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if result.Success {
		t.Fatal("Extract() succeeded for an unsupported language")
	}
	if result.Message != UnsupportedLanguageMessage {
		t.Errorf("Message = %q, want %q", result.Message, UnsupportedLanguageMessage)
	}
	if result.Data.Language != string(langid.Unknown) {
		t.Errorf("Language = %q, want %q", result.Data.Language, langid.Unknown)
	}
	if result.Data.Title != "" {
		t.Errorf("Title = %q, want empty record after the language gate", result.Data.Title)
	}
}

func TestPipelineNEROverrideReplacesHeuristicAuthors(t *testing.T) {
	// The heuristic author pass picks up the affiliation line fragments; a
	// non-empty recognized author list must replace them outright.
	page := "A COMPARISON OF GRAPH STORES\n" +
		"Alice Wong, Bob Tan\n" +
		"Fakultas Ilmu Komputer, Universitas Indonesia\n" +
		"Abstract: This research compares graph storage engines under load.\n" +
		"Keywords: graphs, storage, benchmark"
	doc := pdftext.NewDocument([]string{page})

	model := &stubModel{entities: []ner.Entity{
		{Text: "Alice Wong", Label: ner.Person},
		{Text: "Bob Tan", Label: ner.Person},
	}}
	registry := &ner.Registry{English: model, Indonesian: model}

	pipeline := NewPipeline(langid.NewDetector(nil), registry)
	result, err := pipeline.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("Extract() failed: %s", result.Message)
	}

	authors := result.Data.Authors
	if len(authors) != 2 || authors[0] != "Alice Wong" || authors[1] != "Bob Tan" {
		t.Errorf("Authors = %v, want exactly the recognized names", authors)
	}
}

func TestPipelineHeuristicsOnlyWithoutCapabilities(t *testing.T) {
	page := "A COMPARISON OF GRAPH STORES\n" +
		"Alice Wong, Bob Tan\n" +
		"Abstract: This research compares graph storage engines under load.\n" +
		"Keywords: graphs, storage, benchmark"
	doc := pdftext.NewDocument([]string{page})

	pipeline := NewPipeline(langid.NewDetector(nil), nil)
	result, err := pipeline.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("Extract() failed: %s", result.Message)
	}

	authors := result.Data.Authors
	if len(authors) != 2 || authors[0] != "Alice Wong" || authors[1] != "Bob Tan" {
		t.Errorf("Authors = %v, want heuristic names", authors)
	}
}
