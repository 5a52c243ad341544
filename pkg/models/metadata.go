package models

// Metadata is the bibliographic record extracted from one academic document.
// Every string field holds trimmed content or is empty, meaning "unknown".
type Metadata struct {
	// Core bibliographic fields
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`  // discovery order, deduplicated case-insensitively
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"` // ordered, first occurrence kept

	// Publication context
	Journal   string `json:"journal"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"` // 0 when no year could be determined
	Volume    string `json:"volume"`
	Issue     string `json:"issue"`
	Pages     string `json:"pages"`

	// Identifiers
	DOI  string `json:"doi"`
	ISBN string `json:"isbn"`
	ISSN string `json:"issn"`

	// Classification
	Language     string `json:"language"`
	Subject      string `json:"subject"`
	DocumentType string `json:"document_type"` // thesis, skripsi, journal, paper, ...

	// Thesis/skripsi specific
	University string `json:"university"`
	Department string `json:"department"`
	Advisor    string `json:"advisor"`

	// Confidence is an aggregate extraction confidence (0.0-1.0), 0 when unscored.
	Confidence float32 `json:"confidence"`
}

// NewMetadata returns a record with the fixed defaults of the extraction
// pipeline: empty fields, document type "paper", English language.
func NewMetadata() *Metadata {
	return &Metadata{
		Authors:      []string{},
		Keywords:     []string{},
		Language:     "English",
		DocumentType: "paper",
	}
}

// ExtractionResult is the envelope returned to callers. Success is false when
// the pipeline short-circuited (unsupported language) or failed unexpectedly;
// Data is then an empty record and Message explains why.
type ExtractionResult struct {
	Success bool      `json:"success"`
	Data    *Metadata `json:"data"`
	Message string    `json:"message"`
}
