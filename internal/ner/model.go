// Package ner provides named-entity recognition as an injectable capability.
//
// The extraction pipeline consumes entity labels (person, organization) to
// find author, advisor and affiliation names; it never trains or hosts a
// model itself. One model variant exists per supported language family and a
// missing model degrades the dependent extractors to empty output or their
// heuristic fallback rather than failing the request.
package ner

import "context"

// Label classifies a recognized entity.
type Label string

const (
	Person       Label = "PERSON"
	Organization Label = "ORGANIZATION"
)

// Entity is one labeled span of text.
type Entity struct {
	Text  string
	Label Label
}

// Model defines the interface for entity recognition backends.
type Model interface {
	// Entities returns the entities recognized in text, in document order.
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// Registry holds the per-language model variants, loaded once at process
// start and shared read-only. Either field may be nil when the capability
// is unavailable.
type Registry struct {
	English    Model // English-language model
	Indonesian Model // Indonesian/multilingual model
}

// ForLanguage selects the model variant for a detected document language.
// Any verdict other than plain English selects the multilingual variant,
// matching how bilingual Indonesian documents are tagged. Returns nil when
// the variant is not loaded.
func (r *Registry) ForLanguage(language string) Model {
	if r == nil {
		return nil
	}
	if language == "English" {
		return r.English
	}
	return r.Indonesian
}
