package ner

import (
	"context"
	"fmt"
	"os"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"google.golang.org/api/option"
)

// GoogleLanguageModel implements Model using the Google Cloud Natural
// Language API entity analysis endpoint.
type GoogleLanguageModel struct {
	client       *language.Client
	languageCode string // document language sent with each request, e.g. "en" or "id"
}

// NewGoogleLanguageModel creates an entity recognition model for one language
// family with credentials from environment. It expects either
// GOOGLE_APPLICATION_CREDENTIALS path or GOOGLE_CREDENTIALS JSON in env.
func NewGoogleLanguageModel(ctx context.Context, languageCode string) (Model, error) {
	const op = "NewGoogleLanguageModel"

	var client *language.Client
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = language.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, WrapNERError(op, err, "failed to create client with GOOGLE_CREDENTIALS")
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = language.NewClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, WrapNERError(op, err, "failed to create client with GOOGLE_APPLICATION_CREDENTIALS")
		}
	} else {
		client, err = language.NewClient(ctx)
		if err != nil {
			return nil, WrapNERError(op, ErrMissingCredentials, "no credentials found in environment")
		}
	}

	return &GoogleLanguageModel{client: client, languageCode: languageCode}, nil
}

// NewGoogleLanguageModelWithClient creates a model with an explicit client (for testing).
func NewGoogleLanguageModelWithClient(client *language.Client, languageCode string) Model {
	return &GoogleLanguageModel{client: client, languageCode: languageCode}
}

// NewRegistry builds the per-language registry. A variant that fails to load
// is left nil and logged by the caller; extraction then degrades to
// heuristics for that language.
func NewRegistry(ctx context.Context, english, indonesian bool) (*Registry, error) {
	reg := &Registry{}
	var firstErr error

	if english {
		m, err := NewGoogleLanguageModel(ctx, "en")
		if err != nil {
			firstErr = err
		} else {
			reg.English = m
		}
	}
	if indonesian {
		m, err := NewGoogleLanguageModel(ctx, "id")
		if err != nil && firstErr == nil {
			firstErr = err
		} else if err == nil {
			reg.Indonesian = m
		}
	}

	return reg, firstErr
}

// Entities returns the entities recognized in text, in document order.
func (g *GoogleLanguageModel) Entities(ctx context.Context, text string) ([]Entity, error) {
	const op = "Entities"

	if text == "" {
		return nil, nil
	}

	resp, err := g.client.AnalyzeEntities(ctx, &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source:   &languagepb.Document_Content{Content: text},
			Type:     languagepb.Document_PLAIN_TEXT,
			Language: g.languageCode,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	})
	if err != nil {
		return nil, WrapNERError(op, ErrAnalysisFailed, fmt.Sprintf("Natural Language API call failed: %v", err))
	}

	entities := make([]Entity, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		switch e.Type {
		case languagepb.Entity_PERSON:
			entities = append(entities, Entity{Text: e.Name, Label: Person})
		case languagepb.Entity_ORGANIZATION:
			entities = append(entities, Entity{Text: e.Name, Label: Organization})
		}
	}

	return entities, nil
}

// Close closes the underlying Natural Language client.
func (g *GoogleLanguageModel) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
