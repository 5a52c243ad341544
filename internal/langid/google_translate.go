package langid

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/translate"
	"google.golang.org/api/option"
)

// ErrMissingCredentials is returned when Google Cloud credentials are not configured.
var ErrMissingCredentials = errors.New("missing Google Cloud credentials: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS environment variable")

// GoogleTranslateIdentifier implements Identifier using the Google Cloud
// Translation API language detection endpoint.
type GoogleTranslateIdentifier struct {
	client *translate.Client
}

// NewGoogleTranslateIdentifier creates an identifier with credentials from
// environment. It expects either GOOGLE_APPLICATION_CREDENTIALS path or
// GOOGLE_CREDENTIALS JSON in env.
func NewGoogleTranslateIdentifier(ctx context.Context) (Identifier, error) {
	var client *translate.Client
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = translate.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, fmt.Errorf("langid: failed to create client with GOOGLE_CREDENTIALS: %w", err)
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = translate.NewClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, fmt.Errorf("langid: failed to create client with GOOGLE_APPLICATION_CREDENTIALS: %w", err)
		}
	} else {
		client, err = translate.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("langid: %w", ErrMissingCredentials)
		}
	}

	return &GoogleTranslateIdentifier{client: client}, nil
}

// NewGoogleTranslateIdentifierWithClient creates an identifier with an
// explicit client (for testing).
func NewGoogleTranslateIdentifierWithClient(client *translate.Client) Identifier {
	return &GoogleTranslateIdentifier{client: client}
}

// Identify returns the ISO 639-1 base code of the dominant language in sample.
// Regional variants collapse to their base language ("en-US" -> "en").
func (g *GoogleTranslateIdentifier) Identify(ctx context.Context, sample string) (string, error) {
	if sample == "" {
		return "", nil
	}

	detections, err := g.client.DetectLanguage(ctx, []string{sample})
	if err != nil {
		return "", fmt.Errorf("langid: detect language: %w", err)
	}
	if len(detections) == 0 || len(detections[0]) == 0 {
		return "", nil
	}

	base, _ := detections[0][0].Language.Base()
	return base.String(), nil
}

// Close closes the underlying Translation client.
func (g *GoogleTranslateIdentifier) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
