package openapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// Fetch reads the raw document from a local file path or an HTTP(S) URL.
func Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := newLoader(ctx)
	// Try to parse as URL; if it looks like http(s), fetch via URL
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		data, err := openapi3.ReadFromHTTP(http.DefaultClient)(loader, u)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch spec %s: %w", location, err)
		}
		return data, nil
	}
	// Fallback to reading from filesystem path
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec %s: %w", location, err)
	}
	return data, nil
}

// Load fetches and parses a document. This is the only blocking step of a
// generation run.
func Load(ctx context.Context, location string) (*Document, []byte, error) {
	data, err := Fetch(ctx, location)
	if err != nil {
		return nil, nil, err
	}
	doc, err := Parse(data, location)
	if err != nil {
		return nil, nil, err
	}
	return doc, data, nil
}

// Validate checks raw document bytes against the OpenAPI v3 schema rules.
func Validate(ctx context.Context, data []byte) error {
	loader := newLoader(ctx)
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("failed to load spec for validation: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return nil
}

// ValidateDocument fetches and validates an OpenAPI document
func ValidateDocument(ctx context.Context, location string) error {
	data, err := Fetch(ctx, location)
	if err != nil {
		return err
	}
	return Validate(ctx, data)
}

func newLoader(ctx context.Context) *openapi3.Loader {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.Context = ctx
	return loader
}
