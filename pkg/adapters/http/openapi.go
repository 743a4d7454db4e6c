package http

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// BodyValidator checks decoded JSON bodies against component schemas.
type BodyValidator struct {
	doc *openapi3.T
}

// NewBodyValidator wraps a loaded document.
func NewBodyValidator(doc *openapi3.T) *BodyValidator {
	return &BodyValidator{doc: doc}
}

// Validate checks value, as produced by json.Unmarshal into an any, against
// the named component schema.
func (v *BodyValidator) Validate(schema string, value any) error {
	ref, ok := v.doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("unknown schema %q", schema)
	}
	return ref.Value.VisitJSON(value)
}
