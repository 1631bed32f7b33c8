// Package decoder turns raw provider replies into text or structured values.
package decoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	// ErrEmptyResponse is returned when nothing is left after fence stripping
	ErrEmptyResponse = errors.New("empty response")

	// ErrInvalidJSON is returned when the reply does not parse as JSON
	ErrInvalidJSON = errors.New("invalid JSON response")

	// ErrSchemaMismatch is returned when the parsed value violates the expected schema
	ErrSchemaMismatch = errors.New("response does not match schema")
)

const (
	fence     = "```"
	jsonFence = "```json"
)

// SchemaError lists the schema violations of a decoded value
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSchemaMismatch, strings.Join(e.Violations, "; "))
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// Schema is a compiled JSON schema used to check structured replies
type Schema struct {
	compiled *gojsonschema.Schema
}

// NewSchema compiles a JSON schema document
func NewSchema(document string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(document))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustSchema is like NewSchema but panics on an invalid document.
// Intended for package-level schema variables.
func MustSchema(document string) *Schema {
	s, err := NewSchema(document)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks value against the schema
func (s *Schema) Validate(value any) error {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(value))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return &SchemaError{Violations: violations}
}

// DecodeText returns the reply unchanged
func DecodeText(raw string) string {
	return raw
}

// StripFences removes a surrounding markdown code fence, with or without the json tag
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, jsonFence):
		s = s[len(jsonFence):]
	case strings.HasPrefix(s, fence):
		s = s[len(fence):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), fence)
	return strings.TrimSpace(s)
}

// DecodeStructured strips fences, parses the reply as JSON and checks it
// against schema when one is given. A nil schema accepts any JSON value.
func DecodeStructured(raw string, schema *Schema) (any, error) {
	body := StripFences(raw)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	var value any
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if schema != nil {
		if err := schema.Validate(value); err != nil {
			return nil, err
		}
	}

	return value, nil
}
