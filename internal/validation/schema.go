package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Locations of the validated input, used in [Error.Location].
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
)

// Schema is a compiled JSON Schema. It is safe for concurrent use.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile compiles a JSON Schema document. name identifies the schema in
// compilation errors and must be unique per compiler call; any string works.
func Compile(name, document string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	url := name
	if !strings.Contains(url, ".json") {
		url += ".json"
	}

	if err := compiler.AddResource(url, strings.NewReader(document)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is like [Compile] but panics on error. It is meant for
// schemas declared as package-level literals.
func MustCompile(name, document string) *Schema {
	s, err := Compile(name, document)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name the schema was compiled with.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks an already decoded JSON value (maps, slices, strings,
// numbers, bools, nil).
func (s *Schema) Validate(location string, v any) error {
	if err := s.compiled.Validate(v); err != nil {
		return toError(location, err)
	}
	return nil
}

// ValidateJSON decodes data and validates it. Malformed JSON, including
// trailing data after the first value, is reported as a validation [*Error]
// as well.
func (s *Schema) ValidateJSON(location string, data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return &Error{Location: location, Message: msgMalformedJSON}
	}
	return s.Validate(location, v)
}

// decodeJSON decodes a single JSON value keeping numbers as json.Number, the
// representation jsonschema expects.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return v, nil
}

// ValidateStrings validates a flat string map such as a query string or the
// path parameters of a route. Every value stays a JSON string.
func (s *Schema) ValidateStrings(location string, values map[string]string) error {
	obj := make(map[string]any, len(values))
	for k, v := range values {
		obj[k] = v
	}
	return s.Validate(location, obj)
}

// toError converts a jsonschema failure into an *Error describing its
// first leaf cause.
func toError(location string, err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &Error{Location: location, Message: err.Error()}
	}

	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}

	return &Error{
		Location: location,
		Field:    fieldFromPointer(verr.InstanceLocation),
		Message:  verr.Message,
	}
}

// fieldFromPointer converts a JSON Pointer such as "/items/0/name" to
// dot notation ("items.0.name").
func fieldFromPointer(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	return strings.ReplaceAll(pointer, "/", ".")
}
