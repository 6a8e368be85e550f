// Package jsonschema converts between goshape schemas and the JSON Schema
// subset used by OpenAPI v3 and Kubernetes structural schemas.
package jsonschema

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Schema is a minimal JSON Schema representation. Fields outside this subset
// are ignored on import and never produced on export.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Nullable    bool   `json:"nullable,omitempty"`
	Ref         string `json:"$ref,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Kubernetes extensions
	// x-kubernetes-preserve-unknown-fields is not decoded: goshape never
	// rejects or prunes keys outside Properties.
	IntOrString bool             `json:"x-kubernetes-int-or-string,omitempty"`
	Validations []ValidationRule `json:"x-kubernetes-validations,omitempty"`
}

// ValidationRule is a CEL rule attached with x-kubernetes-validations.
type ValidationRule struct {
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

// FromMap decodes an already parsed JSON or YAML document into a Schema.
func FromMap(m map[string]any) (*Schema, error) {
	var s Schema
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return nil, fmt.Errorf("jsonschema: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("jsonschema: decode: %w", err)
	}
	return &s, nil
}
