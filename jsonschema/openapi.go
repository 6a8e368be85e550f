package jsonschema

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI loads an OpenAPI 3 document (JSON or YAML) and returns the
// component schema called name, with local references resolved. Recursive
// references are left as $ref.
func FromOpenAPI(data []byte, name string) (*Schema, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: load openapi: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("jsonschema: component schema %q not found", name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("jsonschema: component schema %q not found", name)
	}
	return fromOpenAPI(ref, map[*openapi3.Schema]bool{}), nil
}

func fromOpenAPI(ref *openapi3.SchemaRef, active map[*openapi3.Schema]bool) *Schema {
	if ref == nil {
		return nil
	}
	in := ref.Value
	if in == nil || active[in] {
		r := ref.Ref
		if r == "" {
			r = "#recursive"
		}
		return &Schema{Ref: r}
	}
	active[in] = true
	defer delete(active, in)

	out := &Schema{
		Format:      in.Format,
		Description: in.Description,
		Default:     in.Default,
		Enum:        in.Enum,
		Nullable:    in.Nullable,
		Pattern:     in.Pattern,
		Minimum:     in.Min,
		Maximum:     in.Max,
		Required:    in.Required,
		Items:       fromOpenAPI(in.Items, active),
	}
	if in.Type != nil {
		// a type list such as [string, integer] stays untyped
		if ts := in.Type.Slice(); len(ts) == 1 {
			out.Type = ts[0]
		}
	}
	if in.MinLength > 0 {
		out.MinLength = intPtr(in.MinLength)
	}
	if in.MaxLength != nil {
		out.MaxLength = intPtr(*in.MaxLength)
	}
	if in.MinItems > 0 {
		out.MinItems = intPtr(in.MinItems)
	}
	if in.MaxItems != nil {
		out.MaxItems = intPtr(*in.MaxItems)
	}
	if len(in.Properties) > 0 {
		out.Properties = make(map[string]*Schema, len(in.Properties))
		for name, p := range in.Properties {
			out.Properties[name] = fromOpenAPI(p, active)
		}
	}
	if in.AdditionalProperties.Has != nil {
		out.AdditionalProperties = *in.AdditionalProperties.Has
	}
	for _, s := range in.OneOf {
		out.OneOf = append(out.OneOf, fromOpenAPI(s, active))
	}
	for _, s := range in.AnyOf {
		out.AnyOf = append(out.AnyOf, fromOpenAPI(s, active))
	}

	out.IntOrString, _ = in.Extensions["x-kubernetes-int-or-string"].(bool)
	if rules, ok := in.Extensions["x-kubernetes-validations"].([]any); ok {
		for _, r := range rules {
			m, _ := r.(map[string]any)
			rule, _ := m["rule"].(string)
			if rule == "" {
				continue
			}
			msg, _ := m["message"].(string)
			out.Validations = append(out.Validations, ValidationRule{Rule: rule, Message: msg})
		}
	}
	return out
}

func intPtr(n uint64) *int {
	i := int(n)
	return &i
}
