package jsonschema

import (
	goshape "github.com/reoring/goshape"
)

// Export projects s into an object Schema. Filters have no JSON Schema form
// and are dropped; functions export as an empty schema with format "function".
func Export(s goshape.Schema) *Schema {
	out := &Schema{Type: "object"}
	for _, f := range s {
		if out.Properties == nil {
			out.Properties = make(map[string]*Schema, len(s))
		}
		out.Properties[f.Name] = exportVariant(f.Type)
		if f.Type != nil && f.Type.IsRequired() {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out
}

func exportVariant(v goshape.Variant) *Schema {
	switch t := v.(type) {
	case goshape.String:
		return &Schema{Type: "string", MinLength: t.Min, MaxLength: t.Max, Pattern: patternSource(t.Match)}
	case goshape.Int:
		return &Schema{Type: "integer", Minimum: t.Min, Maximum: t.Max}
	case goshape.Float:
		return &Schema{Type: "number", Minimum: t.Min, Maximum: t.Max}
	case goshape.Bool:
		return &Schema{Type: "boolean"}
	case goshape.Func:
		return &Schema{Format: "function"}
	case goshape.Array:
		return &Schema{Type: "array", MinItems: t.Min, MaxItems: t.Max, Items: exportVariant(t.Element)}
	case goshape.Object:
		return Export(t.Records)
	default:
		// Unknown, or a malformed field
		return &Schema{}
	}
}

func patternSource(m goshape.Matcher) string {
	if m == nil {
		return ""
	}
	if s, ok := m.(interface{ Source() string }); ok {
		return s.Source()
	}
	return m.String()
}
