package jsonschema

import (
	"fmt"
	"math"
	"sort"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/pattern"
	"github.com/reoring/goshape/predicate"
	"github.com/reoring/goshape/value"
)

// Compile turns an object Schema into a goshape.Schema.
//
// Properties are checked in name order, followed by required names that have
// no property definition. Patterns use ECMAScript semantics. enum, format
// "uuid" and x-kubernetes-validations rules become filters on scalars.
// Keywords goshape cannot enforce are reported as warnings.
func Compile(s *Schema) (goshape.Schema, []string, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("jsonschema: nil schema")
	}
	if s.Type != "" && s.Type != "object" {
		return nil, nil, fmt.Errorf("jsonschema: root type %q is not an object", s.Type)
	}
	c := &compiler{}
	out, err := c.object(s, "")
	if err != nil {
		return nil, c.warnings, err
	}
	return out, c.warnings, nil
}

type compiler struct {
	warnings []string
}

func (c *compiler) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *compiler) object(s *Schema, at string) (goshape.Schema, error) {
	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}
	if ap, ok := s.AdditionalProperties.(bool); ok && !ap {
		c.warnf("%s: additionalProperties=false is not enforced", loc(at))
	}
	if len(s.Validations) > 0 {
		c.warnf("%s: x-kubernetes-validations on objects with properties are ignored", loc(at))
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(goshape.Schema, 0, len(names))
	for _, name := range names {
		v, err := c.variant(s.Properties[name], at+"/"+name, required[name])
		if err != nil {
			return nil, err
		}
		out = append(out, goshape.F(name, v))
	}

	var extra []string
	for name := range required {
		if _, ok := s.Properties[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, goshape.F(name, goshape.Unknown{Required: true}))
	}
	return out, nil
}

func (c *compiler) variant(s *Schema, at string, req bool) (goshape.Variant, error) {
	if s == nil {
		return goshape.Unknown{Required: req}, nil
	}
	if s.Ref != "" {
		c.warnf("%s: $ref %q is not resolved; accepting any value", loc(at), s.Ref)
		return goshape.Unknown{Required: req}, nil
	}
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 {
		c.warnf("%s: oneOf/anyOf are not supported; accepting any value", loc(at))
		return goshape.Unknown{Required: req}, nil
	}
	if s.Nullable {
		c.warnf("%s: nullable is not supported; null fails the type check", loc(at))
	}
	if s.IntOrString {
		return goshape.Unknown{Required: req, Filter: goshape.Pred(intOrString)}, nil
	}

	switch s.Type {
	case "string":
		return c.str(s, at, req)
	case "integer":
		f, err := numberFilter(s)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: %s: %w", loc(at), err)
		}
		return goshape.Int{Required: req, Min: s.Minimum, Max: s.Maximum, Filter: f}, nil
	case "number":
		f, err := numberFilter(s)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: %s: %w", loc(at), err)
		}
		return goshape.Float{Required: req, Min: s.Minimum, Max: s.Maximum, Filter: f}, nil
	case "boolean":
		return goshape.Bool{Required: req}, nil
	case "array":
		var elem goshape.Variant = goshape.Unknown{}
		if s.Items != nil {
			e, err := c.variant(s.Items, at+"/items", false)
			if err != nil {
				return nil, err
			}
			elem = e
		}
		return goshape.Array{Required: req, Min: s.MinItems, Max: s.MaxItems, Element: elem}, nil
	case "object", "":
		if len(s.Properties) > 0 || len(s.Required) > 0 {
			rec, err := c.object(s, at)
			if err != nil {
				return nil, err
			}
			return goshape.Object{Required: req, Records: rec}, nil
		}
		filters := make([]goshape.Predicate[value.Value], 0, len(s.Validations)+1)
		if s.Type == "object" {
			filters = append(filters, goshape.Pred(isObject))
		}
		for _, r := range s.Validations {
			p, err := predicate.CEL[value.Value](r.Rule)
			if err != nil {
				return nil, fmt.Errorf("jsonschema: %s: %w", loc(at), err)
			}
			filters = append(filters, p)
		}
		u := goshape.Unknown{Required: req}
		if len(filters) > 0 {
			u.Filter = predicate.All(filters...)
		}
		return u, nil
	default:
		return nil, fmt.Errorf("jsonschema: %s: unsupported type %q", loc(at), s.Type)
	}
}

func (c *compiler) str(s *Schema, at string, req bool) (goshape.Variant, error) {
	v := goshape.String{Required: req, Min: s.MinLength, Max: s.MaxLength}
	if s.Pattern != "" {
		m, err := pattern.ECMAScript(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: %s: pattern: %w", loc(at), err)
		}
		v.Match = m
	}
	var filters []goshape.Predicate[string]
	if len(s.Enum) > 0 {
		allowed := make([]string, 0, len(s.Enum))
		for _, e := range s.Enum {
			if str, ok := value.Of(e).(value.String); ok {
				allowed = append(allowed, string(str))
			}
		}
		filters = append(filters, predicate.OneOf(allowed...))
	}
	switch s.Format {
	case "":
	case "uuid":
		filters = append(filters, predicate.UUID())
	default:
		c.warnf("%s: format %q is not checked", loc(at), s.Format)
	}
	for _, r := range s.Validations {
		p, err := predicate.CEL[string](r.Rule)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: %s: %w", loc(at), err)
		}
		filters = append(filters, p)
	}
	if len(filters) > 0 {
		v.Filter = predicate.All(filters...)
	}
	return v, nil
}

func numberFilter(s *Schema) (goshape.Predicate[float64], error) {
	var filters []goshape.Predicate[float64]
	if len(s.Enum) > 0 {
		allowed := make([]float64, 0, len(s.Enum))
		for _, e := range s.Enum {
			if n, ok := value.Of(e).(value.Number); ok {
				allowed = append(allowed, n.F)
			}
		}
		filters = append(filters, predicate.OneOf(allowed...))
	}
	for _, r := range s.Validations {
		p, err := predicate.CEL[float64](r.Rule)
		if err != nil {
			return nil, err
		}
		filters = append(filters, p)
	}
	if len(filters) == 0 {
		return nil, nil
	}
	return predicate.All(filters...), nil
}

func isObject(v value.Value) bool { return v.Kind() == value.KindObject }

func intOrString(v value.Value) bool {
	switch t := v.(type) {
	case value.String:
		return true
	case value.Number:
		return t.F == math.Trunc(t.F) && !math.IsInf(t.F, 0)
	}
	return false
}

func loc(at string) string {
	if at == "" {
		return "/"
	}
	return at
}
