// Package kubeopenapi imports Kubernetes OpenAPI v3 structural schemas, either
// bare or wrapped in a CustomResourceDefinition, as goshape schemas.
package kubeopenapi

import (
	"errors"
	"fmt"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/jsonschema"
	"github.com/reoring/goshape/source"
	"github.com/reoring/goshape/value"
)

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool  { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string { return append([]string(nil), d.ws...) }

// Import compiles a schema document into a goshape schema. doc may be raw
// JSON bytes or a decoded map. It accepts a bare schema, an object holding
// openAPIV3Schema, or a full CRD (spec.versions[].schema.openAPIV3Schema,
// preferring a served version, then the legacy spec.validation).
func Import(doc any) (goshape.Schema, Diag, error) {
	d := &simpleDiag{}
	if doc == nil {
		return nil, d, errors.New("kubeopenapi: nil schema")
	}
	var root map[string]any
	switch t := doc.(type) {
	case []byte:
		v, err := source.JSON(t)
		if err != nil {
			return nil, d, fmt.Errorf("kubeopenapi: %w", err)
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, d, errors.New("kubeopenapi: schema document is not an object")
		}
		root = m
	case map[string]any:
		root = t
	default:
		return nil, d, fmt.Errorf("kubeopenapi: unsupported input %T", doc)
	}

	if spec, ok := root["openAPIV3Schema"].(map[string]any); ok {
		root = spec
	} else if unwrapped := unwrapCRDSchema(root); unwrapped != nil {
		root = unwrapped
	}

	js, err := jsonschema.FromMap(root)
	if err != nil {
		return nil, d, fmt.Errorf("kubeopenapi: %w", err)
	}
	s, ws, err := jsonschema.Compile(js)
	d.ws = ws
	if err != nil {
		return nil, d, fmt.Errorf("kubeopenapi: %w", err)
	}
	return s, d, nil
}

func unwrapCRDSchema(root map[string]any) map[string]any {
	spec, ok := root["spec"].(map[string]any)
	if !ok {
		return nil
	}
	if vers, ok := spec["versions"].([]any); ok {
		var firstFound map[string]any
		for _, v := range vers {
			vm, _ := v.(map[string]any)
			if vm == nil {
				continue
			}
			served := true
			if sv, ok := vm["served"].(bool); ok {
				served = sv
			}
			sch, _ := vm["schema"].(map[string]any)
			oas, ok := sch["openAPIV3Schema"].(map[string]any)
			if !ok {
				continue
			}
			if served {
				return oas
			}
			if firstFound == nil {
				firstFound = oas
			}
		}
		if firstFound != nil {
			return firstFound
		}
	}
	// legacy: spec.validation.openAPIV3Schema
	if val, ok := spec["validation"].(map[string]any); ok {
		if oas, ok := val["openAPIV3Schema"].(map[string]any); ok {
			return oas
		}
	}
	return nil
}

// ImportYAMLForCRDKind scans a multi-document YAML bundle and imports the
// first CustomResourceDefinition whose spec.names.kind equals kind.
func ImportYAMLForCRDKind(data []byte, kind string) (goshape.Schema, Diag, error) {
	return importMatching(data, func(crd value.Object) bool {
		return lookupString(crd, "spec", "names", "kind") == kind
	}, "kind "+kind)
}

// ImportYAMLForCRDName imports the CRD with the given metadata.name.
func ImportYAMLForCRDName(data []byte, name string) (goshape.Schema, Diag, error) {
	return importMatching(data, func(crd value.Object) bool {
		return lookupString(crd, "metadata", "name") == name
	}, "name "+name)
}

func importMatching(data []byte, match func(value.Object) bool, what string) (goshape.Schema, Diag, error) {
	docs, err := source.YAMLDocuments(data)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("kubeopenapi: %w", err)
	}
	for _, doc := range docs {
		obj, ok := value.Of(doc).(value.Object)
		if !ok || lookupString(obj, "kind") != "CustomResourceDefinition" {
			continue
		}
		if match(obj) {
			return Import(doc)
		}
	}
	return nil, &simpleDiag{}, fmt.Errorf("kubeopenapi: CRD %s not found in YAML bundle", what)
}

func lookupString(obj value.Object, keys ...string) string {
	cur := obj
	for i, k := range keys {
		v, ok := cur.Lookup(k)
		if !ok {
			return ""
		}
		if i == len(keys)-1 {
			s, _ := v.(value.String)
			return string(s)
		}
		next, ok := v.(value.Object)
		if !ok {
			return ""
		}
		cur = next
	}
	return ""
}
