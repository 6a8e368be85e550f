// Package goshape validates untyped, JSON-like data against a declarative
// schema at runtime.
//
// A Schema is an ordered list of fields, each bound to one of the closed set
// of variants (String, Int, Float, Bool, Func, Unknown, Array, Object).
// Validate walks schema and input in lockstep and stops at the first
// violation, reporting a path such as Obj.items[2][count]:
//
//	s := goshape.Fields(
//		goshape.F("name", goshape.String{Required: true, Min: goshape.Ptr(3)}),
//		goshape.F("tags", goshape.Array{Element: goshape.String{}}),
//	)
//	if err := goshape.Validate(s, input, "User"); err != nil {
//		if v, ok := goshape.AsViolation(err); ok {
//			log.Println(v.Code, v.Pointer)
//		}
//	}
//
// Design policy:
//   - No coercion, no defaults: input is never modified.
//   - Fail-fast: exactly one error per failed call.
//   - Fields present in the input but absent from the schema are ignored.
//   - Schemas are not validated ahead of time; a malformed field surfaces as a
//     *SchemaError when the engine reaches it.
//
// Subpackages: source decodes JSON/YAML documents, pattern and predicate
// provide Matchers and Filters, bind decodes validated input into structs,
// jsonschema and kubeopenapi convert from and to JSON Schema and Kubernetes
// CRDs, metrics and tracing observe Validators, middleware guards HTTP
// handlers and cmd/goshape is the CLI.
package goshape
