package goshape

import "github.com/reoring/goshape/value"

// Kind names a variant in messages.
type Kind string

const (
	KindString  Kind = "string"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindBool    Kind = "boolean"
	KindFunc    Kind = "function"
	KindUnknown Kind = "unknown"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Field binds a name to the variant its value must satisfy.
type Field struct {
	Name string
	Type Variant
}

// Schema is an ordered set of fields describing an object-shaped input.
// Declaration order is the order in which fields are checked.
type Schema []Field

// Fields builds a Schema from fields, keeping their order.
func Fields(fs ...Field) Schema { return Schema(fs) }

// F is shorthand for Field{Name: name, Type: v}.
func F(name string, v Variant) Field { return Field{Name: name, Type: v} }

// Variant describes what a single field may be. The implementations are
// exactly String, Int, Float, Bool, Func, Unknown, Array and Object.
type Variant interface {
	Kind() Kind
	IsRequired() bool
	// accept dispatches to the checker method for the concrete kind.
	accept(c *checker, v value.Value, p Path) error
}

// Matcher tests a string against a pattern. *regexp.Regexp satisfies it;
// see package pattern for ECMAScript-compatible matchers.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// Predicate is a caller-supplied filter. Returning false is a violation; a
// non-nil error is returned to the caller of Validate unchanged. Predicates
// must not mutate their argument.
type Predicate[T any] func(T) (bool, error)

// Pred adapts an infallible function into a Predicate.
func Pred[T any](fn func(T) bool) Predicate[T] {
	return func(v T) (bool, error) { return fn(v), nil }
}

// Ptr returns a pointer to v, for optional bounds such as Min: Ptr(3).
func Ptr[T any](v T) *T { return &v }

// String accepts strings. Min and Max bound the length in runes.
type String struct {
	Required bool
	Min, Max *int
	Match    Matcher
	Filter   Predicate[string]
}

// Int accepts whole numbers.
type Int struct {
	Required bool
	Min, Max *float64
	Finite   bool
	Filter   Predicate[float64]
}

// Float accepts any number, whole numbers included.
type Float struct {
	Required bool
	Min, Max *float64
	Finite   bool
	Filter   Predicate[float64]
}

// Bool accepts booleans.
type Bool struct{ Required bool }

// Func accepts Go function values.
type Func struct{ Required bool }

// Unknown accepts any value, optionally gated by Filter.
type Unknown struct {
	Required bool
	Filter   Predicate[value.Value]
}

// Array accepts sequences whose elements all satisfy Element.
type Array struct {
	Required bool
	Min, Max *int
	Element  Variant
}

// Object accepts mappings whose declared records satisfy Records.
type Object struct {
	Required bool
	Records  Schema
}

func (String) Kind() Kind  { return KindString }
func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (Bool) Kind() Kind    { return KindBool }
func (Func) Kind() Kind    { return KindFunc }
func (Unknown) Kind() Kind { return KindUnknown }
func (Array) Kind() Kind   { return KindArray }
func (Object) Kind() Kind  { return KindObject }

func (s String) IsRequired() bool  { return s.Required }
func (i Int) IsRequired() bool     { return i.Required }
func (f Float) IsRequired() bool   { return f.Required }
func (b Bool) IsRequired() bool    { return b.Required }
func (f Func) IsRequired() bool    { return f.Required }
func (u Unknown) IsRequired() bool { return u.Required }
func (a Array) IsRequired() bool   { return a.Required }
func (o Object) IsRequired() bool  { return o.Required }

func (s String) accept(c *checker, v value.Value, p Path) error  { return c.checkString(s, v, p) }
func (i Int) accept(c *checker, v value.Value, p Path) error     { return c.checkInt(i, v, p) }
func (f Float) accept(c *checker, v value.Value, p Path) error   { return c.checkFloat(f, v, p) }
func (b Bool) accept(c *checker, v value.Value, p Path) error    { return c.checkBool(b, v, p) }
func (f Func) accept(c *checker, v value.Value, p Path) error    { return c.checkFunc(f, v, p) }
func (u Unknown) accept(c *checker, v value.Value, p Path) error { return c.checkUnknown(u, v, p) }
func (a Array) accept(c *checker, v value.Value, p Path) error   { return c.checkArray(a, v, p) }
func (o Object) accept(c *checker, v value.Value, p Path) error  { return c.checkObject(o, v, p) }
