// Package value classifies untyped Go input into a closed set of JSON-like
// kinds. Containers are classified lazily: children are only inspected when
// they are accessed.
package value

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// Kind enumerates the shapes an input value may take.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindFunc
	KindArray
	KindObject
	KindOther // Go values with no JSON-like shape (structs, channels, ...).
)

var kindNames = [...]string{
	KindNull:   "null",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "boolean",
	KindFunc:   "function",
	KindArray:  "array",
	KindObject: "object",
	KindOther:  "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one classified input value. The set of implementations is closed:
// Null, String, Number, Bool, Func, Array, Object and Other.
type Value interface {
	Kind() Kind
	// Raw returns the Go value this Value was classified from.
	Raw() any
	// Interface returns a plain representation (map[string]any, []any,
	// float64, string, bool, nil) suitable for expression engines.
	Interface() any
	sealed()
}

type (
	Null   struct{}
	String string
	Bool   bool
	// Number holds every numeric input as float64. Raw keeps the original
	// representation (int, json.Number, ...).
	Number struct {
		F   float64
		raw any
	}
	Func struct{ fn any }
	// Array is an ordered sequence; elements are classified on access.
	Array struct{ rv reflect.Value }
	// Object is a string-keyed mapping; entries are classified on access.
	Object struct{ rv reflect.Value }
	Other  struct{ v any }
)

func (Null) Kind() Kind   { return KindNull }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Func) Kind() Kind   { return KindFunc }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }
func (Other) Kind() Kind  { return KindOther }

func (Null) Raw() any     { return nil }
func (s String) Raw() any { return string(s) }
func (n Number) Raw() any {
	if n.raw == nil {
		return n.F
	}
	return n.raw
}
func (b Bool) Raw() any   { return bool(b) }
func (f Func) Raw() any   { return f.fn }
func (a Array) Raw() any  { return a.rv.Interface() }
func (o Object) Raw() any { return o.rv.Interface() }
func (o Other) Raw() any  { return o.v }

func (Null) Interface() any     { return nil }
func (s String) Interface() any { return string(s) }
func (n Number) Interface() any { return n.F }
func (b Bool) Interface() any   { return bool(b) }
func (f Func) Interface() any   { return f.fn }
func (o Other) Interface() any  { return o.v }

func (a Array) Interface() any {
	out := make([]any, a.Len())
	for i := range out {
		out[i] = a.At(i).Interface()
	}
	return out
}

func (o Object) Interface() any {
	out := make(map[string]any, o.Len())
	iter := o.rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = Of(iter.Value().Interface()).Interface()
	}
	return out
}

func (Null) sealed()   {}
func (String) sealed() {}
func (Number) sealed() {}
func (Bool) sealed()   {}
func (Func) sealed()   {}
func (Array) sealed()  {}
func (Object) sealed() {}
func (Other) sealed()  {}

// Len returns the number of elements.
func (a Array) Len() int { return a.rv.Len() }

// At classifies the i-th element.
func (a Array) At(i int) Value { return Of(a.rv.Index(i).Interface()) }

// Len returns the number of keys.
func (o Object) Len() int { return o.rv.Len() }

// Lookup classifies the value stored under key. The boolean is false only when
// the key is absent; a key holding nil yields (Null{}, true).
func (o Object) Lookup(key string) (Value, bool) {
	if m, ok := o.rv.Interface().(map[string]any); ok {
		v, found := m[key]
		if !found {
			return nil, false
		}
		return Of(v), true
	}
	ev := o.rv.MapIndex(reflect.ValueOf(key).Convert(o.rv.Type().Key()))
	if !ev.IsValid() {
		return nil, false
	}
	return Of(ev.Interface()), true
}

// Of classifies v. It never fails: values without a JSON-like shape become
// Other.
func Of(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number{F: t, raw: t}
	case int:
		return Number{F: float64(t), raw: t}
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return Other{v: t}
		}
		return Number{F: f, raw: t}
	case map[string]any:
		return Object{rv: reflect.ValueOf(t)}
	case []any:
		return Array{rv: reflect.ValueOf(t)}
	}
	return ofReflect(v)
}

func ofReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return Of(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number{F: float64(rv.Int()), raw: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number{F: float64(rv.Uint()), raw: v}
	case reflect.Float32, reflect.Float64:
		return Number{F: rv.Float(), raw: v}
	case reflect.Func:
		if rv.IsNil() {
			return Null{}
		}
		return Func{fn: v}
	case reflect.Slice, reflect.Array:
		// nil slices are empty arrays, matching map[string]any decoding of [].
		return Array{rv: rv}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			// only string-keyed maps have a path representation
			return Other{v: v}
		}
		return Object{rv: rv}
	}
	return Other{v: v}
}
