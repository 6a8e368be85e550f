package goshape

import (
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/reoring/goshape/i18n"
	"github.com/reoring/goshape/value"
)

// checker walks a schema and an input in lockstep. It holds no per-call
// cursor: the Path travels by value, so one checker may serve concurrent calls.
type checker struct {
	tr i18n.Translator
}

// fields applies the presence/required/recurse contract shared by the
// top-level entry point and nested objects.
func (c *checker) fields(s Schema, obj value.Object, base Path) error {
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if f.Name == "" {
			return c.schemaError(base, CodeEmptyFieldName)
		}
		p := base.Field(f.Name)
		if _, dup := seen[f.Name]; dup {
			return c.schemaError(p, CodeDuplicateField)
		}
		seen[f.Name] = struct{}{}
		if err := c.wellFormed(f.Type, p); err != nil {
			return err
		}

		v, present := obj.Lookup(f.Name)
		switch {
		case present:
			if err := c.scan(f.Type, v, p); err != nil {
				return err
			}
		case f.Type.IsRequired():
			return c.violation(p, CodeRequired, nil)
		}
	}
	return nil
}

// wellFormed rejects variants the engine cannot dispatch on. It runs before
// the presence check so a broken field fails even when the input omits it.
func (c *checker) wellFormed(v Variant, p Path) error {
	if isNilVariant(v) {
		return c.schemaError(p, CodeUnknownKind)
	}
	if pa, ok := v.(*Array); ok {
		v = *pa
	}
	if a, ok := v.(Array); ok {
		if isNilVariant(a.Element) {
			return c.schemaError(p, CodeMissingElement)
		}
		return c.wellFormed(a.Element, p)
	}
	return nil
}

func isNilVariant(v Variant) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// scan checks one value against one variant.
func (c *checker) scan(t Variant, v value.Value, p Path) error {
	if isNilVariant(t) {
		return c.schemaError(p, CodeUnknownKind)
	}
	return t.accept(c, v, p)
}

func (c *checker) checkString(t String, v value.Value, p Path) error {
	s, ok := v.(value.String)
	if !ok {
		return c.invalidType(p, KindString, v)
	}
	n := utf8.RuneCountInString(string(s))
	if t.Min != nil && *t.Min > n {
		return c.violation(p, CodeTooShort, map[string]any{"min": *t.Min, "got": n, "deficit": *t.Min - n})
	}
	if t.Max != nil && *t.Max < n {
		return c.violation(p, CodeTooLong, map[string]any{"max": *t.Max, "got": n, "excess": n - *t.Max})
	}
	if t.Match != nil && !t.Match.MatchString(string(s)) {
		return c.violation(p, CodePattern, map[string]any{"pattern": t.Match.String()})
	}
	if t.Filter != nil {
		ok, err := t.Filter(string(s))
		return c.filtered(ok, err, p)
	}
	return nil
}

func (c *checker) checkInt(t Int, v value.Value, p Path) error {
	return c.checkNumber(KindInt, t.Min, t.Max, t.Finite, t.Filter, v, p)
}

func (c *checker) checkFloat(t Float, v value.Value, p Path) error {
	return c.checkNumber(KindFloat, t.Min, t.Max, t.Finite, t.Filter, v, p)
}

func (c *checker) checkNumber(kind Kind, lo, hi *float64, finite bool, filter Predicate[float64], v value.Value, p Path) error {
	n, ok := v.(value.Number)
	if !ok {
		return c.invalidType(p, kind, v)
	}
	x := n.F
	isFinite := !math.IsInf(x, 0) && !math.IsNaN(x)
	if kind == KindInt && (!isFinite || math.Trunc(x) != x) {
		return c.invalidType(p, kind, v)
	}
	if lo != nil && *lo > x {
		return c.violation(p, CodeTooSmall, map[string]any{"min": *lo, "got": x})
	}
	if hi != nil && *hi < x {
		return c.violation(p, CodeTooBig, map[string]any{"max": *hi, "got": x})
	}
	if finite && !isFinite {
		return c.violation(p, CodeNotFinite, map[string]any{"got": x})
	}
	if filter != nil {
		ok, err := filter(x)
		return c.filtered(ok, err, p)
	}
	return nil
}

func (c *checker) checkBool(_ Bool, v value.Value, p Path) error {
	if _, ok := v.(value.Bool); !ok {
		return c.invalidType(p, KindBool, v)
	}
	return nil
}

func (c *checker) checkFunc(_ Func, v value.Value, p Path) error {
	if _, ok := v.(value.Func); !ok {
		return c.invalidType(p, KindFunc, v)
	}
	return nil
}

func (c *checker) checkUnknown(t Unknown, v value.Value, p Path) error {
	if t.Filter == nil {
		return nil
	}
	ok, err := t.Filter(v)
	return c.filtered(ok, err, p)
}

func (c *checker) checkArray(t Array, v value.Value, p Path) error {
	arr, ok := v.(value.Array)
	if !ok {
		return c.invalidType(p, KindArray, v)
	}
	n := arr.Len()
	if t.Min != nil && *t.Min > n {
		return c.violation(p, CodeTooFewItems, map[string]any{"min": *t.Min, "got": n})
	}
	if t.Max != nil && *t.Max < n {
		return c.violation(p, CodeTooManyItems, map[string]any{"max": *t.Max, "got": n})
	}
	for i := 0; i < n; i++ {
		if err := c.scan(t.Element, arr.At(i), p.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) checkObject(t Object, v value.Value, p Path) error {
	obj, ok := v.(value.Object)
	if !ok {
		return c.violation(p, CodeNotObject, map[string]any{"expected": string(KindObject), "actual": v.Kind().String()})
	}
	return c.fields(t.Records, obj, p)
}

// filtered turns a predicate result into a violation. Predicate errors are
// returned as is.
func (c *checker) filtered(ok bool, err error, p Path) error {
	if err != nil {
		return err
	}
	if !ok {
		return c.violation(p, CodeFilter, nil)
	}
	return nil
}
