// Package predicate builds goshape Filters: CEL expressions, UUIDs, enums and
// combinators.
package predicate

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/uuid"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/value"
)

// CEL compiles a boolean CEL expression evaluated with the checked value
// bound to self, e.g. `self.size() <= 64` or `self.startsWith("v")`.
// Evaluation errors are returned from the predicate and therefore from
// Validate unchanged.
func CEL[T any](expr string) (goshape.Predicate[T], error) {
	env, err := cel.NewEnv(
		cel.Variable("self", cel.DynType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("predicate: cel env: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("predicate: compile %q: %w", expr, iss.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("predicate: program %q: %w", expr, err)
	}
	return func(v T) (bool, error) {
		out, _, err := prg.Eval(map[string]any{"self": plain(v)})
		if err != nil {
			return false, fmt.Errorf("predicate: eval %q: %w", expr, err)
		}
		b, ok := out.Value().(bool)
		if !ok {
			return false, fmt.Errorf("predicate: %q evaluated to %v, not a bool", expr, out.Type())
		}
		return b, nil
	}, nil
}

// MustCEL is CEL that panics when expr does not compile.
func MustCEL[T any](expr string) goshape.Predicate[T] {
	p, err := CEL[T](expr)
	if err != nil {
		panic(err)
	}
	return p
}

func plain(v any) any {
	if vv, ok := v.(value.Value); ok {
		return vv.Interface()
	}
	return v
}

// UUID accepts strings in any format google/uuid parses (canonical, urn,
// braced, 32 hex digits).
func UUID() goshape.Predicate[string] {
	return goshape.Pred(func(s string) bool {
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// OneOf accepts values equal to one of allowed.
func OneOf[T comparable](allowed ...T) goshape.Predicate[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return goshape.Pred(func(v T) bool {
		_, ok := set[v]
		return ok
	})
}

// All accepts values every predicate accepts. It stops at the first false
// result or error.
func All[T any](ps ...goshape.Predicate[T]) goshape.Predicate[T] {
	return func(v T) (bool, error) {
		for _, p := range ps {
			ok, err := p(v)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Any accepts values at least one predicate accepts.
func Any[T any](ps ...goshape.Predicate[T]) goshape.Predicate[T] {
	return func(v T) (bool, error) {
		for _, p := range ps {
			ok, err := p(v)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// Not negates p. Errors pass through.
func Not[T any](p goshape.Predicate[T]) goshape.Predicate[T] {
	return func(v T) (bool, error) {
		ok, err := p(v)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
