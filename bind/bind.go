// Package bind validates untyped input and then decodes it into a typed Go
// value. The input itself is never modified.
package bind

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	goshape "github.com/reoring/goshape"
)

// TagName is the struct tag consulted when decoding.
const TagName = "json"

// Into validates input against s and decodes it into a new T. Violations and
// schema errors are returned unchanged so callers can use goshape.AsViolation.
func Into[T any](s goshape.Schema, input any, name ...string) (T, error) {
	var out T
	if err := goshape.Validate(s, input, name...); err != nil {
		return out, err
	}
	return out, decode(input, &out)
}

// IntoWith is Into using a configured Validator.
func IntoWith[T any](ctx context.Context, v *goshape.Validator, s goshape.Schema, input any) (T, error) {
	var out T
	if err := v.Validate(ctx, s, input); err != nil {
		return out, err
	}
	return out, decode(input, &out)
}

func decode(input any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true, // json.Number -> int/float fields
		Result:           dst,
	})
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("bind: decode: %w", err)
	}
	return nil
}
