package goshape

import (
	"errors"
	"strconv"
)

// Violation codes (data violations: the input does not satisfy the schema).
const (
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeNotObject    = "not_object"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
	CodePattern      = "pattern"
	CodeFilter       = "filter"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeNotFinite    = "not_finite"
	CodeTooFewItems  = "too_few_items"
	CodeTooManyItems = "too_many_items"
)

// Schema error codes (the schema or the call itself is broken).
const (
	CodeUnknownKind    = "unknown_kind"
	CodeMissingElement = "missing_element"
	CodeDuplicateField = "duplicate_field"
	CodeEmptyFieldName = "empty_field_name"
	CodeInputNotObject = "input_not_object"
)

// Violation reports the first place where the input does not satisfy the
// schema.
type Violation struct {
	Path    string // Rendered path, e.g. Obj.items[2][count].
	Pointer string // JSON Pointer, e.g. /items/2/count.
	Code    string // One of the Code* violation constants.
	Message string
	// Params carries structured parameters (e.g. {"min":3, "got":2}) for
	// i18n and observability.
	Params map[string]any
}

func (v *Violation) Error() string { return v.Message }

// SchemaError reports a malformed schema or a call whose arguments are not
// object-shaped. It signals a bug in the calling code rather than bad input.
type SchemaError struct {
	Path    string
	Code    string // One of the schema error constants.
	Message string
}

func (e *SchemaError) Error() string { return e.Message }

// AsViolation extracts a *Violation from err using errors.As internally.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// IsSchemaError reports whether err is (or wraps) a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// formatNumber renders bounds the way they are usually written: 10 rather
// than 1e+01 or 10.000000.
func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
