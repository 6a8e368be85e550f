// Package source decodes JSON and YAML documents into the untyped values
// goshape validates: map[string]any, []any, string, bool, nil and numbers.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// ErrTrailingData is returned when a document is followed by more input.
var ErrTrailingData = errors.New("source: trailing data after document")

// JSON decodes a single JSON document. Numbers are kept as json.Number so no
// precision is lost before validation.
func JSON(data []byte) (any, error) { return JSONReader(bytes.NewReader(data)) }

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}
