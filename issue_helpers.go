package goshape

import (
	"fmt"
	"strconv"

	"github.com/reoring/goshape/value"
)

// violation creates a *Violation at p, rendering its message through the
// checker's translator.
func (c *checker) violation(p Path, code string, params map[string]any) error {
	path := p.String()
	return &Violation{
		Path:    path,
		Pointer: p.Pointer(),
		Code:    code,
		Message: c.tr.Message(code, messageData(path, params)),
		Params:  params,
	}
}

func (c *checker) invalidType(p Path, expected Kind, got value.Value) error {
	return c.violation(p, CodeInvalidType, map[string]any{"expected": string(expected), "actual": got.Kind().String()})
}

func (c *checker) schemaError(p Path, code string) error {
	path := p.String()
	return &SchemaError{Path: path, Code: code, Message: c.tr.Message(code, messageData(path, nil))}
}

func messageData(path string, params map[string]any) map[string]string {
	data := make(map[string]string, len(params)+1)
	for k, v := range params {
		data[k] = paramString(v)
	}
	data["path"] = path
	return data
}

func paramString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return formatNumber(t)
	default:
		return fmt.Sprint(t)
	}
}
