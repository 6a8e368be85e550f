package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file extension. Unknown
// extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("source: unknown format %q", s)
}

// Decode decodes data in the given format. YAML streams yield their first
// document.
func Decode(data []byte, f Format) (any, error) {
	if f == FormatYAML {
		return YAML(data)
	}
	return JSON(data)
}
