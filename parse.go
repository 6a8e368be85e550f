package goshape

import "github.com/reoring/goshape/source"

// ValidateJSON decodes data as a JSON document and validates it against s.
// Decode failures are returned wrapped; they are neither violations nor
// schema errors.
func ValidateJSON(s Schema, data []byte, name ...string) error {
	doc, err := source.JSON(data)
	if err != nil {
		return err
	}
	return Validate(s, doc, name...)
}

// ValidateYAML decodes the first document of a YAML stream and validates it
// against s.
func ValidateYAML(s Schema, data []byte, name ...string) error {
	doc, err := source.YAML(data)
	if err != nil {
		return err
	}
	return Validate(s, doc, name...)
}
