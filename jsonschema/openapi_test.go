package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/jsonschema"
)

const petstore = `openapi: 3.0.3
info: {title: pets, version: "1"}
paths: {}
components:
  schemas:
    Tag:
      type: object
      required: [name]
      properties:
        name: {type: string, minLength: 1, maxLength: 16}
    Pet:
      type: object
      required: [id, name]
      properties:
        id: {type: integer, minimum: 1}
        name: {type: string, pattern: "^[A-Z]"}
        status: {type: string, enum: [available, sold]}
        tags:
          type: array
          maxItems: 2
          items: {$ref: "#/components/schemas/Tag"}
        owner: {$ref: "#/components/schemas/Person"}
    Person:
      type: object
      properties:
        name: {type: string}
        friend: {$ref: "#/components/schemas/Person"}
`

func TestFromOpenAPI(t *testing.T) {
	js, err := jsonschema.FromOpenAPI([]byte(petstore), "Pet")
	require.NoError(t, err)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, []string{"id", "name"}, js.Required)
	require.NotNil(t, js.Properties["tags"].Items)
	assert.Equal(t, 1, *js.Properties["tags"].Items.Properties["name"].MinLength)
	assert.Equal(t, "#/components/schemas/Person", js.Properties["owner"].Properties["friend"].Ref)

	s, warnings, err := jsonschema.Compile(js)
	require.NoError(t, err)
	assert.Len(t, warnings, 1) // the recursive friend reference

	pet := map[string]any{"id": 1, "name": "Rex", "tags": []any{map[string]any{"name": "good"}}}
	require.NoError(t, goshape.Validate(s, pet, "Pet"))

	pet["tags"] = []any{map[string]any{"name": ""}}
	err = goshape.Validate(s, pet, "Pet")
	v, ok := goshape.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, goshape.CodeTooShort, v.Code)
	assert.Equal(t, "Pet.tags[0][name]", v.Path)

	err = goshape.Validate(s, map[string]any{"id": 2, "name": "rex"}, "Pet")
	v, ok = goshape.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, goshape.CodePattern, v.Code)
}

func TestFromOpenAPI_Errors(t *testing.T) {
	_, err := jsonschema.FromOpenAPI([]byte(petstore), "Missing")
	assert.ErrorContains(t, err, `"Missing" not found`)

	_, err = jsonschema.FromOpenAPI([]byte("openapi: 3.0.3\ninfo: {title: x, version: '1'}\npaths: {}\n"), "Pet")
	assert.ErrorContains(t, err, "not found")

	_, err = jsonschema.FromOpenAPI([]byte("{"), "Pet")
	assert.Error(t, err)
}
