package goshape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
)

var configSchema = goshape.Fields(
	goshape.F("port", goshape.Int{Required: true, Min: goshape.Ptr(1.0), Max: goshape.Ptr(65535.0)}),
	goshape.F("hosts", goshape.Array{Min: goshape.Ptr(1), Element: goshape.String{}}),
)

func TestValidateJSON(t *testing.T) {
	require.NoError(t, goshape.ValidateJSON(configSchema, []byte(`{"port": 8080, "hosts": ["a"]}`)))

	err := goshape.ValidateJSON(configSchema, []byte(`{"port": 8080.5}`), "Config")
	requireViolation(t, err, goshape.CodeInvalidType, "Config.port")

	err = goshape.ValidateJSON(configSchema, []byte(`{"port": `))
	require.Error(t, err)
	assert.False(t, goshape.IsSchemaError(err))
	_, ok := goshape.AsViolation(err)
	assert.False(t, ok)

	err = goshape.ValidateJSON(configSchema, []byte(`[1]`))
	assert.True(t, goshape.IsSchemaError(err))
}

func TestValidateJSON_LargeIntegerKeepsWholeness(t *testing.T) {
	s := goshape.Fields(goshape.F("n", goshape.Int{}))
	require.NoError(t, goshape.ValidateJSON(s, []byte(`{"n": 9007199254740993}`)))
	require.NoError(t, goshape.ValidateJSON(s, []byte(`{"n": 1e3}`)))
}

func TestValidateYAML(t *testing.T) {
	require.NoError(t, goshape.ValidateYAML(configSchema, []byte("port: 443\nhosts: [example.com]\n")))

	err := goshape.ValidateYAML(configSchema, []byte("port: 443\nhosts: []\n"))
	requireViolation(t, err, goshape.CodeTooFewItems, "Obj.hosts")

	err = goshape.ValidateYAML(configSchema, []byte("port: [\n"))
	require.Error(t, err)
}
