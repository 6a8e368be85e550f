package bind_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/bind"
)

type user struct {
	Name string   `json:"name"`
	Age  int      `json:"age"`
	Tags []string `json:"tags"`
}

var userSchema = goshape.Fields(
	goshape.F("name", goshape.String{Required: true, Min: goshape.Ptr(1)}),
	goshape.F("age", goshape.Int{Min: goshape.Ptr(0.0)}),
	goshape.F("tags", goshape.Array{Element: goshape.String{}}),
)

func TestInto(t *testing.T) {
	in := map[string]any{"name": "ada", "age": json.Number("36"), "tags": []any{"math"}, "extra": true}

	u, err := bind.Into[user](userSchema, in, "User")
	require.NoError(t, err)
	assert.Equal(t, user{Name: "ada", Age: 36, Tags: []string{"math"}}, u)
	assert.Equal(t, json.Number("36"), in["age"])
}

func TestInto_ViolationIsReturnedUnchanged(t *testing.T) {
	_, err := bind.Into[user](userSchema, map[string]any{"age": 1}, "User")
	v, ok := goshape.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, "User.name", v.Path)
}

func TestIntoWith(t *testing.T) {
	val := goshape.New(goshape.WithName("User"))
	u, err := bind.IntoWith[user](context.Background(), val, userSchema, map[string]any{"name": "bob"})
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Name)

	_, err = bind.IntoWith[user](context.Background(), val, userSchema, map[string]any{"name": 1})
	require.Error(t, err)
}
