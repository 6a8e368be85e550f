package value_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goshape/value"
)

func TestOf_Kinds(t *testing.T) {
	type name string
	var nilPtr *int
	n := 4
	tests := []struct {
		in   any
		kind value.Kind
	}{
		{nil, value.KindNull},
		{nilPtr, value.KindNull},
		{"x", value.KindString},
		{name("x"), value.KindString},
		{true, value.KindBool},
		{1, value.KindNumber},
		{int64(1), value.KindNumber},
		{uint8(1), value.KindNumber},
		{1.5, value.KindNumber},
		{float32(1.5), value.KindNumber},
		{json.Number("12"), value.KindNumber},
		{json.Number("nope"), value.KindOther},
		{&n, value.KindNumber},
		{func() {}, value.KindFunc},
		{[]any{1}, value.KindArray},
		{[]string(nil), value.KindArray},
		{[2]int{1, 2}, value.KindArray},
		{map[string]any{}, value.KindObject},
		{map[name]int{}, value.KindObject},
		{map[int]string{}, value.KindOther},
		{struct{}{}, value.KindOther},
		{make(chan int), value.KindOther},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.kind, value.Of(tt.in).Kind(), "%T", tt.in)
	}
}

func TestOf_Idempotent(t *testing.T) {
	v := value.Of("x")
	assert.Equal(t, v, value.Of(v))
}

func TestNumber(t *testing.T) {
	n, ok := value.Of(json.Number("2.5")).(value.Number)
	require.True(t, ok)
	assert.Equal(t, 2.5, n.F)
	assert.Equal(t, json.Number("2.5"), n.Raw())
	assert.Equal(t, 2.5, n.Interface())
	assert.Equal(t, 3.0, value.Number{F: 3}.Raw())
}

func TestObject_Lookup(t *testing.T) {
	obj := value.Of(map[string]any{"a": nil, "b": "x"}).(value.Object)
	v, ok := obj.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, value.KindNull, v.Kind())

	_, ok = obj.Lookup("missing")
	assert.False(t, ok)

	type key string
	typed := value.Of(map[key]int{"k": 1}).(value.Object)
	v, ok = typed.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, value.KindNumber, v.Kind())
	assert.Equal(t, 1, typed.Len())
}

func TestArray_At(t *testing.T) {
	arr := value.Of([]string{"a", "b"}).(value.Array)
	require.Equal(t, 2, arr.Len())
	assert.Equal(t, value.String("b"), arr.At(1))
}

func TestInterface_Plain(t *testing.T) {
	in := map[string]any{
		"n":    json.Number("1"),
		"list": []int{1, 2},
		"m":    map[string]bool{"ok": true},
	}
	out := value.Of(in).Interface()
	assert.Equal(t, map[string]any{
		"n":    1.0,
		"list": []any{1.0, 2.0},
		"m":    map[string]any{"ok": true},
	}, out)
	assert.Equal(t, json.Number("1"), in["n"])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "boolean", value.KindBool.String())
	assert.Equal(t, "kind(42)", value.Kind(42).String())
}
