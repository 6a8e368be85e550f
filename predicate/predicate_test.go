package predicate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/predicate"
	"github.com/reoring/goshape/value"
)

func TestCEL_String(t *testing.T) {
	p, err := predicate.CEL[string](`self.startsWith("v") && self.size() <= 4`)
	require.NoError(t, err)

	ok, err := p("v1.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p("1.2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCEL_NumberCrossType(t *testing.T) {
	p := predicate.MustCEL[float64](`self > 3`)
	ok, err := p(4)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCEL_UnknownValue(t *testing.T) {
	p := predicate.MustCEL[value.Value](`has(self.kind) && self.kind == "pod"`)
	ok, err := p(value.Of(map[string]any{"kind": "pod"}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p(value.Of(map[string]any{"kind": "node"}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCEL_CompileError(t *testing.T) {
	_, err := predicate.CEL[string](`self +`)
	require.Error(t, err)
	assert.Panics(t, func() { predicate.MustCEL[string](`)`) })
}

func TestCEL_NonBoolResultIsError(t *testing.T) {
	p := predicate.MustCEL[string](`self`)
	_, err := p("x")
	require.Error(t, err)
}

func TestCEL_ErrorPropagatesThroughValidate(t *testing.T) {
	p := predicate.MustCEL[value.Value](`self.missing == 1`)
	s := goshape.Fields(goshape.F("doc", goshape.Unknown{Filter: p}))

	err := goshape.Validate(s, map[string]any{"doc": map[string]any{}})
	require.Error(t, err)
	_, isViolation := goshape.AsViolation(err)
	assert.False(t, isViolation)
	assert.False(t, goshape.IsSchemaError(err))
}

func TestUUID(t *testing.T) {
	p := predicate.UUID()
	ok, _ := p("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.True(t, ok)
	ok, _ = p("not-a-uuid")
	assert.False(t, ok)
}

func TestCombinators(t *testing.T) {
	colors := predicate.OneOf("red", "green")
	notRed := predicate.Not(predicate.OneOf("red"))

	ok, _ := predicate.All(colors, notRed)("green")
	assert.True(t, ok)
	ok, _ = predicate.All(colors, notRed)("red")
	assert.False(t, ok)
	ok, _ = predicate.Any(predicate.OneOf("x"), colors)("red")
	assert.True(t, ok)
	ok, _ = predicate.Any[string]()("red")
	assert.False(t, ok)

	boom := errors.New("boom")
	failing := goshape.Predicate[string](func(string) (bool, error) { return false, boom })
	_, err := predicate.All(colors, failing)("red")
	assert.ErrorIs(t, err, boom)
	_, err = predicate.Not(failing)("red")
	assert.ErrorIs(t, err, boom)
}
