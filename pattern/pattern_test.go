package pattern_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/pattern"
)

func TestECMAScript_Lookahead(t *testing.T) {
	// RE2 rejects lookahead; ECMAScript accepts it.
	_, err := pattern.RE2(`^(?=.*\d)\w+$`)
	require.Error(t, err)

	m, err := pattern.ECMAScript(`^(?=.*\d)\w+$`)
	require.NoError(t, err)
	assert.True(t, m.MatchString("abc1"))
	assert.False(t, m.MatchString("abc"))
	assert.Equal(t, `/^(?=.*\d)\w+$/`, m.String())
}

func TestECMAScript_Invalid(t *testing.T) {
	_, err := pattern.ECMAScript(`(`)
	require.Error(t, err)
	assert.Panics(t, func() { pattern.MustECMAScript(`(`) })
}

func TestECMAScript_WithTimeout(t *testing.T) {
	m := pattern.MustECMAScript(`^a+$`).WithTimeout(time.Second)
	assert.True(t, m.MatchString("aaa"))
}

func TestAnchored(t *testing.T) {
	re, err := pattern.RE2(pattern.Anchored(`[a-z]+|[0-9]+`))
	require.NoError(t, err)
	assert.True(t, re.MatchString("abc"))
	assert.False(t, re.MatchString("abc1"))
}

func TestMatcherInSchema(t *testing.T) {
	s := goshape.Fields(goshape.F("code", goshape.String{Match: pattern.MustECMAScript(`^(\w)\1$`)}))

	require.NoError(t, goshape.Validate(s, map[string]any{"code": "aa"}))

	err := goshape.Validate(s, map[string]any{"code": "ab"})
	v, ok := goshape.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, goshape.CodePattern, v.Code)
	assert.Equal(t, `Obj.code doesn't meet regex (/^(\w)\1$/) requirements.`, v.Message)
}
