package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"path": "Obj.name", "min": "3"}

	assert.Equal(t, "Obj.name needs to be at least 3 characters.", T("too_short", data))

	SetLanguage("ja")
	defer SetLanguage("en")
	msg := T("too_short", data)
	assert.NotEqual(t, "Obj.name needs to be at least 3 characters.", msg)
	assert.Contains(t, msg, "Obj.name")
}

func TestTranslator_UnknownCodeAndLanguage(t *testing.T) {
	assert.Equal(t, "no_such_code", Dictionary("en").Message("no_such_code", nil))
	assert.Equal(t, Dictionary("en").Message("required", map[string]string{"path": "x"}),
		Dictionary("fr").Message("required", map[string]string{"path": "x"}))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "CODE:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	assert.Equal(t, "CODE:required", T("required", nil))
}

func TestRender(t *testing.T) {
	assert.Equal(t, "a 1 b {c}", Render("a {x} b {c}", map[string]string{"x": "1"}))
	assert.Equal(t, "plain", Render("plain", map[string]string{"x": "1"}))
	assert.ElementsMatch(t, []string{"en", "ja"}, Languages())
}
