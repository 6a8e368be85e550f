package i18n

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for violation codes.
// data carries the placeholder values ("path", "min", "expected", ...) that
// the message embeds.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"required":         "{path} is required.",
		"invalid_type":     "{path} needs to be type of {expected}.",
		"not_object":       "{path} needs to be an object.",
		"too_short":        "{path} needs to be at least {min} characters.",
		"too_long":         "{path} exceeds max length limit by {excess} characters.",
		"pattern":          "{path} doesn't meet regex ({pattern}) requirements.",
		"filter":           "{path} failed to pass through schema filter.",
		"too_small":        "{path} cannot be smaller than {min}.",
		"too_big":          "{path} cannot be greater than {max}.",
		"not_finite":       "{path} needs to be finite.",
		"too_few_items":    "{path} needs to contain at least {min} element(s).",
		"too_many_items":   "{path} can't contain more than {max} element(s).",
		"unknown_kind":     "Failed to resolve type of {path}. Please fix your schema.",
		"missing_element":  "{path} declares an array without an element type. Please fix your schema.",
		"duplicate_field":  "{path} is declared more than once. Please fix your schema.",
		"empty_field_name": "{path} declares a field with an empty name. Please fix your schema.",
		"input_not_object": "{path} input needs to be an object.",
	},
	"ja": {
		"required":         "{path} は必須です。",
		"invalid_type":     "{path} は {expected} 型である必要があります。",
		"not_object":       "{path} はオブジェクトである必要があります。",
		"too_short":        "{path} は {min} 文字以上である必要があります。",
		"too_long":         "{path} は最大長を {excess} 文字超えています。",
		"pattern":          "{path} は正規表現 ({pattern}) に一致しません。",
		"filter":           "{path} はスキーマのフィルタを通過しませんでした。",
		"too_small":        "{path} は {min} 未満にできません。",
		"too_big":          "{path} は {max} を超えられません。",
		"not_finite":       "{path} は有限の値である必要があります。",
		"too_few_items":    "{path} は {min} 個以上の要素が必要です。",
		"too_many_items":   "{path} は {max} 個を超える要素を含められません。",
		"unknown_kind":     "{path} の型を解決できません。スキーマを修正してください。",
		"missing_element":  "{path} の配列に要素型がありません。スキーマを修正してください。",
		"duplicate_field":  "{path} が重複して宣言されています。スキーマを修正してください。",
		"empty_field_name": "{path} に空のフィールド名があります。スキーマを修正してください。",
		"input_not_object": "{path} の入力はオブジェクトである必要があります。",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		tmpl, ok = dictionaries["en"][code]
	}
	if !ok {
		return code
	}
	return Render(tmpl, data)
}

// Render substitutes {key} placeholders in tmpl with values from data.
// Unknown placeholders are left untouched.
func Render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", data[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Languages lists the built-in dictionary languages.
func Languages() []string {
	out := make([]string, 0, len(dictionaries))
	for k := range dictionaries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Unsupported languages fall back to "en".
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// Dictionary returns the built-in Translator for lang without changing the
// process-wide default.
func Dictionary(lang string) Translator {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// Current returns the process-wide Translator.
func Current() Translator { return current.Load().tr }

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return Current().Message(code, data) }
