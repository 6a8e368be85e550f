// Package pattern provides goshape.Matcher implementations.
package pattern

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultTimeout bounds a single ECMAScript match.
const DefaultTimeout = 100 * time.Millisecond

// ECMAScriptMatcher matches with ECMAScript regular expression semantics
// (backreferences, lookaround), which RE2 does not support.
type ECMAScriptMatcher struct {
	expr string
	re   *regexp2.Regexp
}

// ECMAScript compiles expr with ECMAScript semantics and DefaultTimeout.
func ECMAScript(expr string) (*ECMAScriptMatcher, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = DefaultTimeout
	return &ECMAScriptMatcher{expr: expr, re: re}, nil
}

// MustECMAScript is ECMAScript that panics on a bad expression.
func MustECMAScript(expr string) *ECMAScriptMatcher {
	m, err := ECMAScript(expr)
	if err != nil {
		panic("pattern: " + err.Error())
	}
	return m
}

// WithTimeout returns a copy of m using d as match timeout.
func (m *ECMAScriptMatcher) WithTimeout(d time.Duration) *ECMAScriptMatcher {
	re := regexp2.MustCompile(m.expr, regexp2.ECMAScript)
	re.MatchTimeout = d
	return &ECMAScriptMatcher{expr: m.expr, re: re}
}

// MatchString reports whether s contains a match. A match that times out
// counts as no match.
func (m *ECMAScriptMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

func (m *ECMAScriptMatcher) String() string { return "/" + m.expr + "/" }

// Source returns the expression without delimiters.
func (m *ECMAScriptMatcher) Source() string { return m.expr }

// RE2 compiles expr with the standard library engine. *regexp.Regexp already
// satisfies goshape.Matcher; RE2 only saves the MustCompile at call sites.
func RE2(expr string) (*regexp.Regexp, error) { return regexp.Compile(expr) }

// Anchored wraps expr so the whole string must match.
func Anchored(expr string) string { return "^(?:" + expr + ")$" }
