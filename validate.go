package goshape

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/reoring/goshape/i18n"
	"github.com/reoring/goshape/value"
)

// Validate checks input against s and returns the first violation found, in
// schema declaration order and array index order. name labels the root in
// messages and defaults to "Obj".
//
// The returned error is a *Violation when the input does not satisfy s, a
// *SchemaError when s is malformed or input is not object-shaped, and the
// predicate's own error when a Filter fails with one. input is never
// modified.
func Validate(s Schema, input any, name ...string) error {
	n := ""
	if len(name) > 0 {
		n = name[len(name)-1]
	}
	return run(&checker{tr: i18n.Current()}, s, input, n)
}

func run(c *checker, s Schema, input any, name string) error {
	root := Root(name)
	obj, ok := value.Of(input).(value.Object)
	if !ok {
		return c.schemaError(root, CodeInputNotObject)
	}
	return c.fields(s, obj, root)
}

// Validator is a configured validation entry point. It is safe for
// concurrent use; each call allocates its own state.
type Validator struct {
	name   string
	logger *slog.Logger
	tr     i18n.Translator
	hooks  []Hooks
}

// New returns a Validator configured by opts.
func New(opts ...Option) *Validator {
	v := &Validator{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Validate checks input against s like the package-level Validate, then
// reports the result to the logger and hooks.
func (v *Validator) Validate(ctx context.Context, s Schema, input any) error {
	return v.ValidateNamed(ctx, s, input, v.name)
}

// ValidateNamed is Validate with a per-call root label.
func (v *Validator) ValidateNamed(ctx context.Context, s Schema, input any, name string) error {
	tr := v.tr
	if tr == nil {
		tr = i18n.Current()
	}
	start := time.Now()
	err := run(&checker{tr: tr}, s, input, name)

	e := &Event{Name: Root(name).Name(), Fields: len(s), Start: start, Duration: time.Since(start), Err: err}
	classify(e)
	v.report(ctx, e)
	return err
}

func classify(e *Event) {
	var (
		vio *Violation
		se  *SchemaError
	)
	switch {
	case e.Err == nil:
		e.Outcome = OutcomeValid
	case errors.As(e.Err, &vio):
		e.Outcome, e.Code, e.Path = OutcomeViolation, vio.Code, vio.Path
	case errors.As(e.Err, &se):
		e.Outcome, e.Code, e.Path = OutcomeSchemaError, se.Code, se.Path
	default:
		e.Outcome = OutcomeError
	}
}

func (v *Validator) report(ctx context.Context, e *Event) {
	attrs := []slog.Attr{
		slog.String("name", e.Name),
		slog.String("outcome", string(e.Outcome)),
		slog.Duration("duration", e.Duration),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("code", e.Code), slog.String("path", e.Path), slog.String("error", e.Err.Error()))
	}
	level := slog.LevelDebug
	if e.Outcome == OutcomeSchemaError || e.Outcome == OutcomeError {
		level = slog.LevelWarn
	}
	v.logger.LogAttrs(ctx, level, "validate", attrs...)

	for _, h := range v.hooks {
		if h.OnValidate != nil {
			h.OnValidate(ctx, e)
		}
	}
}
