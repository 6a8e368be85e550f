package goshape

import (
	"context"
	"log/slog"
	"time"

	"github.com/reoring/goshape/i18n"
)

// Outcome classifies the result of one validation call.
type Outcome string

const (
	OutcomeValid       Outcome = "valid"
	OutcomeViolation   Outcome = "violation"    // The input does not satisfy the schema.
	OutcomeSchemaError Outcome = "schema_error" // The schema or the call is malformed.
	OutcomeError       Outcome = "error"        // A predicate returned an error.
)

// Event describes a finished validation call.
type Event struct {
	Name     string
	Fields   int // Number of top-level fields declared by the schema.
	Start    time.Time
	Duration time.Duration
	Outcome  Outcome
	Code     string // Violation or schema error code; empty otherwise.
	Path     string // Path of the failing value; empty on success.
	Err      error
}

// Hooks are lifecycle callbacks invoked by a Validator. They must be safe
// for concurrent use when the Validator is shared.
type Hooks struct {
	OnValidate func(ctx context.Context, e *Event)
}

// Option configures a Validator.
type Option func(*Validator)

// WithName sets the root label used in messages (default "Obj").
func WithName(name string) Option { return func(v *Validator) { v.name = name } }

// WithLogger sets the structured logger. Results are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithTranslator renders messages with tr instead of the process-wide
// i18n translator.
func WithTranslator(tr i18n.Translator) Option { return func(v *Validator) { v.tr = tr } }

// WithHooks appends lifecycle hooks.
func WithHooks(h ...Hooks) Option { return func(v *Validator) { v.hooks = append(v.hooks, h...) } }
