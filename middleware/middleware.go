// Package middleware validates JSON request bodies against a goshape Schema
// before they reach an http.Handler.
package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	j "github.com/goccy/go-json"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/source"
)

// DefaultMaxBytes caps request bodies when Options.MaxBytes is zero.
const DefaultMaxBytes int64 = 1 << 20

// Options configures Validate.
type Options struct {
	Validator *goshape.Validator // nil uses goshape.New().
	MaxBytes  int64
	Logger    *slog.Logger // receives filter failures; nil discards them.
}

// ctxKeyDocument is a typed context key for the decoded request body.
type ctxKeyDocument struct{}

// ContextWithDocument attaches a decoded, validated document to ctx.
func ContextWithDocument(ctx context.Context, doc map[string]any) context.Context {
	return context.WithValue(ctx, ctxKeyDocument{}, doc)
}

// DocumentFromContext retrieves the document stored by Validate.
func DocumentFromContext(ctx context.Context) (map[string]any, bool) {
	doc, ok := ctx.Value(ctxKeyDocument{}).(map[string]any)
	return doc, ok
}

// ErrorBody is the JSON payload written for rejected requests.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes the rejection.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Path    string         `json:"path,omitempty"`
	Pointer string         `json:"pointer,omitempty"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// CodeInternal is the payload code for a filter that failed with its own
// error. The error text is logged, not sent.
const CodeInternal = "internal_error"

// ErrorPayload shapes a validation error for a JSON response.
func ErrorPayload(err error) ErrorBody {
	if v, ok := goshape.AsViolation(err); ok {
		return ErrorBody{Error: ErrorDetail{Code: v.Code, Path: v.Path, Pointer: v.Pointer, Message: v.Message, Params: v.Params}}
	}
	var se *goshape.SchemaError
	if errors.As(err, &se) {
		return ErrorBody{Error: ErrorDetail{Code: se.Code, Path: se.Path, Message: se.Message}}
	}
	return ErrorBody{Error: ErrorDetail{Code: "bad_request", Message: err.Error()}}
}

// Validate returns middleware that decodes the JSON body, validates it
// against s and stores it in the request context. Rejections:
//   - 413 when the body exceeds MaxBytes,
//   - 400 when the body is not JSON,
//   - 422 on a violation (including a non-object body),
//   - 500 when the schema is malformed or a filter fails. A filter's own
//     error goes to Options.Logger; the client sees CodeInternal.
//
// The body is restored so downstream handlers can read it again.
func Validate(s goshape.Schema, opt Options) func(http.Handler) http.Handler {
	v := opt.Validator
	if v == nil {
		v = goshape.New()
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	limit := opt.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			if int64(len(data)) > limit {
				writeError(w, http.StatusRequestEntityTooLarge, errors.New("request body too large"))
				return
			}
			doc, err := source.JSON(data)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			if err := v.Validate(r.Context(), s, doc); err != nil {
				if filterFailed(err) {
					log.ErrorContext(r.Context(), "request validation failed",
						slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.String("error", err.Error()))
					writeBody(w, http.StatusInternalServerError, ErrorBody{Error: ErrorDetail{Code: CodeInternal, Message: "validation could not be completed"}})
					return
				}
				writeError(w, statusFor(err), err)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(data))
			obj, _ := doc.(map[string]any)
			next.ServeHTTP(w, r.WithContext(ContextWithDocument(r.Context(), obj)))
		})
	}
}

func statusFor(err error) int {
	var se *goshape.SchemaError
	switch {
	case errors.As(err, &se) && se.Code == goshape.CodeInputNotObject:
		return http.StatusUnprocessableEntity
	case errors.As(err, &se):
		return http.StatusInternalServerError
	}
	if _, ok := goshape.AsViolation(err); ok {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// filterFailed reports whether err came from a filter rather than from the
// engine itself.
func filterFailed(err error) bool {
	if _, ok := goshape.AsViolation(err); ok {
		return false
	}
	return !goshape.IsSchemaError(err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeBody(w, status, ErrorPayload(err))
}

func writeBody(w http.ResponseWriter, status int, body ErrorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = j.NewEncoder(w).Encode(body)
}
