package middleware_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/middleware"
)

var orderSchema = goshape.Fields(
	goshape.F("id", goshape.Int{Required: true, Min: goshape.Ptr(1.0)}),
	goshape.F("items", goshape.Array{Required: true, Min: goshape.Ptr(1), Element: goshape.Object{
		Records: goshape.Fields(goshape.F("sku", goshape.String{Required: true})),
	}}),
)

func newRouter(s goshape.Schema, opt middleware.Options) http.Handler {
	r := chi.NewRouter()
	r.With(middleware.Validate(s, opt)).Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		doc, ok := middleware.DocumentFromContext(r.Context())
		if !ok {
			http.Error(w, "missing document", http.StatusInternalServerError)
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_ = j.NewEncoder(w).Encode(map[string]any{"id": doc["id"], "bodyLen": len(body)})
	})
	return r
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, middleware.ErrorBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
	var eb middleware.ErrorBody
	if rec.Code >= 400 {
		require.NoError(t, j.Unmarshal(rec.Body.Bytes(), &eb))
	}
	return rec, eb
}

func TestValidate_Accepts(t *testing.T) {
	h := newRouter(orderSchema, middleware.Options{})
	body := `{"id": 7, "items": [{"sku": "A-1"}], "note": "extra"}`
	rec, _ := post(t, h, body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id": 7, "bodyLen": %d}`, len(body)), rec.Body.String())
}

func TestValidate_Violation(t *testing.T) {
	h := newRouter(orderSchema, middleware.Options{})
	rec, eb := post(t, h, `{"id": 7, "items": [{"sku": "A-1"}, {}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, goshape.CodeRequired, eb.Error.Code)
	assert.Equal(t, "Obj.items[1][sku]", eb.Error.Path)
	assert.Equal(t, "/items/1/sku", eb.Error.Pointer)
}

func TestValidate_NonObjectBody(t *testing.T) {
	h := newRouter(orderSchema, middleware.Options{})
	rec, eb := post(t, h, `[1,2]`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, goshape.CodeInputNotObject, eb.Error.Code)
}

func TestValidate_BadJSON(t *testing.T) {
	h := newRouter(orderSchema, middleware.Options{})
	rec, eb := post(t, h, `{"id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", eb.Error.Code)
}

func TestValidate_TooLarge(t *testing.T) {
	h := newRouter(orderSchema, middleware.Options{MaxBytes: 8})
	rec, _ := post(t, h, `{"id": 7, "items": []}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestValidate_BrokenSchema(t *testing.T) {
	broken := goshape.Fields(goshape.F("id", nil))
	h := newRouter(broken, middleware.Options{})
	rec, eb := post(t, h, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, goshape.CodeUnknownKind, eb.Error.Code)
}

func TestErrorPayload_PlainError(t *testing.T) {
	eb := middleware.ErrorPayload(errors.New("boom"))
	assert.Equal(t, "boom", eb.Error.Message)
}

func TestValidate_FilterErrorIsNotLeaked(t *testing.T) {
	s := goshape.Fields(goshape.F("id", goshape.Int{
		Required: true,
		Filter:   func(float64) (bool, error) { return false, errors.New("inventory db at 10.0.0.5 unreachable") },
	}))
	var buf bytes.Buffer
	h := newRouter(s, middleware.Options{Logger: slog.New(slog.NewJSONHandler(&buf, nil))})

	rec, eb := post(t, h, `{"id": 7}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, middleware.CodeInternal, eb.Error.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, buf.String(), "inventory db at 10.0.0.5 unreachable")
	assert.Contains(t, buf.String(), `"path":"/orders"`)
}
