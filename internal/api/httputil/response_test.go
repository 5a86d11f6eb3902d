package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, JSONResponse(w, http.StatusOK, map[string]string{"message": "hello"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, "hello", result["message"])
}

func TestSuccess_SetsFlag(t *testing.T) {
	w := httptest.NewRecorder()

	Success(w, logger.Nop(), http.StatusCreated, domain.Envelope{Message: "ok", Data: map[string]int{"n": 1}})

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.NotContains(t, body, "pagination")
}

func TestSuccess_LogsEncodingFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("debug", &buf)
	w := httptest.NewRecorder()

	Success(w, log, http.StatusOK, domain.Envelope{Data: make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	var entry logger.LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "Falha ao serializar a resposta.", entry.Message)
	assert.Contains(t, entry.Error, "chan int")
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
		message  string
	}{
		{"validação", apperror.NewFieldValidationError([]apperror.FieldError{{Field: "name", Message: "curto"}}), 400, "VALIDATION_ERROR", "Erro de Validação: curto"},
		{"não encontrado", apperror.NewNotFoundError("x"), 404, "NOT_FOUND", "Recurso não encontrado: x"},
		{"conflito", apperror.NewConflictError("y"), 409, "CONFLICT", "Conflito de estado: y"},
		{"interno oculta causa", apperror.NewInternalError("falhou", errors.New("segredo")), 500, "INTERNAL_ERROR", "falhou"},
		{"erro não tipado", errors.New("boom"), 500, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)

			WriteError(w, r, logger.Nop(), tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body domain.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Code)
			assert.Equal(t, tc.category, body.Category)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestWriteError_IncludesFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/users", nil)
	fields := []apperror.FieldError{{Field: "name", Message: "a"}, {Field: "email", Message: "b"}}

	WriteError(w, r, logger.Nop(), apperror.NewFieldValidationError(fields))

	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, fields, body.Errors)
}

func TestDecodeJSONObject(t *testing.T) {
	t.Run("objeto válido preserva números", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age": 30, "price": 12.989}`))

		payload, err := DecodeJSONObject(r, 1024)

		require.NoError(t, err)
		assert.Equal(t, json.Number("30"), payload["age"])
		assert.Equal(t, json.Number("12.989"), payload["price"])
	})

	rejected := map[string]string{
		"vazio":        ``,
		"null":         `null`,
		"array":        `[1, 2]`,
		"malformado":   `{"name":`,
		"texto":        `"abc"`,
		"dois objetos": `{} {}`,
	}
	for name, body := range rejected {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

			_, err := DecodeJSONObject(r, 1024)

			assert.IsType(t, &apperror.ValidationError{}, err)
		})
	}

	t.Run("corpo acima do limite", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "`+strings.Repeat("a", 64)+`"}`))

		_, err := DecodeJSONObject(r, 16)

		assert.IsType(t, &apperror.ValidationError{}, err)
		assert.Contains(t, err.Error(), "excede 16 bytes")
	})
}

func TestPageQuery(t *testing.T) {
	cases := map[string]domain.PageQuery{
		"/":                    {Page: 1, Limit: 10},
		"/?page=2&limit=5":     {Page: 2, Limit: 5},
		"/?page=0&limit=-3":    {Page: 1, Limit: 10},
		"/?page=abc&limit=xyz": {Page: 1, Limit: 10},
		"/?limit=150":          {Page: 1, Limit: 100},
	}
	for target, expected := range cases {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		assert.Equal(t, expected, PageQuery(r), target)
	}
}
