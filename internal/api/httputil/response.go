// Package httputil concentra os helpers HTTP compartilhados pelos handlers:
// escrita de envelopes JSON, tradução de erros e leitura de corpo e query.
package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
)

// JSONResponse escreve uma resposta JSON com o status informado.
// O status já foi enviado quando a codificação falha; o erro serve apenas para registro.
func JSONResponse(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Success escreve o envelope de sucesso, marcando Success=true.
func Success(w http.ResponseWriter, log logger.Logger, status int, env domain.Envelope) {
	env.Success = true
	if err := JSONResponse(w, status, env); err != nil {
		log.Error("Falha ao serializar a resposta.", err)
	}
}

// WriteError traduz o erro para o envelope padronizado e registra a falha:
// 5xx em nível error, 4xx em nível debug.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	if encErr := JSONResponse(w, status, domain.ErrorResponse{
		Success:  false,
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.FieldErrors(err),
	}); encErr != nil {
		log.Error("Falha ao serializar a resposta de erro.", encErr)
	}
}

// DecodeJSONObject lê o corpo como um objeto JSON, preservando números como json.Number.
// Corpo vazio, malformado, maior que maxBytes ou que não seja objeto gera ValidationError.
func DecodeJSONObject(r *http.Request, maxBytes int64) (map[string]interface{}, error) {
	if r.Body == nil {
		return nil, apperror.NewValidationError("O corpo da requisição deve ser um objeto JSON.")
	}
	body := io.LimitReader(r.Body, maxBytes+1)
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, apperror.NewInternalError("Falha ao ler o corpo da requisição.", err)
	}
	if int64(len(raw)) > maxBytes {
		return nil, apperror.NewValidationError(fmt.Sprintf("O corpo da requisição excede %d bytes.", maxBytes))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperror.NewValidationError("O corpo da requisição deve ser um objeto JSON.")
		}
		return nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	if payload == nil {
		// "null" decodifica para mapa nil.
		return nil, apperror.NewValidationError("O corpo da requisição deve ser um objeto JSON.")
	}
	if dec.More() {
		return nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return payload, nil
}

// PageQuery lê page/limit da query string. Valores ausentes ou inválidos voltam ao padrão.
func PageQuery(r *http.Request) domain.PageQuery {
	q := r.URL.Query()
	return domain.NewPageQuery(atoiOr(q.Get("page"), domain.DefaultPage), atoiOr(q.Get("limit"), domain.DefaultLimit))
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
