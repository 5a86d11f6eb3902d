package domain

import apperror "gocatalog/internal/errors"

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Success  bool                  `json:"success" example:"false"`
	Code     int                   `json:"code" example:"400"`
	Category string                `json:"category" example:"VALIDATION_ERROR"`
	Message  string                `json:"message" example:"Erro de Validação: O nome deve ter pelo menos 2 caracteres"`
	Errors   []apperror.FieldError `json:"errors,omitempty"`
}
