package dto

import (
	"github.com/hugohenrick/dummy-messages-api/internal/domain/message"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Details string               `json:"details,omitempty"`
	Fields  []message.FieldError `json:"fields,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationErrorResponse cria uma resposta de erro com os campos inválidos
func NewValidationErrorResponse(code int, err *message.ValidationError) ErrorResponse {
	resp := NewErrorResponse(code, "validation error", err.Error())
	resp.Fields = err.Fields
	return resp
}
