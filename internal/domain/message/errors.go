package message

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyPageID ocorre quando o ID da página não é informado
	ErrEmptyPageID = errors.New("page_id não pode ser vazio")
)

// FieldError descreve um problema em um campo específico da requisição
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError é o único tipo de erro que a geração de respostas pode produzir
type ValidationError struct {
	Fields []FieldError
	cause  error
}

// NewValidationError cria um erro de validação a partir de campos inválidos
func NewValidationError(cause error, fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields, cause: cause}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.cause != nil {
			return "validation error: " + e.cause.Error()
		}
		return "validation error"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
