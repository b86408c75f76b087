package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hugohenrick/dummy-messages-api/internal/domain/message"
)

var registerOnce sync.Once

// RegisterJSONTagNames faz o validador do gin reportar os campos pelo nome JSON
func RegisterJSONTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// NewBindingError converte um erro de bind do gin em erro de validação de domínio
func NewBindingError(err error) *message.ValidationError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]message.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, message.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: describeTag(fe.Tag()),
			})
		}
		return message.NewValidationError(err, fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return message.NewValidationError(err, message.FieldError{
			Field:   field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.Kind(), typeErr.Value),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return message.NewValidationError(err, message.FieldError{
			Field:   "body",
			Message: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset),
		})
	}

	if errors.Is(err, ErrTrailingData) {
		return message.NewValidationError(err, message.FieldError{Field: "body", Message: "trailing data after JSON document"})
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return message.NewValidationError(err, message.FieldError{Field: "body", Message: "field required"})
	}

	return message.NewValidationError(err, message.FieldError{Field: "body", Message: err.Error()})
}

// fieldPath remove o nome da struct raiz do namespace do validador
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", tag)
	}
}
