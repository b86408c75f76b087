package dto

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin/binding"
)

// ErrTrailingData ocorre quando há conteúdo após o documento JSON
var ErrTrailingData = errors.New("conteúdo após o documento JSON")

// BindJSON decodifica exatamente um documento JSON e valida as tags binding.
// Diferente de ShouldBindJSON, rejeita qualquer conteúdo após o documento.
func BindJSON(body io.Reader, obj interface{}) error {
	if body == nil {
		return io.EOF
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return binding.Validator.ValidateStruct(obj)
}
