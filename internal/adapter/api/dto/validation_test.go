package dto

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/hugohenrick/dummy-messages-api/internal/domain/message"
)

func TestNewBindingError_ValidatorFields(t *testing.T) {
	RegisterJSONTagNames()

	req := MessageRequest{Context: &ContextRequest{}}
	err := binding.Validator.ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	vErr := NewBindingError(err)
	expected := []string{"message", "channel", "context.user_id"}
	if len(vErr.Fields) != len(expected) {
		t.Fatalf("Expected %v, got %+v", expected, vErr.Fields)
	}
	for i, f := range expected {
		if vErr.Fields[i].Field != f {
			t.Errorf("Expected field %q, got %q", f, vErr.Fields[i].Field)
		}
		if vErr.Fields[i].Message != "field required" {
			t.Errorf("Expected 'field required', got %q", vErr.Fields[i].Message)
		}
	}
}

func TestNewBindingError_UnknownError(t *testing.T) {
	cause := errors.New("invalid request")
	vErr := NewBindingError(cause)

	if !errors.Is(vErr, cause) {
		t.Error("Expected the cause to be wrapped")
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "body" {
		t.Errorf("Unexpected fields: %+v", vErr.Fields)
	}
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"MessageRequest.context.user_id", "context.user_id"},
		{"MessageRequest.message", "message"},
		{"message", "message"},
	}
	for _, tc := range tests {
		if got := fieldPath(tc.in); got != tc.expected {
			t.Errorf("fieldPath(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestNewValidationErrorResponse(t *testing.T) {
	err := message.NewValidationError(nil, message.FieldError{Field: "channel", Message: "field required"})
	resp := NewValidationErrorResponse(422, err)

	if resp.Code != 422 || resp.Message != "validation error" {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "channel" {
		t.Errorf("Unexpected fields: %+v", resp.Fields)
	}
}
