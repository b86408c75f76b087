package dto

import (
	"errors"
	"strings"
	"testing"
)

func TestBindJSON(t *testing.T) {
	RegisterJSONTagNames()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"message":"Hi","channel":"web","context":{"user_id":"u1"}}`, nil},
		{"trailing whitespace", "{\"message\":\"Hi\",\"channel\":\"web\",\"context\":{\"user_id\":\"u1\"}}\n\t ", nil},
		{"trailing text", `{"message":"Hi","channel":"web","context":{"user_id":"u1"}} trailing`, ErrTrailingData},
		{"second document", `{"message":"Hi","channel":"web","context":{"user_id":"u1"}}{}`, ErrTrailingData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req MessageRequest
			err := BindJSON(strings.NewReader(tc.body), &req)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBindJSON_Validates(t *testing.T) {
	RegisterJSONTagNames()

	var req MessageRequest
	err := BindJSON(strings.NewReader(`{"message":"Hi","context":{"user_id":"u1"}}`), &req)
	if err == nil {
		t.Fatal("Expected validation error for missing channel")
	}

	vErr := NewBindingError(err)
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "channel" {
		t.Errorf("Unexpected fields: %+v", vErr.Fields)
	}
}

func TestNewBindingError_TrailingData(t *testing.T) {
	vErr := NewBindingError(ErrTrailingData)
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "body" {
		t.Errorf("Unexpected fields: %+v", vErr.Fields)
	}
}
