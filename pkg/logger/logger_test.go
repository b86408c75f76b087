package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		kv       []interface{}
		expected string
	}{
		{"no pairs", "started", nil, "started"},
		{"pairs", "request", []interface{}{"status", 422, "path", "/p/messages"}, "request status=422 path=/p/messages"},
		{"odd pairs", "request", []interface{}{"status"}, "request status=<missing>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := format(tc.msg, tc.kv); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestSimpleLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerWithWriters(&out, &errOut, false)

	l.Info("hello", "k", "v")
	l.Debug("hidden")
	l.Error("boom", "error", "x")

	if !strings.Contains(out.String(), "INFO: ") || !strings.Contains(out.String(), "hello k=v") {
		t.Errorf("Unexpected info output: %q", out.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("Expected debug output to be suppressed")
	}
	if !strings.Contains(errOut.String(), "ERROR: ") || !strings.Contains(errOut.String(), "boom error=x") {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
}

func TestSimpleLogger_DebugEnabled(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerWithWriters(&out, &out, true)

	l.Debug("visible", "k", 1)
	if !strings.HasPrefix(out.String(), "DEBUG: ") || !strings.Contains(out.String(), "visible k=1") {
		t.Errorf("Expected debug output, got %q", out.String())
	}
}
