package message

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/dummy-messages-api/pkg/identity"
	"github.com/hugohenrick/dummy-messages-api/pkg/random"
)

func newTestRequest() Request {
	return Request{
		Message: "Hi",
		Channel: "web",
		Context: Context{UserID: "u1", HistoricalMessages: []string{}},
	}
}

func TestReply_MintsConversationID(t *testing.T) {
	svc := NewService(random.New(10))

	first, err := svc.Reply("page123", newTestRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := svc.Reply("page123", newTestRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !identity.IsValidID(first.ConversationID) {
		t.Errorf("Expected UUID conversation id, got %q", first.ConversationID)
	}
	if first.ConversationID == second.ConversationID {
		t.Error("Expected distinct conversation ids across calls")
	}
	if first.MessageID == second.MessageID {
		t.Error("Expected distinct message ids across calls")
	}
	if first.MessageID == first.ConversationID {
		t.Error("Expected message id minted independently of conversation id")
	}
	if first.PageID != "page123" {
		t.Errorf("Expected page_id 'page123', got %q", first.PageID)
	}
}

func TestReply_EchoesConversationID(t *testing.T) {
	svc := NewService(random.New(11))
	req := newTestRequest()
	req.ConversationID = "abc-123"

	resp, err := svc.Reply("page123", req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.ConversationID != "abc-123" {
		t.Errorf("Expected 'abc-123', got %q", resp.ConversationID)
	}
}

func TestReply_UsesClock(t *testing.T) {
	fixed := time.Unix(1700000123, 750_000_000)
	svc := NewService(random.New(12), WithClock(func() time.Time { return fixed }))

	resp, err := svc.Reply("p", newTestRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.Timestamp != 1700000123 {
		t.Errorf("Expected 1700000123, got %d", resp.Timestamp)
	}
}

func TestReply_UsesIDGenerator(t *testing.T) {
	ids := []string{"conv", "msg"}
	next := 0
	svc := NewService(random.New(13), WithIDGenerator(func() string {
		id := ids[next]
		next++
		return id
	}))

	resp, err := svc.Reply("p", newTestRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.ConversationID != "conv" || resp.MessageID != "msg" {
		t.Errorf("Unexpected ids: conversation=%q message=%q", resp.ConversationID, resp.MessageID)
	}
}

func TestReply_SeededIsDeterministic(t *testing.T) {
	clock := func() time.Time { return time.Unix(1, 0) }
	idGen := func() string { return "fixed" }

	a, err := NewService(random.New(99), WithClock(clock), WithIDGenerator(idGen)).Reply("p", newTestRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := NewService(random.New(99), WithClock(clock), WithIDGenerator(idGen)).Reply("p", newTestRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if a.Response != b.Response || a.AdminText != b.AdminText || len(a.QuickReplyPills) != len(b.QuickReplyPills) {
		t.Errorf("Expected identical responses for the same seed, got %+v and %+v", a, b)
	}
}

func TestReply_EmptyPageID(t *testing.T) {
	svc := NewService(random.New(14))

	resp, err := svc.Reply("", newTestRequest())
	if resp != nil {
		t.Error("Expected no response for empty page id")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrEmptyPageID) {
		t.Error("Expected error to wrap ErrEmptyPageID")
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "page_id" {
		t.Errorf("Unexpected fields: %+v", vErr.Fields)
	}
}

func TestReply_Invariants(t *testing.T) {
	svc := NewService(random.New(15))

	for i := 0; i < 500; i++ {
		resp, err := svc.Reply("p", newTestRequest())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if n := len(resp.QuickReplyPills); n < 2 || n > 4 {
			t.Fatalf("Quick replies out of bounds: %d", n)
		}
		if n := len(resp.Images); n > 2 {
			t.Fatalf("Images out of bounds: %d", n)
		}
		if resp.HasHandoff() && !resp.HandoffReason.IsValid() {
			t.Fatalf("Invalid handoff reason %q", *resp.HandoffReason)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError(nil,
		FieldError{Field: "message", Message: "field required"},
		FieldError{Field: "context.user_id", Message: "field required"},
	)
	expected := "validation error: message: field required; context.user_id: field required"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}
