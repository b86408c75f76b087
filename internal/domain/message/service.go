package message

import (
	"time"

	"github.com/hugohenrick/dummy-messages-api/pkg/identity"
	"github.com/hugohenrick/dummy-messages-api/pkg/random"
)

// Service monta as respostas simuladas
type Service struct {
	rnd   random.Source
	clock identity.Clock
	newID func() string
}

// Option altera a configuração do Service
type Option func(*Service)

// WithClock define o relógio usado para o timestamp
func WithClock(clock identity.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithIDGenerator define a função usada para gerar identificadores
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService cria uma nova instância de Service
func NewService(rnd random.Source, opts ...Option) *Service {
	s := &Service{
		rnd:   rnd,
		clock: time.Now,
		newID: identity.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply gera a resposta para uma mensagem recebida em uma página
func (s *Service) Reply(pageID string, req Request) (*Response, error) {
	if pageID == "" {
		return nil, NewValidationError(ErrEmptyPageID, FieldError{Field: "page_id", Message: "field required"})
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = s.newID()
	}

	return &Response{
		MessageID:       s.newID(),
		Response:        GenerateResponseText(s.rnd, req.Message, req.Channel),
		ConversationID:  conversationID,
		PageID:          pageID,
		Timestamp:       identity.UnixSeconds(s.clock),
		HandoffReason:   GenerateHandoffReason(s.rnd),
		QuickReplyPills: GenerateQuickReplies(s.rnd),
		Images:          GenerateImages(s.rnd),
		AdminText:       GenerateAdminText(s.rnd, req.Context.UserID, req.Channel, conversationID),
	}, nil
}
