package dto

import (
	"github.com/hugohenrick/dummy-messages-api/internal/domain/message"
)

// ContextRequest representa o contexto do usuário enviado junto com a mensagem.
// Ponteiros distinguem campos ausentes de campos vazios.
type ContextRequest struct {
	UserID             *string  `json:"user_id" binding:"required" example:"u1"`
	SysPrompt          *string  `json:"sys_prompt"`
	HistoricalMessages []string `json:"historical_messages"`
}

// MessageRequest representa o corpo de POST /{page_id}/messages
type MessageRequest struct {
	ConversationID *string         `json:"conversation_id" example:"abc-123"`
	Message        *string         `json:"message" binding:"required" example:"Hi"`
	Channel        *string         `json:"channel" binding:"required" example:"web"`
	Attachment1    *string         `json:"attachment_1"`
	Attachment2    *string         `json:"attachment_2"`
	Context        *ContextRequest `json:"context" binding:"required"`
}

// ToDomain converte o DTO validado para a requisição de domínio
func (r *MessageRequest) ToDomain() message.Request {
	req := message.Request{
		ConversationID: deref(r.ConversationID),
		Message:        deref(r.Message),
		Channel:        deref(r.Channel),
		Attachment1:    r.Attachment1,
		Attachment2:    r.Attachment2,
	}

	if r.Context != nil {
		history := r.Context.HistoricalMessages
		if history == nil {
			history = []string{}
		}
		req.Context = message.Context{
			UserID:             deref(r.Context.UserID),
			SysPrompt:          r.Context.SysPrompt,
			HistoricalMessages: history,
		}
	}

	return req
}

// MessageResponse representa a resposta simulada devolvida ao cliente
type MessageResponse struct {
	MessageID       string   `json:"message_id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Response        string   `json:"response"`
	ConversationID  string   `json:"conversation_id"`
	PageID          string   `json:"page_id" example:"page123"`
	Timestamp       int64    `json:"timestamp" example:"1700000000"`
	HandoffReason   *string  `json:"handoff_reason" enums:"complex_inquiry,escalation_requested,technical_support_needed,billing_issue"`
	QuickReplyPills []string `json:"quick_reply_pills"`
	Images          []string `json:"images"`
	AdminText       string   `json:"admin_text"`
}

// ToMessageResponse converte a resposta de domínio para o DTO
func ToMessageResponse(resp *message.Response) MessageResponse {
	out := MessageResponse{
		MessageID:       resp.MessageID,
		Response:        resp.Response,
		ConversationID:  resp.ConversationID,
		PageID:          resp.PageID,
		Timestamp:       resp.Timestamp,
		QuickReplyPills: resp.QuickReplyPills,
		Images:          resp.Images,
		AdminText:       resp.AdminText,
	}

	if resp.HandoffReason != nil {
		reason := string(*resp.HandoffReason)
		out.HandoffReason = &reason
	}
	if out.QuickReplyPills == nil {
		out.QuickReplyPills = []string{}
	}
	if out.Images == nil {
		out.Images = []string{}
	}

	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
