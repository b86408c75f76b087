package message

// HandoffReason indica por que a conversa deveria ser transferida para um atendente humano
type HandoffReason string

const (
	HandoffComplexInquiry         HandoffReason = "complex_inquiry"
	HandoffEscalationRequested    HandoffReason = "escalation_requested"
	HandoffTechnicalSupportNeeded HandoffReason = "technical_support_needed"
	HandoffBillingIssue           HandoffReason = "billing_issue"
)

// HandoffReasons lista todos os motivos de transferência conhecidos
var HandoffReasons = []HandoffReason{
	HandoffComplexInquiry,
	HandoffEscalationRequested,
	HandoffTechnicalSupportNeeded,
	HandoffBillingIssue,
}

// IsValid verifica se o motivo pertence ao conjunto conhecido
func (h HandoffReason) IsValid() bool {
	for _, r := range HandoffReasons {
		if r == h {
			return true
		}
	}
	return false
}

// Context representa o contexto do usuário que acompanha a mensagem
type Context struct {
	UserID             string   // ID do usuário final
	SysPrompt          *string  // Aceito, mas não utilizado
	HistoricalMessages []string // Aceito, mas não utilizado
}

// Request representa uma mensagem recebida para uma página
type Request struct {
	ConversationID string  // Vazio quando o cliente não informa
	Message        string  // Texto da mensagem
	Channel        string  // Canal de origem (web, sms, ...)
	Attachment1    *string // Aceito, mas não utilizado
	Attachment2    *string // Aceito, mas não utilizado
	Context        Context
}

// Response representa a resposta simulada gerada para uma mensagem
type Response struct {
	MessageID       string
	Response        string
	ConversationID  string
	PageID          string
	Timestamp       int64
	HandoffReason   *HandoffReason // nil quando não há transferência
	QuickReplyPills []string
	Images          []string
	AdminText       string
}

// HasHandoff indica se a resposta sugere transferência para humano
func (r *Response) HasHandoff() bool {
	return r.HandoffReason != nil
}
