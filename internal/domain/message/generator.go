package message

import (
	"fmt"

	"github.com/hugohenrick/dummy-messages-api/pkg/random"
)

const (
	handoffProbability = 0.3
	imageProbability   = 0.4

	minQuickReplies = 2
	maxQuickReplies = 4
	maxImages       = 2
	maxImageSeed    = 1000

	// ImageURLFormat é o formato das URLs de imagens de exemplo
	ImageURLFormat = "https://picsum.photos/400/300?random=%d"
)

// QuickReplyPool contém todas as sugestões de resposta rápida possíveis
var QuickReplyPool = []string{
	"Yes, please",
	"No, thanks",
	"Tell me more",
	"Contact support",
	"Check status",
	"View details",
	"Get help",
	"Learn more",
}

// GenerateResponseText escolhe um dos textos de resposta.
// A mensagem e o canal são inseridos sem nenhum escape.
func GenerateResponseText(rnd random.Source, message, channel string) string {
	templates := []string{
		fmt.Sprintf("Thank you for your message: '%s'. How can I assist you further?", message),
		fmt.Sprintf("I received your inquiry via %s. Let me help you with that.", channel),
		"Based on your message, here's what I found...",
		fmt.Sprintf("Great question! Regarding '%s', I can provide the following information.", message),
		fmt.Sprintf("I understand you're asking about this via %s. Here's my response.", channel),
	}
	return templates[rnd.IntN(len(templates))]
}

// GenerateHandoffReason retorna um motivo de transferência em 30% dos casos, ou nil
func GenerateHandoffReason(rnd random.Source) *HandoffReason {
	if rnd.Float64() >= handoffProbability {
		return nil
	}
	reason := HandoffReasons[rnd.IntN(len(HandoffReasons))]
	return &reason
}

// GenerateQuickReplies sorteia de 2 a 4 sugestões distintas, na ordem do sorteio
func GenerateQuickReplies(rnd random.Source) []string {
	count := minQuickReplies + rnd.IntN(maxQuickReplies-minQuickReplies+1)

	perm := rnd.Perm(len(QuickReplyPool))
	replies := make([]string, 0, count)
	for _, idx := range perm[:count] {
		replies = append(replies, QuickReplyPool[idx])
	}
	return replies
}

// GenerateImages retorna até duas URLs de imagem em 40% dos casos.
// Nos demais casos retorna uma lista vazia, nunca nil.
func GenerateImages(rnd random.Source) []string {
	images := []string{}
	if rnd.Float64() >= imageProbability {
		return images
	}

	count := 1 + rnd.IntN(maxImages)
	for i := 0; i < count; i++ {
		images = append(images, fmt.Sprintf(ImageURLFormat, 1+rnd.IntN(maxImageSeed)))
	}
	return images
}

// GenerateAdminText gera a anotação interna destinada aos operadores
func GenerateAdminText(rnd random.Source, userID, channel, conversationID string) string {
	templates := []string{
		fmt.Sprintf("New message received from user %s", userID),
		fmt.Sprintf("User inquiry via %s - response sent", channel),
		fmt.Sprintf("Conversation %s updated", conversationID),
		fmt.Sprintf("Message processed for user %s on %s", userID, channel),
	}
	return templates[rnd.IntN(len(templates))]
}
