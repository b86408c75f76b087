package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/dto"
	"github.com/hugohenrick/dummy-messages-api/internal/domain/message"
	"github.com/hugohenrick/dummy-messages-api/pkg/logger"
)

// MessageController gerencia as requisições de mensagens
type MessageController struct {
	service *message.Service
	logger  logger.Logger
}

// NewMessageController cria uma nova instância de MessageController
func NewMessageController(service *message.Service, logger logger.Logger) *MessageController {
	return &MessageController{
		service: service,
		logger:  logger,
	}
}

// Create gera a resposta simulada para uma mensagem
// @Summary Enviar mensagem
// @Description Recebe uma mensagem para a página e devolve uma resposta simulada
// @Tags messages
// @Accept json
// @Produce json
// @Param page_id path string true "ID da página"
// @Param message body dto.MessageRequest true "Mensagem"
// @Success 200 {object} dto.MessageResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /{page_id}/messages [post]
func (c *MessageController) Create(ctx *gin.Context) {
	var req dto.MessageRequest
	if err := dto.BindJSON(ctx.Request.Body, &req); err != nil {
		c.respondValidation(ctx, dto.NewBindingError(err))
		return
	}

	resp, err := c.service.Reply(ctx.Param("page_id"), req.ToDomain())
	if err != nil {
		var vErr *message.ValidationError
		if errors.As(err, &vErr) {
			c.respondValidation(ctx, vErr)
			return
		}
		c.logger.Error("erro ao gerar resposta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar resposta", err.Error()))
		return
	}

	c.logger.Debug("resposta gerada",
		"page_id", resp.PageID,
		"conversation_id", resp.ConversationID,
		"message_id", resp.MessageID)

	ctx.JSON(http.StatusOK, dto.ToMessageResponse(resp))
}

func (c *MessageController) respondValidation(ctx *gin.Context, err *message.ValidationError) {
	_ = ctx.Error(err)
	ctx.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(http.StatusUnprocessableEntity, err))
}
