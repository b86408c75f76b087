package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/dto"
	"github.com/hugohenrick/dummy-messages-api/pkg/identity"
)

const (
	// ServiceName é o nome exibido em GET /
	ServiceName = "Dummy Messages API"
	// ServiceVersion é a versão exibida em GET /
	ServiceVersion = "1.0.0"
)

// InfoController responde os endpoints estáticos do serviço
type InfoController struct {
	clock identity.Clock
}

// NewInfoController cria uma nova instância de InfoController
func NewInfoController(clock identity.Clock) *InfoController {
	if clock == nil {
		clock = time.Now
	}
	return &InfoController{clock: clock}
}

// Root descreve o serviço
// @Summary Descrição do serviço
// @Tags info
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router / [get]
func (c *InfoController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.InfoResponse{
		Message: ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"POST /{page_id}/messages": "Send a message and receive a response",
		},
	})
}

// Health verifica se o serviço está no ar
// @Summary Health check
// @Tags info
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *InfoController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: identity.UnixSeconds(c.clock),
	})
}
