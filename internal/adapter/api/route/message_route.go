package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/controller"
)

// ConfigureMessageRoutes configura as rotas de mensagens
func ConfigureMessageRoutes(router *gin.RouterGroup, messageController *controller.MessageController) {
	router.POST("/:page_id/messages", messageController.Create)
}
