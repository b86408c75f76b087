package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/controller"
)

// ConfigureInfoRoutes configura as rotas de descrição e health check
func ConfigureInfoRoutes(router *gin.RouterGroup, infoController *controller.InfoController) {
	router.GET("/", infoController.Root)
	router.GET("/health", infoController.Health)
}
