package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/controller"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/dto"
	"github.com/hugohenrick/dummy-messages-api/pkg/logger"
	"github.com/hugohenrick/dummy-messages-api/pkg/middleware"
)

// Controllers agrupa os controllers expostos pela API
type Controllers struct {
	Info    *controller.InfoController
	Message *controller.MessageController
}

// SetupRoutes configura middlewares globais e todas as rotas da API
func SetupRoutes(r *gin.Engine, log logger.Logger, controllers Controllers, swaggerEnabled bool) {
	dto.RegisterJSONTagNames()

	// CORS antes de tudo para responder preflight em qualquer rota
	r.Use(middleware.CORS())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(log))

	root := r.Group("")

	ConfigureInfoRoutes(root, controllers.Info)
	ConfigureMessageRoutes(root, controllers.Message)

	if swaggerEnabled {
		ConfigureDocsRoutes(root)
	}
}
