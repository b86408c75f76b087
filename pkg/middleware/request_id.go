package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/pkg/identity"
	"github.com/hugohenrick/dummy-messages-api/pkg/logger"
)

// RequestIDHeader é o cabeçalho usado para correlacionar requisições
const RequestIDHeader = "X-Request-ID"

// RequestID é o middleware que propaga ou gera o ID da requisição
// e registra as requisições que terminaram com erro
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = identity.NewID()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= 400 {
			log.Warn("requisição com erro",
				"request_id", requestID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status,
				"latency", time.Since(start),
				"errors", c.Errors.String())
		}
	}
}
